package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"awqaf/internal/distribution"
	"awqaf/internal/model"
	"awqaf/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateWaqfRequest struct {
	WaqfGovID        int64   `json:"waqf_gov_id" binding:"required,gt=0"`
	WaqfName         string  `json:"waqf_name" binding:"required"`
	WaqfType         string  `json:"waqf_type" binding:"required,oneof=Charitable Family Joint"`
	AssetKind        string  `json:"asset_kind" binding:"required,oneof=Property Cash Corporate"`
	AssetLabel       *string `json:"asset_label"`
	Corpus           Amount  `json:"corpus" binding:"omitempty,decimal"`
	LastPeriodProfit *Amount `json:"last_period_profit" binding:"omitempty,decimal"`
	Currency         string  `json:"currency" binding:"omitempty,len=3"`
}

type UpdateWaqfRequest struct {
	WaqfName         *string `json:"waqf_name" binding:"omitempty,min=1"`
	WaqfType         *string `json:"waqf_type" binding:"omitempty,oneof=Charitable Family Joint"`
	Corpus           *Amount `json:"corpus" binding:"omitempty,decimal"`
	LastPeriodProfit *Amount `json:"last_period_profit" binding:"omitempty,decimal"`
	Currency         *string `json:"currency" binding:"omitempty,len=3"`
}

type WaqfResponse struct {
	WaqfGovID        int64   `json:"waqf_gov_id"`
	AssetKind        string  `json:"asset_kind"`
	AssetLabel       *string `json:"asset_label"`
	WaqfName         string  `json:"waqf_name"`
	WaqfType         string  `json:"waqf_type"`
	Corpus           string  `json:"corpus"`
	LastPeriodProfit *string `json:"last_period_profit"`
	Currency         string  `json:"currency"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// WaqfKey identifies one waqf record.
type WaqfKey struct {
	GovID      int64
	AssetKind  string
	AssetLabel *string
}

func (k WaqfKey) String() string {
	s := strconv.FormatInt(k.GovID, 10) + "/" + k.AssetKind
	if k.AssetLabel != nil {
		s += "/" + *k.AssetLabel
	}
	return s
}

// --- Interface ---

type WaqfService interface {
	ListWaqfs(ctx context.Context, nationalID string) ([]WaqfResponse, error)
	CreateWaqf(ctx context.Context, userID, nationalID string, req CreateWaqfRequest) (WaqfResponse, error)
	GetWaqf(ctx context.Context, key WaqfKey) (WaqfResponse, error)
	UpdateWaqf(ctx context.Context, userID string, key WaqfKey, req UpdateWaqfRequest) (WaqfResponse, error)
	DeleteWaqf(ctx context.Context, userID string, key WaqfKey) error
	IsAuthorized(ctx context.Context, govID int64, nationalID string) (bool, error)
	AuthorizedGovIDs(ctx context.Context, nationalID string) ([]int64, error)
}

type waqfService struct {
	waqfRepo        repository.WaqfRepository
	auditRepo       repository.AuditRepository
	txManager       repository.TransactionManager
	defaultCurrency string
}

func NewWaqfService(
	waqfRepo repository.WaqfRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	defaultCurrency string,
) WaqfService {
	if defaultCurrency == "" {
		defaultCurrency = model.DefaultCurrency
	}
	return &waqfService{
		waqfRepo:        waqfRepo,
		auditRepo:       auditRepo,
		txManager:       txManager,
		defaultCurrency: defaultCurrency,
	}
}

// --- Implementation ---

func (s *waqfService) ListWaqfs(ctx context.Context, nationalID string) ([]WaqfResponse, error) {
	waqfs, err := s.waqfRepo.ListByNationalID(ctx, nationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch waqfs: %w", err)
	}

	res := make([]WaqfResponse, 0, len(waqfs))
	for _, w := range waqfs {
		res = append(res, toWaqfResponse(w))
	}
	return res, nil
}

func (s *waqfService) CreateWaqf(ctx context.Context, userID, nationalID string, req CreateWaqfRequest) (WaqfResponse, error) {
	corpus := decimal.Zero
	if req.Corpus != "" {
		c, err := parseDecimal("corpus", req.Corpus)
		if err != nil {
			return WaqfResponse{}, err
		}
		corpus = c
	}
	if corpus.IsNegative() {
		return WaqfResponse{}, invalidInput("corpus cannot be negative")
	}
	lastProfit, err := parseOptionalDecimal("last_period_profit", req.LastPeriodProfit)
	if err != nil {
		return WaqfResponse{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	waqf := model.Waqf{
		GovID:            req.WaqfGovID,
		AssetKind:        req.AssetKind,
		AssetLabel:       req.AssetLabel,
		Name:             req.WaqfName,
		Type:             req.WaqfType,
		Corpus:           corpus,
		LastPeriodProfit: lastProfit,
		Currency:         currency,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.waqfRepo.FindByKey(txCtx, req.WaqfGovID, req.AssetKind, req.AssetLabel); err == nil {
			return ErrWaqfExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check waqf: %w", err)
		}

		if err := s.waqfRepo.Create(txCtx, &waqf); err != nil {
			return fmt.Errorf("failed to create waqf: %w", err)
		}

		founder := &model.WaqfAuthorizedUser{
			WaqfGovID:  waqf.GovID,
			NationalID: nationalID,
			IsFounder:  true,
		}
		if err := s.waqfRepo.AddAuthorizedUser(txCtx, founder); err != nil {
			return fmt.Errorf("failed to register founder: %w", err)
		}

		audit := newAuditEntry(userID, waqf.GovID, model.ActionCreateWaqf, keyOf(waqf).String(), waqf.Name, req)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return WaqfResponse{}, err
	}

	return toWaqfResponse(waqf), nil
}

func (s *waqfService) GetWaqf(ctx context.Context, key WaqfKey) (WaqfResponse, error) {
	waqf, err := s.waqfRepo.FindByKey(ctx, key.GovID, key.AssetKind, key.AssetLabel)
	if err != nil {
		return WaqfResponse{}, notFoundOr(err, "waqf", key.String(), "fetch waqf")
	}
	return toWaqfResponse(*waqf), nil
}

func (s *waqfService) UpdateWaqf(ctx context.Context, userID string, key WaqfKey, req UpdateWaqfRequest) (WaqfResponse, error) {
	patch := model.WaqfPatch{
		Name:     req.WaqfName,
		Type:     req.WaqfType,
		Currency: req.Currency,
	}
	corpus, err := parseOptionalDecimal("corpus", req.Corpus)
	if err != nil {
		return WaqfResponse{}, err
	}
	if corpus != nil && corpus.IsNegative() {
		return WaqfResponse{}, invalidInput("corpus cannot be negative")
	}
	patch.Corpus = corpus
	if patch.LastPeriodProfit, err = parseOptionalDecimal("last_period_profit", req.LastPeriodProfit); err != nil {
		return WaqfResponse{}, err
	}

	var updated *model.Waqf
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rows, err := s.waqfRepo.Update(txCtx, key.GovID, key.AssetKind, key.AssetLabel, patch)
		if err != nil {
			return fmt.Errorf("failed to update waqf: %w", err)
		}
		if rows == 0 {
			return distribution.NewNotFound("waqf", key.String())
		}

		updated, err = s.waqfRepo.FindByKey(txCtx, key.GovID, key.AssetKind, key.AssetLabel)
		if err != nil {
			return notFoundOr(err, "waqf", key.String(), "fetch waqf")
		}

		audit := newAuditEntry(userID, key.GovID, model.ActionUpdateWaqf, key.String(), updated.Name, req)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return WaqfResponse{}, err
	}

	return toWaqfResponse(*updated), nil
}

func (s *waqfService) DeleteWaqf(ctx context.Context, userID string, key WaqfKey) error {
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rows, err := s.waqfRepo.Delete(txCtx, key.GovID, key.AssetKind, key.AssetLabel)
		if err != nil {
			return fmt.Errorf("failed to delete waqf: %w", err)
		}
		if rows == 0 {
			return distribution.NewNotFound("waqf", key.String())
		}

		audit := newAuditEntry(userID, key.GovID, model.ActionDeleteWaqf, key.String(), "", map[string]string{"deleted": key.String()})
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
}

func (s *waqfService) IsAuthorized(ctx context.Context, govID int64, nationalID string) (bool, error) {
	ok, err := s.waqfRepo.IsAuthorized(ctx, govID, nationalID)
	if err != nil {
		return false, fmt.Errorf("failed to check waqf access: %w", err)
	}
	return ok, nil
}

func (s *waqfService) AuthorizedGovIDs(ctx context.Context, nationalID string) ([]int64, error) {
	waqfs, err := s.waqfRepo.ListByNationalID(ctx, nationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch waqfs: %w", err)
	}
	seen := make(map[int64]bool, len(waqfs))
	ids := make([]int64, 0, len(waqfs))
	for _, w := range waqfs {
		if !seen[w.GovID] {
			seen[w.GovID] = true
			ids = append(ids, w.GovID)
		}
	}
	return ids, nil
}

// --- Helpers ---

// requireWaqf fails with NotFound unless at least one live record exists for govID.
func requireWaqf(ctx context.Context, repo repository.WaqfRepository, govID int64) (*model.Waqf, error) {
	waqf, err := repo.FindFirstByGovID(ctx, govID)
	if err != nil {
		return nil, notFoundOr(err, "waqf", strconv.FormatInt(govID, 10), "fetch waqf")
	}
	return waqf, nil
}

func keyOf(w model.Waqf) WaqfKey {
	return WaqfKey{GovID: w.GovID, AssetKind: w.AssetKind, AssetLabel: w.AssetLabel}
}

func toWaqfResponse(w model.Waqf) WaqfResponse {
	resp := WaqfResponse{
		WaqfGovID:  w.GovID,
		AssetKind:  w.AssetKind,
		AssetLabel: w.AssetLabel,
		WaqfName:   w.Name,
		WaqfType:   w.Type,
		Corpus:     w.Corpus.StringFixed(2),
		Currency:   w.Currency,
		CreatedAt:  w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  w.UpdatedAt.Format(time.RFC3339),
	}
	if w.LastPeriodProfit != nil {
		p := w.LastPeriodProfit.StringFixed(2)
		resp.LastPeriodProfit = &p
	}
	return resp
}
