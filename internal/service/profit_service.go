package service

import (
	"context"
	"fmt"
	"time"

	"awqaf/internal/distribution"
	"awqaf/internal/model"
	"awqaf/internal/repository"
)

// --- DTOs ---

type CreateProfitRequest struct {
	ProfitAmount      Amount  `json:"profit_amount" binding:"required,decimal"`
	Currency          *string `json:"currency" binding:"omitempty,len=3"`
	ProfitPeriodStart string  `json:"profit_period_start" binding:"required,datetime=2006-01-02"`
	ProfitPeriodEnd   *string `json:"profit_period_end" binding:"omitempty,datetime=2006-01-02"`
	Status            *string `json:"status" binding:"omitempty,oneof=allocated pending distributed"`
	Notes             *string `json:"notes"`
}

type UpdateProfitRequest struct {
	Status          *string `json:"status" binding:"omitempty,oneof=allocated pending distributed"`
	ProfitPeriodEnd *string `json:"profit_period_end" binding:"omitempty,datetime=2006-01-02"`
	Notes           *string `json:"notes"`
}

type ProfitResponse struct {
	ID                string  `json:"id"`
	WaqfGovID         int64   `json:"waqf_gov_id"`
	ProfitAmount      string  `json:"profit_amount"`
	Currency          string  `json:"currency"`
	ProfitPeriodStart string  `json:"profit_period_start"`
	ProfitPeriodEnd   *string `json:"profit_period_end"`
	Status            string  `json:"status"`
	Notes             *string `json:"notes"`
	CreatedAt         string  `json:"created_at"`
}

// --- Interface ---

type ProfitService interface {
	ListProfits(ctx context.Context, govID int64, page, limit int) ([]ProfitResponse, int64, error)
	GetProfit(ctx context.Context, govID int64, id string) (ProfitResponse, error)
	CreateProfit(ctx context.Context, userID string, govID int64, req CreateProfitRequest) (ProfitResponse, error)
	UpdateProfit(ctx context.Context, userID string, govID int64, id string, req UpdateProfitRequest) (ProfitResponse, error)
}

type profitService struct {
	waqfRepo   repository.WaqfRepository
	profitRepo repository.ProfitRepository
	auditRepo  repository.AuditRepository
	txManager  repository.TransactionManager
}

func NewProfitService(
	waqfRepo repository.WaqfRepository,
	profitRepo repository.ProfitRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) ProfitService {
	return &profitService{
		waqfRepo:   waqfRepo,
		profitRepo: profitRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
	}
}

// --- Implementation ---

func (s *profitService) ListProfits(ctx context.Context, govID int64, page, limit int) ([]ProfitResponse, int64, error) {
	profits, total, err := s.profitRepo.List(ctx, govID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch profits: %w", err)
	}

	res := make([]ProfitResponse, 0, len(profits))
	for _, p := range profits {
		res = append(res, toProfitResponse(p))
	}
	return res, total, nil
}

func (s *profitService) GetProfit(ctx context.Context, govID int64, id string) (ProfitResponse, error) {
	profitID, err := parseID("profit", id)
	if err != nil {
		return ProfitResponse{}, err
	}
	p, err := s.profitRepo.FindByID(ctx, govID, profitID)
	if err != nil {
		return ProfitResponse{}, notFoundOr(err, "profit", id, "fetch profit")
	}
	return toProfitResponse(*p), nil
}

func (s *profitService) CreateProfit(ctx context.Context, userID string, govID int64, req CreateProfitRequest) (ProfitResponse, error) {
	amount, err := parseDecimal("profit_amount", req.ProfitAmount)
	if err != nil {
		return ProfitResponse{}, err
	}
	if !amount.IsPositive() {
		return ProfitResponse{}, distribution.ErrInvalidAmount
	}
	start, err := parseDate("profit_period_start", req.ProfitPeriodStart)
	if err != nil {
		return ProfitResponse{}, err
	}
	end, err := parseOptionalDate("profit_period_end", req.ProfitPeriodEnd)
	if err != nil {
		return ProfitResponse{}, err
	}
	if end != nil && end.Before(start) {
		return ProfitResponse{}, invalidInput("profit_period_end must not be before profit_period_start")
	}

	waqf, err := requireWaqf(ctx, s.waqfRepo, govID)
	if err != nil {
		return ProfitResponse{}, err
	}

	p := model.Profit{
		WaqfGovID:   govID,
		Amount:      amount,
		Currency:    waqf.Currency,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      model.ProfitAllocated,
		Notes:       req.Notes,
	}
	if req.Currency != nil {
		p.Currency = *req.Currency
	}
	if req.Status != nil {
		p.Status = *req.Status
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.profitRepo.Create(txCtx, &p); err != nil {
			return fmt.Errorf("failed to create profit: %w", err)
		}
		audit := newAuditEntry(userID, govID, model.ActionCreateProfit, p.ID.String(), waqf.Name, req)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return ProfitResponse{}, err
	}

	return toProfitResponse(p), nil
}

func (s *profitService) UpdateProfit(ctx context.Context, userID string, govID int64, id string, req UpdateProfitRequest) (ProfitResponse, error) {
	profitID, err := parseID("profit", id)
	if err != nil {
		return ProfitResponse{}, err
	}
	end, err := parseOptionalDate("profit_period_end", req.ProfitPeriodEnd)
	if err != nil {
		return ProfitResponse{}, err
	}

	var updated *model.Profit
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.profitRepo.FindByID(txCtx, govID, profitID)
		if err != nil {
			return notFoundOr(err, "profit", id, "fetch profit")
		}
		if end != nil && end.Before(current.PeriodStart) {
			return invalidInput("profit_period_end must not be before profit_period_start")
		}

		patch := model.ProfitPatch{Status: req.Status, PeriodEnd: end, Notes: req.Notes}
		if _, err := s.profitRepo.Update(txCtx, govID, profitID, patch); err != nil {
			return fmt.Errorf("failed to update profit: %w", err)
		}
		if updated, err = s.profitRepo.FindByID(txCtx, govID, profitID); err != nil {
			return notFoundOr(err, "profit", id, "fetch profit")
		}

		audit := newAuditEntry(userID, govID, model.ActionUpdateProfit, id, "", req)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return ProfitResponse{}, err
	}

	return toProfitResponse(*updated), nil
}

func toProfitResponse(p model.Profit) ProfitResponse {
	return ProfitResponse{
		ID:                p.ID.String(),
		WaqfGovID:         p.WaqfGovID,
		ProfitAmount:      p.Amount.StringFixed(2),
		Currency:          p.Currency,
		ProfitPeriodStart: p.PeriodStart.Format(dateLayout),
		ProfitPeriodEnd:   formatDate(p.PeriodEnd),
		Status:            p.Status,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
	}
}
