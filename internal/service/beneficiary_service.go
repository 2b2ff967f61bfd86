package service

import (
	"context"
	"fmt"
	"time"

	"awqaf/internal/distribution"
	"awqaf/internal/model"
	"awqaf/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateBeneficiaryRequest struct {
	FullName          string  `json:"full_name" binding:"required"`
	NationalID        *string `json:"national_id"`
	Relation          *string `json:"relation"`
	IBAN              *string `json:"iban" binding:"omitempty,max=34"`
	BankName          *string `json:"bank_name"`
	AccountHolderName *string `json:"account_holder_name"`
}

type UpdateBeneficiaryRequest struct {
	FullName          *string `json:"full_name" binding:"omitempty,min=1"`
	NationalID        *string `json:"national_id"`
	Relation          *string `json:"relation"`
	IsActive          *bool   `json:"is_active"`
	IBAN              *string `json:"iban" binding:"omitempty,max=34"`
	BankName          *string `json:"bank_name"`
	AccountHolderName *string `json:"account_holder_name"`
}

type BeneficiaryResponse struct {
	ID                string  `json:"id"`
	WaqfGovID         int64   `json:"waqf_gov_id"`
	FullName          string  `json:"full_name"`
	NationalID        *string `json:"national_id"`
	Relation          *string `json:"relation"`
	IsActive          bool    `json:"is_active"`
	IBAN              *string `json:"iban"`
	BankName          *string `json:"bank_name"`
	AccountHolderName *string `json:"account_holder_name"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// --- Interface ---

type BeneficiaryService interface {
	ListBeneficiaries(ctx context.Context, govID int64, includeInactive bool) ([]BeneficiaryResponse, error)
	GetBeneficiary(ctx context.Context, govID int64, id string) (BeneficiaryResponse, error)
	CreateBeneficiary(ctx context.Context, userID string, govID int64, req CreateBeneficiaryRequest) (BeneficiaryResponse, error)
	UpdateBeneficiary(ctx context.Context, userID string, govID int64, id string, req UpdateBeneficiaryRequest) (BeneficiaryResponse, error)
	DeactivateBeneficiary(ctx context.Context, userID string, govID int64, id string) error
}

type beneficiaryService struct {
	waqfRepo        repository.WaqfRepository
	beneficiaryRepo repository.BeneficiaryRepository
	auditRepo       repository.AuditRepository
	txManager       repository.TransactionManager
}

func NewBeneficiaryService(
	waqfRepo repository.WaqfRepository,
	beneficiaryRepo repository.BeneficiaryRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) BeneficiaryService {
	return &beneficiaryService{
		waqfRepo:        waqfRepo,
		beneficiaryRepo: beneficiaryRepo,
		auditRepo:       auditRepo,
		txManager:       txManager,
	}
}

// --- Implementation ---

func (s *beneficiaryService) ListBeneficiaries(ctx context.Context, govID int64, includeInactive bool) ([]BeneficiaryResponse, error) {
	list, err := s.beneficiaryRepo.List(ctx, govID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch beneficiaries: %w", err)
	}

	res := make([]BeneficiaryResponse, 0, len(list))
	for _, b := range list {
		res = append(res, toBeneficiaryResponse(b))
	}
	return res, nil
}

func (s *beneficiaryService) GetBeneficiary(ctx context.Context, govID int64, id string) (BeneficiaryResponse, error) {
	beneficiaryID, err := parseID("beneficiary", id)
	if err != nil {
		return BeneficiaryResponse{}, err
	}
	b, err := s.beneficiaryRepo.FindByID(ctx, govID, beneficiaryID)
	if err != nil {
		return BeneficiaryResponse{}, notFoundOr(err, "beneficiary", id, "fetch beneficiary")
	}
	return toBeneficiaryResponse(*b), nil
}

func (s *beneficiaryService) CreateBeneficiary(ctx context.Context, userID string, govID int64, req CreateBeneficiaryRequest) (BeneficiaryResponse, error) {
	if _, err := requireWaqf(ctx, s.waqfRepo, govID); err != nil {
		return BeneficiaryResponse{}, err
	}

	b := model.Beneficiary{
		WaqfGovID:         govID,
		FullName:          req.FullName,
		NationalID:        req.NationalID,
		Relation:          req.Relation,
		IsActive:          true,
		IBAN:              req.IBAN,
		BankName:          req.BankName,
		AccountHolderName: req.AccountHolderName,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.beneficiaryRepo.Create(txCtx, &b); err != nil {
			return fmt.Errorf("failed to create beneficiary: %w", err)
		}
		audit := newAuditEntry(userID, govID, model.ActionCreateBeneficiary, b.ID.String(), b.FullName, req)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return BeneficiaryResponse{}, err
	}

	return toBeneficiaryResponse(b), nil
}

func (s *beneficiaryService) UpdateBeneficiary(ctx context.Context, userID string, govID int64, id string, req UpdateBeneficiaryRequest) (BeneficiaryResponse, error) {
	beneficiaryID, err := parseID("beneficiary", id)
	if err != nil {
		return BeneficiaryResponse{}, err
	}

	patch := model.BeneficiaryPatch{
		FullName:          req.FullName,
		NationalID:        req.NationalID,
		Relation:          req.Relation,
		IsActive:          req.IsActive,
		IBAN:              req.IBAN,
		BankName:          req.BankName,
		AccountHolderName: req.AccountHolderName,
	}

	var updated *model.Beneficiary
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rows, err := s.beneficiaryRepo.Update(txCtx, govID, beneficiaryID, patch)
		if err != nil {
			return fmt.Errorf("failed to update beneficiary: %w", err)
		}
		if rows == 0 {
			return distribution.NewNotFound("beneficiary", id)
		}
		if updated, err = s.beneficiaryRepo.FindByID(txCtx, govID, beneficiaryID); err != nil {
			return notFoundOr(err, "beneficiary", id, "fetch beneficiary")
		}
		audit := newAuditEntry(userID, govID, model.ActionUpdateBeneficiary, id, updated.FullName, req)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return BeneficiaryResponse{}, err
	}

	return toBeneficiaryResponse(*updated), nil
}

// DeactivateBeneficiary is the delete operation: history keeps referencing the row.
func (s *beneficiaryService) DeactivateBeneficiary(ctx context.Context, userID string, govID int64, id string) error {
	beneficiaryID, err := parseID("beneficiary", id)
	if err != nil {
		return err
	}

	inactive := false
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rows, err := s.beneficiaryRepo.Update(txCtx, govID, beneficiaryID, model.BeneficiaryPatch{IsActive: &inactive})
		if err != nil {
			return fmt.Errorf("failed to deactivate beneficiary: %w", err)
		}
		if rows == 0 {
			return distribution.NewNotFound("beneficiary", id)
		}
		audit := newAuditEntry(userID, govID, model.ActionDeactivateBenef, id, "", map[string]string{"deactivated_id": id})
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
}

// requireActiveBeneficiary resolves a beneficiary that belongs to the waqf and is active.
func requireActiveBeneficiary(ctx context.Context, repo repository.BeneficiaryRepository, govID int64, rawID string) (*model.Beneficiary, error) {
	missing := &distribution.NotFoundError{Entity: "beneficiary", ID: rawID, Reason: "inactive"}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, missing
	}
	b, err := repo.FindByID(ctx, govID, id)
	if err != nil {
		if isNotFound(err) {
			return nil, missing
		}
		return nil, fmt.Errorf("failed to fetch beneficiary: %w", err)
	}
	if !b.IsActive {
		return nil, missing
	}
	return b, nil
}

func toBeneficiaryResponse(b model.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		ID:                b.ID.String(),
		WaqfGovID:         b.WaqfGovID,
		FullName:          b.FullName,
		NationalID:        b.NationalID,
		Relation:          b.Relation,
		IsActive:          b.IsActive,
		IBAN:              b.IBAN,
		BankName:          b.BankName,
		AccountHolderName: b.AccountHolderName,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
	}
}
