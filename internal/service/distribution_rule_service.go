package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"awqaf/internal/distribution"
	"awqaf/internal/metrics"
	"awqaf/internal/model"
	"awqaf/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateRuleRequest struct {
	BeneficiaryID string  `json:"beneficiary_id" binding:"required,uuid"`
	ShareType     string  `json:"share_type" binding:"required,oneof=percent fixed"`
	ShareValue    Amount  `json:"share_value" binding:"required,decimal"`
	Priority      *int    `json:"priority"`
	ValidFrom     *string `json:"valid_from" binding:"omitempty,datetime=2006-01-02"` // defaults to today
	ValidTo       *string `json:"valid_to" binding:"omitempty,datetime=2006-01-02"`   // nullable = open ended
}

type UpdateRuleRequest struct {
	ShareType  *string `json:"share_type" binding:"omitempty,oneof=percent fixed"`
	ShareValue *Amount `json:"share_value" binding:"omitempty,decimal"`
	Priority   *int    `json:"priority"`
	ValidFrom  *string `json:"valid_from" binding:"omitempty,datetime=2006-01-02"`
	ValidTo    *string `json:"valid_to" binding:"omitempty,datetime=2006-01-02"`
}

type RuleResponse struct {
	ID              string  `json:"id"`
	WaqfGovID       int64   `json:"waqf_gov_id"`
	BeneficiaryID   string  `json:"beneficiary_id"`
	BeneficiaryName string  `json:"beneficiary_name,omitempty"`
	ShareType       string  `json:"share_type"`
	ShareValue      string  `json:"share_value"`
	Priority        int     `json:"priority"`
	ValidFrom       string  `json:"valid_from"`
	ValidTo         *string `json:"valid_to"`
	Active          bool    `json:"active"`
	CreatedAt       string  `json:"created_at"`
}

// --- Interface ---

type DistributionRuleService interface {
	ListRules(ctx context.Context, govID int64) ([]RuleResponse, error)
	GetRule(ctx context.Context, govID int64, id string) (RuleResponse, error)
	CreateRule(ctx context.Context, userID string, govID int64, req CreateRuleRequest) (RuleResponse, error)
	UpdateRule(ctx context.Context, userID string, govID int64, id string, req UpdateRuleRequest) (RuleResponse, error)
	DeleteRule(ctx context.Context, userID string, govID int64, id string) error
}

type distributionRuleService struct {
	waqfRepo        repository.WaqfRepository
	beneficiaryRepo repository.BeneficiaryRepository
	ruleRepo        repository.DistributionRuleRepository
	auditRepo       repository.AuditRepository
	locker          repository.WaqfLocker
	metrics         *metrics.Metrics
	now             func() time.Time
}

func NewDistributionRuleService(
	waqfRepo repository.WaqfRepository,
	beneficiaryRepo repository.BeneficiaryRepository,
	ruleRepo repository.DistributionRuleRepository,
	auditRepo repository.AuditRepository,
	locker repository.WaqfLocker,
	m *metrics.Metrics,
) DistributionRuleService {
	return &distributionRuleService{
		waqfRepo:        waqfRepo,
		beneficiaryRepo: beneficiaryRepo,
		ruleRepo:        ruleRepo,
		auditRepo:       auditRepo,
		locker:          locker,
		metrics:         m,
		now:             time.Now,
	}
}

// --- Implementation ---

func (s *distributionRuleService) ListRules(ctx context.Context, govID int64) ([]RuleResponse, error) {
	rules, err := s.ruleRepo.List(ctx, govID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distribution rules: %w", err)
	}

	day := today(s.now())
	res := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		res = append(res, toRuleResponse(r, day))
	}
	return res, nil
}

func (s *distributionRuleService) GetRule(ctx context.Context, govID int64, id string) (RuleResponse, error) {
	ruleID, err := parseID("distribution rule", id)
	if err != nil {
		return RuleResponse{}, err
	}
	rule, err := s.ruleRepo.FindByID(ctx, govID, ruleID)
	if err != nil {
		return RuleResponse{}, notFoundOr(err, "distribution rule", id, "fetch distribution rule")
	}
	return toRuleResponse(*rule, today(s.now())), nil
}

func (s *distributionRuleService) CreateRule(ctx context.Context, userID string, govID int64, req CreateRuleRequest) (RuleResponse, error) {
	day := today(s.now())

	value, err := parseDecimal("share_value", req.ShareValue)
	if err != nil {
		return RuleResponse{}, err
	}
	if err := distribution.ValidateShare(distribution.ShareType(req.ShareType), value); err != nil {
		s.reject(err)
		return RuleResponse{}, err
	}

	validFrom := day
	if req.ValidFrom != nil && *req.ValidFrom != "" {
		if validFrom, err = parseDate("valid_from", *req.ValidFrom); err != nil {
			return RuleResponse{}, err
		}
	}
	validTo, err := parseOptionalDate("valid_to", req.ValidTo)
	if err != nil {
		return RuleResponse{}, err
	}
	if validTo != nil && validTo.Before(validFrom) {
		return RuleResponse{}, invalidInput("valid_to cannot be before valid_from")
	}

	priority := model.DefaultRulePriority
	if req.Priority != nil {
		priority = *req.Priority
	}

	rule := model.DistributionRule{
		WaqfGovID:  govID,
		ShareType:  req.ShareType,
		ShareValue: value,
		Priority:   priority,
		ValidFrom:  validFrom,
		ValidTo:    validTo,
	}

	err = s.locker.WithWaqfLock(ctx, govID, func(txCtx context.Context) error {
		if _, err := requireWaqf(txCtx, s.waqfRepo, govID); err != nil {
			return err
		}
		beneficiary, err := requireActiveBeneficiary(txCtx, s.beneficiaryRepo, govID, req.BeneficiaryID)
		if err != nil {
			return err
		}
		rule.BeneficiaryID = beneficiary.ID

		if rule.ShareType == model.ShareTypePercent {
			if err := s.checkPercentCeiling(txCtx, govID, day, rule, nil); err != nil {
				return err
			}
		}

		if err := s.ruleRepo.Create(txCtx, &rule); err != nil {
			return fmt.Errorf("failed to create distribution rule: %w", err)
		}
		rule.Beneficiary = beneficiary

		audit := newAuditEntry(userID, govID, model.ActionCreateRule, rule.ID.String(), ruleName(rule), req)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		s.reject(err)
		return RuleResponse{}, err
	}

	return toRuleResponse(rule, day), nil
}

func (s *distributionRuleService) UpdateRule(ctx context.Context, userID string, govID int64, id string, req UpdateRuleRequest) (RuleResponse, error) {
	day := today(s.now())
	ruleID, err := parseID("distribution rule", id)
	if err != nil {
		return RuleResponse{}, err
	}

	patch := model.RulePatch{
		ShareType: req.ShareType,
		Priority:  req.Priority,
	}
	if patch.ShareValue, err = parseOptionalDecimal("share_value", req.ShareValue); err != nil {
		return RuleResponse{}, err
	}
	if patch.ValidFrom, err = parseOptionalDate("valid_from", req.ValidFrom); err != nil {
		return RuleResponse{}, err
	}
	if patch.ValidTo, err = parseOptionalDate("valid_to", req.ValidTo); err != nil {
		return RuleResponse{}, err
	}

	var updated model.DistributionRule
	err = s.locker.WithWaqfLock(ctx, govID, func(txCtx context.Context) error {
		existing, err := s.ruleRepo.FindByID(txCtx, govID, ruleID)
		if err != nil {
			return notFoundOr(err, "distribution rule", id, "fetch distribution rule")
		}

		// Guards run against the rule as it would be stored after the patch.
		effective := patch.Apply(*existing)
		if err := distribution.ValidateShare(distribution.ShareType(effective.ShareType), effective.ShareValue); err != nil {
			return err
		}
		if effective.ValidTo != nil && effective.ValidTo.Before(effective.ValidFrom) {
			return invalidInput("valid_to cannot be before valid_from")
		}
		if effective.ShareType == model.ShareTypePercent {
			if err := s.checkPercentCeiling(txCtx, govID, day, effective, &ruleID); err != nil {
				return err
			}
		}

		rows, err := s.ruleRepo.Update(txCtx, govID, ruleID, patch)
		if err != nil {
			return fmt.Errorf("failed to update distribution rule: %w", err)
		}
		if rows == 0 {
			return distribution.NewNotFound("distribution rule", id)
		}
		updated = effective

		audit := newAuditEntry(userID, govID, model.ActionUpdateRule, id, ruleName(updated), req)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		s.reject(err)
		return RuleResponse{}, err
	}

	return toRuleResponse(updated, day), nil
}

func (s *distributionRuleService) DeleteRule(ctx context.Context, userID string, govID int64, id string) error {
	ruleID, err := parseID("distribution rule", id)
	if err != nil {
		return err
	}

	return s.locker.WithWaqfLock(ctx, govID, func(txCtx context.Context) error {
		rows, err := s.ruleRepo.Delete(txCtx, govID, ruleID)
		if err != nil {
			return fmt.Errorf("failed to delete distribution rule: %w", err)
		}
		if rows == 0 {
			return distribution.NewNotFound("distribution rule", id)
		}
		audit := newAuditEntry(userID, govID, model.ActionDeleteRule, id, "", map[string]string{"deleted_id": id})
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
}

// --- Helpers ---

// checkPercentCeiling compares the other active percent rules plus this one against 100.
// A rule whose window already ended does not count towards the ceiling.
func (s *distributionRuleService) checkPercentCeiling(ctx context.Context, govID int64, day time.Time, rule model.DistributionRule, excludeID *uuid.UUID) error {
	if rule.ValidTo != nil && rule.ValidTo.Before(day) {
		return nil
	}
	current, err := s.ruleRepo.SumActivePercent(ctx, govID, day, excludeID)
	if err != nil {
		return fmt.Errorf("failed to sum percent shares: %w", err)
	}
	return distribution.CheckPercentCeiling(current, rule.ShareValue)
}

func (s *distributionRuleService) reject(err error) {
	if s.metrics == nil {
		return
	}
	switch {
	case errors.Is(err, distribution.ErrOverAllocation):
		s.metrics.IncrementRuleRejection("over_allocation")
	case errors.Is(err, distribution.ErrInvalidShare):
		s.metrics.IncrementRuleRejection("invalid_share")
	case errors.Is(err, distribution.ErrNotFound):
		s.metrics.IncrementRuleRejection("not_found")
	}
}

func ruleName(r model.DistributionRule) string {
	if r.ShareType == model.ShareTypePercent {
		return r.ShareValue.String() + "%"
	}
	return "fixed " + r.ShareValue.StringFixed(2)
}

// toDomainRule maps a stored rule into the evaluator's view.
func toDomainRule(r model.DistributionRule) distribution.Rule {
	return distribution.Rule{
		ID:            r.ID,
		BeneficiaryID: r.BeneficiaryID,
		ShareType:     distribution.ShareType(r.ShareType),
		ShareValue:    r.ShareValue,
		Priority:      r.Priority,
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
	}
}

func toRuleResponse(r model.DistributionRule, day time.Time) RuleResponse {
	resp := RuleResponse{
		ID:            r.ID.String(),
		WaqfGovID:     r.WaqfGovID,
		BeneficiaryID: r.BeneficiaryID.String(),
		ShareType:     r.ShareType,
		ShareValue:    r.ShareValue.String(),
		Priority:      r.Priority,
		ValidFrom:     r.ValidFrom.Format(dateLayout),
		ValidTo:       formatDate(r.ValidTo),
		Active:        toDomainRule(r).ActiveOn(day),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.Beneficiary != nil {
		resp.BeneficiaryName = r.Beneficiary.FullName
	}
	return resp
}
