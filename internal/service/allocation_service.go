package service

import (
	"context"
	"fmt"
	"time"

	"awqaf/internal/distribution"
	"awqaf/internal/metrics"
	"awqaf/internal/model"
	"awqaf/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

// PreviewRequest needs a profit amount, or a profit record whose amount is used.
type PreviewRequest struct {
	ProfitAmount *Amount `json:"profit_amount" binding:"omitempty,decimal"`
	ProfitID     *string `json:"profit_id" binding:"omitempty,uuid"`
	Date         *string `json:"date" binding:"omitempty,datetime=2006-01-02"` // evaluation date, defaults to today
}

type PreviewResponse struct {
	WaqfGovID   int64                     `json:"waqf_gov_id"`
	WaqfName    string                    `json:"waqf_name"`
	Currency    string                    `json:"currency"`
	EvaluatedOn string                    `json:"evaluated_on"`
	ProfitID    *string                   `json:"profit_id,omitempty"`
	Summary     distribution.Summary      `json:"summary"`
	Allocations []distribution.Allocation `json:"allocations"`
}

type GeneratePayoutsRequest struct {
	PreviewRequest
	PayoutDate   *string `json:"payout_date" binding:"omitempty,datetime=2006-01-02"`
	PayoutMethod string  `json:"payout_method" binding:"omitempty,oneof='Bank Transfer' Cash Check 'Digital Wallet'"`
	AssetKind    *string `json:"asset_kind" binding:"omitempty,oneof=Property Cash Corporate"`
	AssetLabel   *string `json:"asset_label"`
	Notes        *string `json:"notes"`
}

type GeneratePayoutsResponse struct {
	Preview PreviewResponse  `json:"preview"`
	Payouts []PayoutResponse `json:"payouts"`
}

// --- Interface ---

type AllocationService interface {
	Preview(ctx context.Context, govID int64, req PreviewRequest) (PreviewResponse, error)
	GeneratePayouts(ctx context.Context, userID string, govID int64, req GeneratePayoutsRequest) (GeneratePayoutsResponse, error)
}

type allocationService struct {
	waqfRepo        repository.WaqfRepository
	beneficiaryRepo repository.BeneficiaryRepository
	ruleRepo        repository.DistributionRuleRepository
	profitRepo      repository.ProfitRepository
	payoutRepo      repository.PayoutRepository
	auditRepo       repository.AuditRepository
	txManager       repository.TransactionManager
	publisher       EventPublisher
	metrics         *metrics.Metrics
	now             func() time.Time
}

func NewAllocationService(
	waqfRepo repository.WaqfRepository,
	beneficiaryRepo repository.BeneficiaryRepository,
	ruleRepo repository.DistributionRuleRepository,
	profitRepo repository.ProfitRepository,
	payoutRepo repository.PayoutRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	publisher EventPublisher,
	m *metrics.Metrics,
) AllocationService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &allocationService{
		waqfRepo:        waqfRepo,
		beneficiaryRepo: beneficiaryRepo,
		ruleRepo:        ruleRepo,
		profitRepo:      profitRepo,
		payoutRepo:      payoutRepo,
		auditRepo:       auditRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         m,
		now:             time.Now,
	}
}

// ruleSet is one consistent read of everything an evaluation needs.
type ruleSet struct {
	waqf          *model.Waqf
	profit        *model.Profit
	rules         []model.DistributionRule
	beneficiaries []model.Beneficiary
}

// --- Implementation ---

func (s *allocationService) Preview(ctx context.Context, govID int64, req PreviewRequest) (PreviewResponse, error) {
	date, err := s.evaluationDate(req.Date)
	if err != nil {
		return PreviewResponse{}, err
	}

	set, err := s.loadRuleSet(ctx, govID, req.ProfitID, date)
	if err != nil {
		return PreviewResponse{}, err
	}
	preview, err := s.evaluate(set, req, date)
	if err != nil {
		return PreviewResponse{}, err
	}
	if s.metrics != nil {
		s.metrics.IncrementAllocationPreviews()
	}
	return preview, nil
}

// GeneratePayouts evaluates the rules and records one pending payout per non-zero allocation.
func (s *allocationService) GeneratePayouts(ctx context.Context, userID string, govID int64, req GeneratePayoutsRequest) (GeneratePayoutsResponse, error) {
	date, err := s.evaluationDate(req.Date)
	if err != nil {
		return GeneratePayoutsResponse{}, err
	}
	payoutDate := date
	if req.PayoutDate != nil && *req.PayoutDate != "" {
		if payoutDate, err = parseDate("payout_date", *req.PayoutDate); err != nil {
			return GeneratePayoutsResponse{}, err
		}
	}
	method := req.PayoutMethod
	if method == "" {
		method = model.PayoutMethodBankTransfer
	}

	var (
		preview PreviewResponse
		payouts []model.Payout
	)
	// The payouts are derived from the rule set, so reads and writes share one snapshot.
	err = s.txManager.RunInRepeatableRead(ctx, func(txCtx context.Context) error {
		set, err := s.loadRuleSet(txCtx, govID, req.ProfitID, date)
		if err != nil {
			return err
		}
		if req.AssetKind != nil {
			if set.waqf, err = s.waqfRepo.FindByKey(txCtx, govID, *req.AssetKind, req.AssetLabel); err != nil {
				key := WaqfKey{GovID: govID, AssetKind: *req.AssetKind, AssetLabel: req.AssetLabel}
				return notFoundOr(err, "waqf", key.String(), "fetch waqf")
			}
		}

		if preview, err = s.evaluate(set, req.PreviewRequest, date); err != nil {
			return err
		}

		roster := make(map[uuid.UUID]model.Beneficiary, len(set.beneficiaries))
		for _, b := range set.beneficiaries {
			roster[b.ID] = b
		}

		for _, a := range preview.Allocations {
			if !a.AllocatedAmount.IsPositive() {
				continue
			}
			ruleID := a.RuleID
			b := roster[a.BeneficiaryID]
			p := model.Payout{
				WaqfGovID:          govID,
				AssetKind:          set.waqf.AssetKind,
				AssetLabel:         set.waqf.AssetLabel,
				BeneficiaryID:      a.BeneficiaryID,
				DistributionRuleID: &ruleID,
				Amount:             a.AllocatedAmount,
				Currency:           set.waqf.Currency,
				PayoutDate:         payoutDate,
				PayoutMethod:       method,
				Status:             model.PayoutPending,
				Notes:              req.Notes,
				IBAN:               b.IBAN,
				BankName:           b.BankName,
				AccountHolderName:  b.AccountHolderName,
			}
			if set.profit != nil {
				p.ProfitID = &set.profit.ID
				p.Currency = set.profit.Currency
			}
			payouts = append(payouts, p)
		}

		if err := s.payoutRepo.CreateBatch(txCtx, payouts); err != nil {
			return fmt.Errorf("failed to create payouts: %w", err)
		}

		if set.profit != nil && set.profit.Status != model.ProfitAllocated {
			status := model.ProfitAllocated
			if _, err := s.profitRepo.Update(txCtx, govID, set.profit.ID, model.ProfitPatch{Status: &status}); err != nil {
				return fmt.Errorf("failed to update profit status: %w", err)
			}
		}

		audit := newAuditEntry(userID, govID, model.ActionPayoutsFromAllocation, "", set.waqf.Name, map[string]interface{}{
			"profit_amount": preview.Summary.ProfitAmount.StringFixed(2),
			"payout_count":  len(payouts),
			"profit_id":     preview.ProfitID,
		})
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return GeneratePayoutsResponse{}, err
	}

	res := GeneratePayoutsResponse{Preview: preview, Payouts: make([]PayoutResponse, 0, len(payouts))}
	for _, p := range payouts {
		res.Payouts = append(res.Payouts, toPayoutResponse(p))
	}

	if s.metrics != nil {
		s.metrics.IncrementAllocationPreviews()
		s.metrics.AddPayoutsGenerated(len(payouts))
	}
	s.publisher.Publish(govID, EventPayoutsGenerated, map[string]interface{}{
		"waqf_gov_id":  govID,
		"payout_count": len(payouts),
		"total":        preview.Summary.TotalAllocated.StringFixed(2),
	})

	return res, nil
}

// --- Helpers ---

// loadRuleSet reads the waqf, the optional profit, the active rules and the active
// beneficiaries inside one snapshot, so a concurrent rule write is seen entirely or not at all.
// Called inside an open transaction it joins that transaction, which must itself be REPEATABLE READ.
func (s *allocationService) loadRuleSet(ctx context.Context, govID int64, rawProfitID *string, date time.Time) (ruleSet, error) {
	var set ruleSet
	err := s.txManager.RunInSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		if set.waqf, err = requireWaqf(txCtx, s.waqfRepo, govID); err != nil {
			return err
		}

		if rawProfitID != nil && *rawProfitID != "" {
			profitID, err := parseID("profit", *rawProfitID)
			if err != nil {
				return err
			}
			if set.profit, err = s.profitRepo.FindByID(txCtx, govID, profitID); err != nil {
				return notFoundOr(err, "profit", *rawProfitID, "fetch profit")
			}
		}

		if set.rules, err = s.ruleRepo.ListActive(txCtx, govID, date); err != nil {
			return fmt.Errorf("failed to load distribution rules: %w", err)
		}
		if set.beneficiaries, err = s.beneficiaryRepo.List(txCtx, govID, false); err != nil {
			return fmt.Errorf("failed to load beneficiaries: %w", err)
		}
		return nil
	})
	if err != nil {
		return ruleSet{}, err
	}
	return set, nil
}

func (s *allocationService) evaluate(set ruleSet, req PreviewRequest, date time.Time) (PreviewResponse, error) {
	var amount decimal.Decimal
	switch {
	case req.ProfitAmount != nil && *req.ProfitAmount != "":
		a, err := parseDecimal("profit_amount", *req.ProfitAmount)
		if err != nil {
			return PreviewResponse{}, err
		}
		amount = a
	case set.profit != nil:
		amount = set.profit.Amount
	default:
		return PreviewResponse{}, distribution.ErrInvalidAmount
	}

	rules := make([]distribution.Rule, 0, len(set.rules))
	for _, r := range set.rules {
		rules = append(rules, toDomainRule(r))
	}
	beneficiaries := make([]distribution.Beneficiary, 0, len(set.beneficiaries))
	for _, b := range set.beneficiaries {
		beneficiaries = append(beneficiaries, distribution.Beneficiary{
			ID:         b.ID,
			FullName:   b.FullName,
			Relation:   b.Relation,
			NationalID: b.NationalID,
			Active:     b.IsActive,
		})
	}

	result, err := distribution.Evaluate(amount, distribution.ActiveRules(rules, date), beneficiaries)
	if err != nil {
		return PreviewResponse{}, err
	}

	currency := set.waqf.Currency
	var profitID *string
	if set.profit != nil {
		currency = set.profit.Currency
		id := set.profit.ID.String()
		profitID = &id
	}

	return PreviewResponse{
		WaqfGovID:   set.waqf.GovID,
		WaqfName:    set.waqf.Name,
		Currency:    currency,
		EvaluatedOn: date.Format(dateLayout),
		ProfitID:    profitID,
		Summary:     result.Summary,
		Allocations: result.Allocations,
	}, nil
}

func (s *allocationService) evaluationDate(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		return today(s.now()), nil
	}
	return parseDate("date", *raw)
}
