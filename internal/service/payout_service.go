package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"awqaf/internal/distribution"
	"awqaf/internal/metrics"
	"awqaf/internal/model"
	"awqaf/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Websocket events
const (
	EventPayoutCreated       = "payout_created"
	EventPayoutStatusChanged = "payout_status_changed"
	EventPayoutsGenerated    = "payouts_generated"
)

// payoutTransitions lists the statuses each status may move to.
var payoutTransitions = map[string][]string{
	model.PayoutPending: {model.PayoutCompleted, model.PayoutFailed, model.PayoutCancelled},
	model.PayoutFailed:  {model.PayoutPending, model.PayoutCancelled},
}

func canTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, s := range payoutTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// --- DTOs ---

type CreatePayoutRequest struct {
	AssetKind          string  `json:"asset_kind" binding:"required,oneof=Property Cash Corporate"`
	AssetLabel         *string `json:"asset_label"`
	BeneficiaryID      string  `json:"beneficiary_id" binding:"required,uuid"`
	DistributionRuleID *string `json:"distribution_rule_id" binding:"omitempty,uuid"`
	ProfitID           *string `json:"profit_id" binding:"omitempty,uuid"`
	Amount             Amount  `json:"amount" binding:"required,decimal"`
	Currency           string  `json:"currency" binding:"omitempty,len=3"`
	PayoutDate         *string `json:"payout_date" binding:"omitempty,datetime=2006-01-02"`
	PayoutMethod       string  `json:"payout_method" binding:"omitempty,oneof='Bank Transfer' Cash Check 'Digital Wallet'"`
	Status             string  `json:"status" binding:"omitempty,oneof=pending completed failed cancelled"`
	ReferenceNumber    *string `json:"reference_number"`
	Notes              *string `json:"notes"`
	IBAN               *string `json:"iban" binding:"omitempty,max=34"`
	BankName           *string `json:"bank_name"`
	AccountHolderName  *string `json:"account_holder_name"`
}

type UpdatePayoutRequest struct {
	Amount            *Amount `json:"amount" binding:"omitempty,decimal"`
	PayoutDate        *string `json:"payout_date" binding:"omitempty,datetime=2006-01-02"`
	PayoutMethod      *string `json:"payout_method" binding:"omitempty,oneof='Bank Transfer' Cash Check 'Digital Wallet'"`
	Status            *string `json:"status" binding:"omitempty,oneof=pending completed failed cancelled"`
	ReferenceNumber   *string `json:"reference_number"`
	Notes             *string `json:"notes"`
	IBAN              *string `json:"iban" binding:"omitempty,max=34"`
	BankName          *string `json:"bank_name"`
	AccountHolderName *string `json:"account_holder_name"`
}

type PayoutListQuery struct {
	Status string
	From   *string
	To     *string
}

type PayoutResponse struct {
	ID                 string  `json:"id"`
	WaqfGovID          int64   `json:"waqf_gov_id"`
	AssetKind          string  `json:"asset_kind"`
	AssetLabel         *string `json:"asset_label"`
	BeneficiaryID      string  `json:"beneficiary_id"`
	BeneficiaryName    string  `json:"beneficiary_name,omitempty"`
	DistributionRuleID *string `json:"distribution_rule_id"`
	ProfitID           *string `json:"profit_id"`
	Amount             string  `json:"amount"`
	Currency           string  `json:"currency"`
	PayoutDate         string  `json:"payout_date"`
	PayoutMethod       string  `json:"payout_method"`
	Status             string  `json:"status"`
	ReferenceNumber    *string `json:"reference_number"`
	Notes              *string `json:"notes"`
	IBAN               *string `json:"iban"`
	BankName           *string `json:"bank_name"`
	AccountHolderName  *string `json:"account_holder_name"`
	CompletedAt        *string `json:"completed_at"`
	CreatedAt          string  `json:"created_at"`
}

type ReconciliationResponse struct {
	WaqfGovID   int64                       `json:"waqf_gov_id"`
	Period      string                      `json:"period"`
	ProfitTotal string                      `json:"profit_total"`
	PayoutCount int                         `json:"payout_count"`
	Result      distribution.Reconciliation `json:"reconciliation"`
}

// --- Interface ---

type PayoutService interface {
	ListPayouts(ctx context.Context, govID int64, q PayoutListQuery, page, limit int) ([]PayoutResponse, int64, error)
	GetPayout(ctx context.Context, govID int64, id string) (PayoutResponse, error)
	CreatePayout(ctx context.Context, userID string, govID int64, req CreatePayoutRequest) (PayoutResponse, error)
	UpdatePayout(ctx context.Context, userID string, govID int64, id string, req UpdatePayoutRequest) (PayoutResponse, error)
	CancelPayout(ctx context.Context, userID string, govID int64, id string) (PayoutResponse, error)
	ReconcileYear(ctx context.Context, govID int64, year int) (ReconciliationResponse, error)
	ReconcileProfit(ctx context.Context, govID int64, profitID string) (ReconciliationResponse, error)
}

type payoutService struct {
	waqfRepo        repository.WaqfRepository
	beneficiaryRepo repository.BeneficiaryRepository
	profitRepo      repository.ProfitRepository
	ruleRepo        repository.DistributionRuleRepository
	payoutRepo      repository.PayoutRepository
	dashboardRepo   repository.DashboardRepository
	auditRepo       repository.AuditRepository
	txManager       repository.TransactionManager
	publisher       EventPublisher
	metrics         *metrics.Metrics
	reconcileOpts   []distribution.ReconcileOption
	now             func() time.Time
}

func NewPayoutService(
	waqfRepo repository.WaqfRepository,
	beneficiaryRepo repository.BeneficiaryRepository,
	profitRepo repository.ProfitRepository,
	ruleRepo repository.DistributionRuleRepository,
	payoutRepo repository.PayoutRepository,
	dashboardRepo repository.DashboardRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	publisher EventPublisher,
	m *metrics.Metrics,
	includePending bool,
) PayoutService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	var opts []distribution.ReconcileOption
	if includePending {
		opts = append(opts, distribution.WithPendingCommitted())
	}
	return &payoutService{
		waqfRepo:        waqfRepo,
		beneficiaryRepo: beneficiaryRepo,
		profitRepo:      profitRepo,
		ruleRepo:        ruleRepo,
		payoutRepo:      payoutRepo,
		dashboardRepo:   dashboardRepo,
		auditRepo:       auditRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         m,
		reconcileOpts:   opts,
		now:             time.Now,
	}
}

// --- Implementation ---

func (s *payoutService) ListPayouts(ctx context.Context, govID int64, q PayoutListQuery, page, limit int) ([]PayoutResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	filter := model.PayoutFilter{Status: q.Status}
	var err error
	if filter.From, err = parseOptionalDate("from", q.From); err != nil {
		return nil, 0, err
	}
	if filter.To, err = parseOptionalDate("to", q.To); err != nil {
		return nil, 0, err
	}

	payouts, total, err := s.payoutRepo.List(ctx, govID, filter, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payouts: %w", err)
	}

	res := make([]PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		res = append(res, toPayoutResponse(p))
	}
	return res, total, nil
}

func (s *payoutService) GetPayout(ctx context.Context, govID int64, id string) (PayoutResponse, error) {
	payoutID, err := parseID("payout", id)
	if err != nil {
		return PayoutResponse{}, err
	}
	p, err := s.payoutRepo.FindByID(ctx, govID, payoutID)
	if err != nil {
		return PayoutResponse{}, notFoundOr(err, "payout", id, "fetch payout")
	}
	return toPayoutResponse(*p), nil
}

func (s *payoutService) CreatePayout(ctx context.Context, userID string, govID int64, req CreatePayoutRequest) (PayoutResponse, error) {
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return PayoutResponse{}, err
	}
	if !amount.IsPositive() {
		return PayoutResponse{}, distribution.ErrInvalidAmount
	}

	payoutDate := today(s.now())
	if req.PayoutDate != nil && *req.PayoutDate != "" {
		if payoutDate, err = parseDate("payout_date", *req.PayoutDate); err != nil {
			return PayoutResponse{}, err
		}
	}

	status := req.Status
	if status == "" {
		status = model.PayoutPending
	}
	method := req.PayoutMethod
	if method == "" {
		method = model.PayoutMethodBankTransfer
	}

	payout := model.Payout{
		WaqfGovID:       govID,
		AssetKind:       req.AssetKind,
		AssetLabel:      req.AssetLabel,
		Amount:          amount,
		PayoutDate:      payoutDate,
		PayoutMethod:    method,
		Status:          status,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}
	if status == model.PayoutCompleted {
		completedAt := s.now()
		payout.CompletedAt = &completedAt
	}
	if req.DistributionRuleID != nil {
		ruleID, err := parseID("distribution rule", *req.DistributionRuleID)
		if err != nil {
			return PayoutResponse{}, err
		}
		payout.DistributionRuleID = &ruleID
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		key := WaqfKey{GovID: govID, AssetKind: req.AssetKind, AssetLabel: req.AssetLabel}
		waqf, err := s.waqfRepo.FindByKey(txCtx, govID, req.AssetKind, req.AssetLabel)
		if err != nil {
			return notFoundOr(err, "waqf", key.String(), "fetch waqf")
		}

		beneficiary, err := requireActiveBeneficiary(txCtx, s.beneficiaryRepo, govID, req.BeneficiaryID)
		if err != nil {
			return err
		}
		payout.BeneficiaryID = beneficiary.ID
		payout.Beneficiary = beneficiary

		// Settlement details default to the beneficiary's bank record.
		payout.IBAN = firstNonNil(req.IBAN, beneficiary.IBAN)
		payout.BankName = firstNonNil(req.BankName, beneficiary.BankName)
		payout.AccountHolderName = firstNonNil(req.AccountHolderName, beneficiary.AccountHolderName)

		if payout.DistributionRuleID != nil {
			if _, err := s.ruleRepo.FindByID(txCtx, govID, *payout.DistributionRuleID); err != nil {
				return notFoundOr(err, "distribution rule", *req.DistributionRuleID, "fetch distribution rule")
			}
		}

		payout.Currency = waqf.Currency
		if req.ProfitID != nil {
			profitID, err := parseID("profit", *req.ProfitID)
			if err != nil {
				return err
			}
			profit, err := s.profitRepo.FindByID(txCtx, govID, profitID)
			if err != nil {
				return notFoundOr(err, "profit", *req.ProfitID, "fetch profit")
			}
			payout.ProfitID = &profit.ID
			payout.Currency = profit.Currency
		}
		if req.Currency != "" {
			payout.Currency = req.Currency
		}

		if err := s.payoutRepo.Create(txCtx, &payout); err != nil {
			return fmt.Errorf("failed to create payout: %w", err)
		}

		audit := newAuditEntry(userID, govID, model.ActionCreatePayout, payout.ID.String(), beneficiary.FullName+" "+amount.StringFixed(2), req)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}

		if payout.Status == model.PayoutCompleted {
			return s.settleProfit(txCtx, govID, payout.ProfitID)
		}
		return nil
	})
	if err != nil {
		return PayoutResponse{}, err
	}

	resp := toPayoutResponse(payout)
	s.publisher.Publish(govID, EventPayoutCreated, resp)
	return resp, nil
}

func (s *payoutService) UpdatePayout(ctx context.Context, userID string, govID int64, id string, req UpdatePayoutRequest) (PayoutResponse, error) {
	payoutID, err := parseID("payout", id)
	if err != nil {
		return PayoutResponse{}, err
	}

	patch := model.PayoutPatch{
		PayoutMethod:      req.PayoutMethod,
		Status:            req.Status,
		ReferenceNumber:   req.ReferenceNumber,
		Notes:             req.Notes,
		IBAN:              req.IBAN,
		BankName:          req.BankName,
		AccountHolderName: req.AccountHolderName,
	}
	if patch.Amount, err = parseOptionalDecimal("amount", req.Amount); err != nil {
		return PayoutResponse{}, err
	}
	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return PayoutResponse{}, distribution.ErrInvalidAmount
	}
	if patch.PayoutDate, err = parseOptionalDate("payout_date", req.PayoutDate); err != nil {
		return PayoutResponse{}, err
	}

	return s.applyPatch(ctx, userID, govID, id, payoutID, patch, model.ActionUpdatePayout, req)
}

// CancelPayout is the delete operation; cancelled payouts stay in the history.
func (s *payoutService) CancelPayout(ctx context.Context, userID string, govID int64, id string) (PayoutResponse, error) {
	payoutID, err := parseID("payout", id)
	if err != nil {
		return PayoutResponse{}, err
	}
	cancelled := model.PayoutCancelled
	patch := model.PayoutPatch{Status: &cancelled}
	return s.applyPatch(ctx, userID, govID, id, payoutID, patch, model.ActionCancelPayout, map[string]string{"cancelled_id": id})
}

func (s *payoutService) ReconcileYear(ctx context.Context, govID int64, year int) (ReconciliationResponse, error) {
	if year <= 0 {
		year = s.now().Year()
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var (
		profitTotal decimal.Decimal
		payouts     []model.Payout
	)
	err := s.txManager.RunInSnapshot(ctx, func(txCtx context.Context) error {
		if _, err := requireWaqf(txCtx, s.waqfRepo, govID); err != nil {
			return err
		}
		var err error
		if profitTotal, err = s.dashboardRepo.SumProfits(txCtx, govID, "", start, end); err != nil {
			return err
		}
		payouts, err = s.payoutRepo.ListForReconciliation(txCtx, govID, model.PayoutFilter{From: &start, To: &end})
		if err != nil {
			return fmt.Errorf("failed to fetch payouts: %w", err)
		}
		return nil
	})
	if err != nil {
		return ReconciliationResponse{}, err
	}

	return ReconciliationResponse{
		WaqfGovID:   govID,
		Period:      strconv.Itoa(year),
		ProfitTotal: profitTotal.StringFixed(2),
		PayoutCount: len(payouts),
		Result:      distribution.Reconcile(profitTotal, toPayoutRecords(payouts), s.reconcileOpts...),
	}, nil
}

func (s *payoutService) ReconcileProfit(ctx context.Context, govID int64, rawProfitID string) (ReconciliationResponse, error) {
	profitID, err := parseID("profit", rawProfitID)
	if err != nil {
		return ReconciliationResponse{}, err
	}

	var (
		profit  *model.Profit
		payouts []model.Payout
	)
	err = s.txManager.RunInSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		if profit, err = s.profitRepo.FindByID(txCtx, govID, profitID); err != nil {
			return notFoundOr(err, "profit", rawProfitID, "fetch profit")
		}
		payouts, err = s.payoutRepo.ListForReconciliation(txCtx, govID, model.PayoutFilter{ProfitID: &profitID})
		if err != nil {
			return fmt.Errorf("failed to fetch payouts: %w", err)
		}
		return nil
	})
	if err != nil {
		return ReconciliationResponse{}, err
	}

	period := profit.PeriodStart.Format(dateLayout)
	if profit.PeriodEnd != nil {
		period += ".." + profit.PeriodEnd.Format(dateLayout)
	}
	return ReconciliationResponse{
		WaqfGovID:   govID,
		Period:      period,
		ProfitTotal: profit.Amount.StringFixed(2),
		PayoutCount: len(payouts),
		Result:      distribution.Reconcile(profit.Amount, toPayoutRecords(payouts), s.reconcileOpts...),
	}, nil
}

// --- Helpers ---

func (s *payoutService) applyPatch(ctx context.Context, userID string, govID int64, id string, payoutID uuid.UUID, patch model.PayoutPatch, action string, details interface{}) (PayoutResponse, error) {
	var (
		updated       *model.Payout
		statusChanged bool
	)
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.payoutRepo.FindByID(txCtx, govID, payoutID)
		if err != nil {
			return notFoundOr(err, "payout", id, "fetch payout")
		}

		if patch.Status != nil && *patch.Status != current.Status {
			if !canTransition(current.Status, *patch.Status) {
				return &TransitionError{From: current.Status, To: *patch.Status}
			}
			statusChanged = true
			if *patch.Status == model.PayoutCompleted {
				completedAt := s.now()
				patch.CompletedAt = &completedAt
			}
		} else if isFinal(current.Status) && (patch.Amount != nil || patch.PayoutDate != nil) {
			return ErrPayoutFinalized
		}

		rows, err := s.payoutRepo.Update(txCtx, govID, payoutID, patch)
		if err != nil {
			return fmt.Errorf("failed to update payout: %w", err)
		}
		if rows == 0 {
			return distribution.NewNotFound("payout", id)
		}

		if updated, err = s.payoutRepo.FindByID(txCtx, govID, payoutID); err != nil {
			return notFoundOr(err, "payout", id, "fetch payout")
		}

		audit := newAuditEntry(userID, govID, action, id, updated.Status, details)
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}

		if statusChanged {
			return s.settleProfit(txCtx, govID, updated.ProfitID)
		}
		return nil
	})
	if err != nil {
		return PayoutResponse{}, err
	}

	resp := toPayoutResponse(*updated)
	if statusChanged {
		if s.metrics != nil {
			s.metrics.IncrementPayoutStatusChange(updated.Status)
		}
		s.publisher.Publish(govID, EventPayoutStatusChanged, resp)
	}
	return resp, nil
}

// settleProfit moves a profit to distributed once its completed payouts cover it, and
// back to allocated when they no longer do.
func (s *payoutService) settleProfit(ctx context.Context, govID int64, profitID *uuid.UUID) error {
	if profitID == nil {
		return nil
	}
	profit, err := s.profitRepo.FindByID(ctx, govID, *profitID)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to fetch profit: %w", err)
	}
	payouts, err := s.payoutRepo.ListForReconciliation(ctx, govID, model.PayoutFilter{ProfitID: profitID})
	if err != nil {
		return fmt.Errorf("failed to fetch payouts: %w", err)
	}

	rec := distribution.Reconcile(profit.Amount, toPayoutRecords(payouts))
	target := profit.Status
	switch {
	case rec.StatusLabel.Status == distribution.StatusFullyPaid:
		target = model.ProfitDistributed
	case profit.Status == model.ProfitDistributed:
		target = model.ProfitAllocated
	}
	if target == profit.Status {
		return nil
	}
	if _, err := s.profitRepo.Update(ctx, govID, profit.ID, model.ProfitPatch{Status: &target}); err != nil {
		return fmt.Errorf("failed to update profit status: %w", err)
	}
	return nil
}

func isFinal(status string) bool {
	return status == model.PayoutCompleted || status == model.PayoutCancelled
}

func firstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func toPayoutRecords(payouts []model.Payout) []distribution.PayoutRecord {
	records := make([]distribution.PayoutRecord, 0, len(payouts))
	for _, p := range payouts {
		records = append(records, distribution.PayoutRecord{
			BeneficiaryID: p.BeneficiaryID,
			Amount:        p.Amount,
			Status:        distribution.PayoutStatus(p.Status),
			Date:          p.PayoutDate,
		})
	}
	return records
}

func toPayoutResponse(p model.Payout) PayoutResponse {
	resp := PayoutResponse{
		ID:                p.ID.String(),
		WaqfGovID:         p.WaqfGovID,
		AssetKind:         p.AssetKind,
		AssetLabel:        p.AssetLabel,
		BeneficiaryID:     p.BeneficiaryID.String(),
		Amount:            p.Amount.StringFixed(2),
		Currency:          p.Currency,
		PayoutDate:        p.PayoutDate.Format(dateLayout),
		PayoutMethod:      p.PayoutMethod,
		Status:            p.Status,
		ReferenceNumber:   p.ReferenceNumber,
		Notes:             p.Notes,
		IBAN:              p.IBAN,
		BankName:          p.BankName,
		AccountHolderName: p.AccountHolderName,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
	}
	if p.Beneficiary != nil {
		resp.BeneficiaryName = p.Beneficiary.FullName
	}
	if p.DistributionRuleID != nil {
		id := p.DistributionRuleID.String()
		resp.DistributionRuleID = &id
	}
	if p.ProfitID != nil {
		id := p.ProfitID.String()
		resp.ProfitID = &id
	}
	if p.CompletedAt != nil {
		c := p.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &c
	}
	return resp
}
