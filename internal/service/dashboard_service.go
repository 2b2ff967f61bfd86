package service

import (
	"context"
	"fmt"
	"time"

	"awqaf/internal/distribution"
	"awqaf/internal/model"
	"awqaf/internal/repository"
)

const topBeneficiaryLimit = 5

type DashboardResponse struct {
	WaqfGovID        int64                          `json:"waqf_gov_id"`
	WaqfName         string                         `json:"waqf_name"`
	Currency         string                         `json:"currency"`
	AssetCount       int                            `json:"asset_count"`
	Totals           model.DashboardTotals          `json:"totals"`
	Reconciliation   distribution.Reconciliation    `json:"reconciliation"`
	TopBeneficiaries []model.BeneficiaryPayoutTotal `json:"top_beneficiaries"`
}

type DashboardService interface {
	GetSummary(ctx context.Context, govID int64) (DashboardResponse, error)
}

type dashboardService struct {
	waqfRepo        repository.WaqfRepository
	beneficiaryRepo repository.BeneficiaryRepository
	ruleRepo        repository.DistributionRuleRepository
	payoutRepo      repository.PayoutRepository
	dashboardRepo   repository.DashboardRepository
	txManager       repository.TransactionManager
	reconcileOpts   []distribution.ReconcileOption
	now             func() time.Time
}

func NewDashboardService(
	waqfRepo repository.WaqfRepository,
	beneficiaryRepo repository.BeneficiaryRepository,
	ruleRepo repository.DistributionRuleRepository,
	payoutRepo repository.PayoutRepository,
	dashboardRepo repository.DashboardRepository,
	txManager repository.TransactionManager,
	includePending bool,
) DashboardService {
	var opts []distribution.ReconcileOption
	if includePending {
		opts = append(opts, distribution.WithPendingCommitted())
	}
	return &dashboardService{
		waqfRepo:        waqfRepo,
		beneficiaryRepo: beneficiaryRepo,
		ruleRepo:        ruleRepo,
		payoutRepo:      payoutRepo,
		dashboardRepo:   dashboardRepo,
		txManager:       txManager,
		reconcileOpts:   opts,
		now:             time.Now,
	}
}

// GetSummary aggregates every asset record of the waqf and reconciles the last period
// profit against the payouts made so far.
func (s *dashboardService) GetSummary(ctx context.Context, govID int64) (DashboardResponse, error) {
	day := today(s.now())
	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	yearStart := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	var (
		res     DashboardResponse
		payouts []model.Payout
	)
	err := s.txManager.RunInSnapshot(ctx, func(txCtx context.Context) error {
		waqfs, err := s.waqfRepo.ListByGovID(txCtx, govID)
		if err != nil {
			return fmt.Errorf("failed to fetch waqf: %w", err)
		}
		if len(waqfs) == 0 {
			return distribution.NewNotFound("waqf", fmt.Sprint(govID))
		}
		res.WaqfGovID = govID
		res.WaqfName = waqfs[0].Name
		res.Currency = waqfs[0].Currency
		res.AssetCount = len(waqfs)

		t := &res.Totals
		for _, w := range waqfs {
			t.Corpus = t.Corpus.Add(w.Corpus)
			if w.LastPeriodProfit != nil {
				t.LastPeriodProfit = t.LastPeriodProfit.Add(*w.LastPeriodProfit)
			}
		}

		if t.CompletedPayoutTotal, err = s.dashboardRepo.SumCompletedPayouts(txCtx, govID, nil, nil); err != nil {
			return err
		}
		if t.MonthOutflow, err = s.dashboardRepo.SumCompletedPayouts(txCtx, govID, &monthStart, &monthEnd); err != nil {
			return err
		}
		if t.MonthInflow, err = s.dashboardRepo.SumProfits(txCtx, govID, "", monthStart, monthEnd); err != nil {
			return err
		}
		if t.CurrentYearPendingProfit, err = s.dashboardRepo.SumProfits(txCtx, govID, model.ProfitPending, yearStart, yearEnd); err != nil {
			return err
		}
		if t.ActiveBeneficiaries, err = s.beneficiaryRepo.CountActive(txCtx, govID); err != nil {
			return fmt.Errorf("failed to count beneficiaries: %w", err)
		}
		if t.ActiveRules, err = s.ruleRepo.CountActive(txCtx, govID, day); err != nil {
			return fmt.Errorf("failed to count distribution rules: %w", err)
		}

		if payouts, err = s.payoutRepo.ListForReconciliation(txCtx, govID, model.PayoutFilter{}); err != nil {
			return fmt.Errorf("failed to fetch payouts: %w", err)
		}
		if res.TopBeneficiaries, err = s.dashboardRepo.GetBeneficiaryTotals(txCtx, govID, topBeneficiaryLimit); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return DashboardResponse{}, err
	}

	if res.TopBeneficiaries == nil {
		res.TopBeneficiaries = []model.BeneficiaryPayoutTotal{}
	}
	res.Totals.Corpus = res.Totals.Corpus.Round(2)
	res.Totals.LastPeriodProfit = res.Totals.LastPeriodProfit.Round(2)
	res.Reconciliation = distribution.Reconcile(res.Totals.LastPeriodProfit, toPayoutRecords(payouts), s.reconcileOpts...)
	return res, nil
}
