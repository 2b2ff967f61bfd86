package service

import (
	"context"
	"testing"
	"time"

	"awqaf/internal/distribution"
	"awqaf/internal/model"
	"awqaf/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) addPayout(b model.Beneficiary, amount, date, status string) {
	_ = e.payouts.Create(context.Background(), &model.Payout{
		WaqfGovID:     testGovID,
		AssetKind:     model.AssetKindCash,
		BeneficiaryID: b.ID,
		Amount:        dec(amount),
		Currency:      "SAR",
		PayoutDate:    day(date),
		PayoutMethod:  model.PayoutMethodBankTransfer,
		Status:        status,
	})
}

func TestGetSummary(t *testing.T) {
	env := newTestEnv()
	propertyProfit := dec("500.004")
	env.waqfs.waqfs = append(env.waqfs.waqfs, model.Waqf{
		ID:               2,
		GovID:            testGovID,
		AssetKind:        model.AssetKindProperty,
		AssetLabel:       strPtr("Riyadh tower"),
		Name:             "Al-Noor Endowment",
		Corpus:           dec("50000"),
		LastPeriodProfit: &propertyProfit,
		Currency:         "SAR",
	})

	a := env.beneficiaries.add(testGovID, "Aisha", true)
	b := env.beneficiaries.add(testGovID, "Bilal", true)
	env.beneficiaries.add(testGovID, "Camila", false)
	env.addRule(a, model.ShareTypePercent, "60", 1)

	env.addPayout(a, "600", "2026-03-02", model.PayoutCompleted)
	env.addPayout(a, "100", "2026-01-10", model.PayoutCompleted)
	env.addPayout(b, "300", "2026-03-05", model.PayoutPending)
	env.addProfit("1500", "2026-03-01", model.ProfitAllocated)
	env.addProfit("200", "2026-01-01", model.ProfitPending)
	env.addProfit("999", "2025-01-01", model.ProfitPending)

	res, err := env.dashboardService().GetSummary(context.Background(), testGovID)
	require.NoError(t, err)

	assert.Equal(t, testGovID, res.WaqfGovID)
	assert.Equal(t, "Al-Noor Endowment", res.WaqfName)
	assert.Equal(t, 2, res.AssetCount)

	totals := res.Totals
	assert.Equal(t, "150000.00", totals.Corpus.StringFixed(2))
	assert.Equal(t, "1500.00", totals.LastPeriodProfit.StringFixed(2))
	assert.True(t, totals.CompletedPayoutTotal.Equal(dec("700")))
	assert.True(t, totals.MonthOutflow.Equal(dec("600")))
	assert.True(t, totals.MonthInflow.Equal(dec("1500")))
	assert.True(t, totals.CurrentYearPendingProfit.Equal(dec("200")))
	assert.EqualValues(t, 2, totals.ActiveBeneficiaries)
	assert.EqualValues(t, 1, totals.ActiveRules)

	rec := res.Reconciliation
	assert.Equal(t, distribution.StatusPartiallyPaid, rec.StatusLabel.Status)
	assert.True(t, rec.ExecutedTotal.Equal(dec("700")))
	assert.True(t, rec.PendingTotal.Equal(dec("800")))

	require.Len(t, res.TopBeneficiaries, 1)
	assert.Equal(t, a.ID.String(), res.TopBeneficiaries[0].BeneficiaryID)
	assert.EqualValues(t, 2, res.TopBeneficiaries[0].PayoutCount)
}

func TestGetSummary_EmptyWaqf(t *testing.T) {
	env := newTestEnv()
	res, err := env.dashboardService().GetSummary(context.Background(), testGovID)
	require.NoError(t, err)
	assert.NotNil(t, res.TopBeneficiaries)
	assert.Equal(t, distribution.StatusPending, res.Reconciliation.StatusLabel.Status)

	_, err = env.dashboardService().GetSummary(context.Background(), 404)
	assert.ErrorIs(t, err, distribution.ErrNotFound)
}

type fakeFlowRepo struct {
	groupBy    string
	start, end string
	rows       []repository.FlowRow
}

func (r *fakeFlowRepo) GetFlows(_ context.Context, _ int64, groupBy string, start, end time.Time) ([]repository.FlowRow, error) {
	r.groupBy = groupBy
	r.start = start.Format(dateLayout)
	r.end = end.Format(dateLayout)
	return r.rows, nil
}

func TestGetFlows(t *testing.T) {
	repo := &fakeFlowRepo{rows: []repository.FlowRow{
		{Period: "2026-01-01", ProfitInflow: dec("1000"), PayoutOutflow: dec("400.125"), PendingOutflow: dec("50")},
		{Period: "2026-02-01", PayoutOutflow: dec("100")},
	}}
	svc := NewFlowService(repo).(*flowService)
	svc.now = fixedClock(testToday)

	flows, err := svc.GetFlows(context.Background(), testGovID, FlowFilter{})
	require.NoError(t, err)
	assert.Equal(t, "month", repo.groupBy)
	assert.Equal(t, "2025-03-15", repo.start)
	assert.Equal(t, testToday, repo.end)

	require.Len(t, flows, 2)
	assert.Equal(t, "599.88", flows[0].Net.StringFixed(2))
	assert.Equal(t, "400.13", flows[0].PayoutOutflow.StringFixed(2))
	assert.Equal(t, "-100.00", flows[1].Net.StringFixed(2))

	_, err = svc.GetFlows(context.Background(), testGovID, FlowFilter{GroupBy: "quarter", From: strPtr("2026-01-01"), To: strPtr("2026-06-30")})
	require.NoError(t, err)
	assert.Equal(t, "quarter", repo.groupBy)
	assert.Equal(t, "2026-01-01", repo.start)
	assert.Equal(t, "2026-06-30", repo.end)
}

func TestGetFlows_Rejections(t *testing.T) {
	svc := NewFlowService(&fakeFlowRepo{})
	ctx := context.Background()

	_, err := svc.GetFlows(ctx, testGovID, FlowFilter{GroupBy: "day; DROP TABLE payouts"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetFlows(ctx, testGovID, FlowFilter{From: strPtr("2026-05-01"), To: strPtr("2026-04-01")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetFlows(ctx, testGovID, FlowFilter{From: strPtr("01/05/2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuditLogs_ScopedToAuthorizedWaqfs(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	svc := NewAuditService(env.audit, env.waqfService())

	userID := uuid.MustParse(testUserID)
	other := int64(99)
	env.audit.entries = []model.AuditLog{
		{ID: uuid.New(), UserID: &userID, User: &model.User{Name: "Omar"}, WaqfGovID: ptrInt64(testGovID), Action: model.ActionCreateRule},
		{ID: uuid.New(), WaqfGovID: &other, Action: model.ActionCreatePayout},
	}

	logs, total, err := svc.GetAuditLogs(ctx, testNationalID, nil, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, logs, 1)
	assert.Equal(t, "Omar", logs[0].UserName)
	assert.Equal(t, testUserID, logs[0].UserID)

	_, _, err = svc.GetAuditLogs(ctx, testNationalID, &other, 1, 20)
	assert.ErrorIs(t, err, ErrForbidden)

	logs, _, err = svc.GetAuditLogs(ctx, "someone-else", nil, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func ptrInt64(v int64) *int64 {
	return &v
}
