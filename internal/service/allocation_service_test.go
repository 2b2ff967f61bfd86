package service

import (
	"context"
	"testing"

	"awqaf/internal/distribution"
	"awqaf/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedMixedRules sets up 50% + fixed 300 + 20% across three beneficiaries and a fourth,
// deactivated beneficiary whose rule must be skipped.
func seedMixedRules(env *testEnv) (a, b, c model.Beneficiary) {
	a = env.beneficiaries.add(testGovID, "Aisha", true)
	b = env.beneficiaries.add(testGovID, "Bilal", true)
	c = env.beneficiaries.add(testGovID, "Camila", true)
	gone := env.beneficiaries.add(testGovID, "Dawood", false)

	env.addRule(c, model.ShareTypePercent, "20", 3)
	env.addRule(a, model.ShareTypePercent, "50", 1)
	env.addRule(b, model.ShareTypeFixed, "300", 2)
	env.addRule(gone, model.ShareTypePercent, "10", 0)
	return a, b, c
}

func TestPreview_EvaluatesActiveRulesInPriorityOrder(t *testing.T) {
	env := newTestEnv()
	svc := env.allocationService()
	a, b, c := seedMixedRules(env)

	res, err := svc.Preview(context.Background(), testGovID, PreviewRequest{ProfitAmount: AmountPtr("1000")})
	require.NoError(t, err)

	assert.Equal(t, "Al-Noor Endowment", res.WaqfName)
	assert.Equal(t, "SAR", res.Currency)
	assert.Equal(t, testToday, res.EvaluatedOn)
	assert.Nil(t, res.ProfitID)

	require.Len(t, res.Allocations, 3)
	assert.Equal(t, a.ID, res.Allocations[0].BeneficiaryID)
	assert.Equal(t, b.ID, res.Allocations[1].BeneficiaryID)
	assert.Equal(t, c.ID, res.Allocations[2].BeneficiaryID)
	assert.Equal(t, "500.00", res.Allocations[0].AllocatedAmount.StringFixed(2))
	assert.Equal(t, "300.00", res.Allocations[1].AllocatedAmount.StringFixed(2))
	assert.Equal(t, "200.00", res.Allocations[2].AllocatedAmount.StringFixed(2))

	assert.Equal(t, 3, res.Summary.AllocationCount)
	assert.True(t, res.Summary.TotalAllocated.Equal(dec("1000")))
	assert.True(t, res.Summary.RemainingAmount.IsZero())
	assert.Empty(t, env.payouts.rows, "preview must not persist")
}

func TestPreview_UsesProfitRecord(t *testing.T) {
	env := newTestEnv()
	svc := env.allocationService()
	seedMixedRules(env)
	profit := env.addProfit("2000", "2026-01-01", model.ProfitPending)
	env.profits.rows[profit.ID].Currency = "USD"
	id := profit.ID.String()

	res, err := svc.Preview(context.Background(), testGovID, PreviewRequest{ProfitID: &id})
	require.NoError(t, err)
	require.NotNil(t, res.ProfitID)
	assert.Equal(t, id, *res.ProfitID)
	assert.Equal(t, "USD", res.Currency)
	assert.True(t, res.Summary.ProfitAmount.Equal(dec("2000")))
	assert.Equal(t, "1000.00", res.Allocations[0].AllocatedAmount.StringFixed(2))
}

func TestPreview_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("no rules", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.allocationService().Preview(ctx, testGovID, PreviewRequest{ProfitAmount: AmountPtr("1000")})
		assert.ErrorIs(t, err, distribution.ErrNoRules)
	})
	t.Run("rules expired before the evaluation date", func(t *testing.T) {
		env := newTestEnv()
		a := env.beneficiaries.add(testGovID, "Aisha", true)
		env.addRule(a, model.ShareTypePercent, "50", 1)
		ended := day("2026-02-28")
		env.rules.rules[0].ValidTo = &ended

		_, err := env.allocationService().Preview(ctx, testGovID, PreviewRequest{ProfitAmount: AmountPtr("1000")})
		assert.ErrorIs(t, err, distribution.ErrNoRules)

		res, err := env.allocationService().Preview(ctx, testGovID, PreviewRequest{ProfitAmount: AmountPtr("1000"), Date: strPtr("2026-02-01")})
		require.NoError(t, err)
		assert.Len(t, res.Allocations, 1)
	})
	t.Run("no amount", func(t *testing.T) {
		env := newTestEnv()
		seedMixedRules(env)
		_, err := env.allocationService().Preview(ctx, testGovID, PreviewRequest{})
		assert.ErrorIs(t, err, distribution.ErrInvalidAmount)
	})
	t.Run("non-positive amount", func(t *testing.T) {
		env := newTestEnv()
		seedMixedRules(env)
		_, err := env.allocationService().Preview(ctx, testGovID, PreviewRequest{ProfitAmount: AmountPtr("0")})
		assert.ErrorIs(t, err, distribution.ErrInvalidAmount)
	})
	t.Run("unknown waqf", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.allocationService().Preview(ctx, 404, PreviewRequest{ProfitAmount: AmountPtr("1000")})
		assert.ErrorIs(t, err, distribution.ErrNotFound)
	})
	t.Run("unknown profit", func(t *testing.T) {
		env := newTestEnv()
		seedMixedRules(env)
		_, err := env.allocationService().Preview(ctx, testGovID, PreviewRequest{ProfitID: strPtr("3b241101-e2bb-4255-8caf-4136c566a962")})
		assert.ErrorIs(t, err, distribution.ErrNotFound)
	})
}

func TestGeneratePayouts(t *testing.T) {
	env := newTestEnv()
	svc := env.allocationService()
	a, _, _ := seedMixedRules(env)
	env.beneficiaries.rows[a.ID].IBAN = strPtr("SA4420000001234567891234")
	profit := env.addProfit("1000", "2026-01-01", model.ProfitPending)
	id := profit.ID.String()

	res, err := svc.GeneratePayouts(context.Background(), testUserID, testGovID, GeneratePayoutsRequest{
		PreviewRequest: PreviewRequest{ProfitID: &id},
		PayoutDate:     strPtr("2026-03-31"),
	})
	require.NoError(t, err)

	require.Len(t, res.Payouts, 3)
	require.Len(t, env.payouts.rows, 3)
	for _, p := range env.payouts.rows {
		assert.Equal(t, model.PayoutPending, p.Status)
		assert.Equal(t, model.PayoutMethodBankTransfer, p.PayoutMethod)
		assert.Equal(t, "2026-03-31", p.PayoutDate.Format(dateLayout))
		require.NotNil(t, p.ProfitID)
		assert.Equal(t, profit.ID, *p.ProfitID)
		assert.NotNil(t, p.DistributionRuleID)
	}
	require.NotNil(t, env.payouts.rows[0].IBAN)
	assert.Equal(t, "SA4420000001234567891234", *env.payouts.rows[0].IBAN)

	assert.Equal(t, model.ProfitAllocated, env.profits.rows[profit.ID].Status)
	assert.Equal(t, []string{model.ActionPayoutsFromAllocation}, env.audit.actions())
	require.Len(t, env.publisher.events, 1)
	assert.Equal(t, EventPayoutsGenerated, env.publisher.events[0].event)
}

func TestGeneratePayouts_ReadsAndWritesInRepeatableRead(t *testing.T) {
	env := newTestEnv()
	svc := env.allocationService()
	txm := &recordingTx{}
	svc.txManager = txm
	seedMixedRules(env)

	_, err := svc.GeneratePayouts(context.Background(), testUserID, testGovID, GeneratePayoutsRequest{
		PreviewRequest: PreviewRequest{ProfitAmount: AmountPtr("1000")},
	})
	require.NoError(t, err)
	require.NotEmpty(t, txm.modes)
	assert.Equal(t, "repeatable-read", txm.modes[0], "outermost transaction sets the isolation level")
	assert.NotContains(t, txm.modes, "read-committed")
}

func TestGeneratePayouts_SkipsZeroAllocations(t *testing.T) {
	env := newTestEnv()
	svc := env.allocationService()
	a := env.beneficiaries.add(testGovID, "Aisha", true)
	b := env.beneficiaries.add(testGovID, "Bilal", true)
	env.addRule(a, model.ShareTypeFixed, "1000", 1)
	env.addRule(b, model.ShareTypeFixed, "100", 2)

	res, err := svc.GeneratePayouts(context.Background(), testUserID, testGovID, GeneratePayoutsRequest{
		PreviewRequest: PreviewRequest{ProfitAmount: AmountPtr("1000")},
	})
	require.NoError(t, err)
	assert.Len(t, res.Preview.Allocations, 2)
	require.Len(t, res.Payouts, 1)
	assert.Equal(t, a.ID.String(), res.Payouts[0].BeneficiaryID)
	assert.Equal(t, "1000.00", res.Payouts[0].Amount)
	assert.Equal(t, testToday, res.Payouts[0].PayoutDate)
}
