package service

import (
	"context"

	"awqaf/internal/model"
)

const (
	testGovID      int64 = 7
	testNationalID       = "1010101010"
	testUserID           = "5f0c7a7e-4b7e-4a55-9d2a-0f6f3c7b9a11"
	testToday            = "2026-03-15"
)

// testEnv wires every service against the same in-memory store.
type testEnv struct {
	waqfs         *fakeWaqfRepo
	beneficiaries *fakeBeneficiaryRepo
	rules         *fakeRuleRepo
	profits       *fakeProfitRepo
	payouts       *fakePayoutRepo
	dashboard     *fakeDashboardRepo
	audit         *fakeAuditRepo
	locker        *fakeLocker
	publisher     *fakePublisher
}

func newTestEnv() *testEnv {
	lastProfit := dec("1000")
	waqfs := newFakeWaqfRepo(model.Waqf{
		GovID:            testGovID,
		AssetKind:        model.AssetKindCash,
		Name:             "Al-Noor Endowment",
		Type:             model.WaqfTypeCharitable,
		Corpus:           dec("100000"),
		LastPeriodProfit: &lastProfit,
		Currency:         "SAR",
	})
	waqfs.members[testGovID] = []string{testNationalID}

	payouts := &fakePayoutRepo{}
	profits := newFakeProfitRepo()
	return &testEnv{
		waqfs:         waqfs,
		beneficiaries: newFakeBeneficiaryRepo(),
		rules:         &fakeRuleRepo{},
		profits:       profits,
		payouts:       payouts,
		dashboard:     &fakeDashboardRepo{payouts: payouts, profits: profits},
		audit:         &fakeAuditRepo{},
		locker:        &fakeLocker{},
		publisher:     &fakePublisher{},
	}
}

func (e *testEnv) waqfService() WaqfService {
	return NewWaqfService(e.waqfs, e.audit, fakeTx{}, "")
}

func (e *testEnv) ruleService() *distributionRuleService {
	svc := NewDistributionRuleService(e.waqfs, e.beneficiaries, e.rules, e.audit, e.locker, nil).(*distributionRuleService)
	svc.now = fixedClock(testToday)
	return svc
}

func (e *testEnv) allocationService() *allocationService {
	svc := NewAllocationService(e.waqfs, e.beneficiaries, e.rules, e.profits, e.payouts, e.audit, fakeTx{}, e.publisher, nil).(*allocationService)
	svc.now = fixedClock(testToday)
	return svc
}

func (e *testEnv) payoutService(includePending bool) *payoutService {
	svc := NewPayoutService(e.waqfs, e.beneficiaries, e.profits, e.rules, e.payouts, e.dashboard, e.audit, fakeTx{}, e.publisher, nil, includePending).(*payoutService)
	svc.now = fixedClock(testToday)
	return svc
}

func (e *testEnv) profitService() ProfitService {
	return NewProfitService(e.waqfs, e.profits, e.audit, fakeTx{})
}

func (e *testEnv) dashboardService() *dashboardService {
	svc := NewDashboardService(e.waqfs, e.beneficiaries, e.rules, e.payouts, e.dashboard, fakeTx{}, false).(*dashboardService)
	svc.now = fixedClock(testToday)
	return svc
}

func (e *testEnv) addRule(b model.Beneficiary, shareType, value string, priority int) model.DistributionRule {
	rule := model.DistributionRule{
		WaqfGovID:     testGovID,
		BeneficiaryID: b.ID,
		ShareType:     shareType,
		ShareValue:    dec(value),
		Priority:      priority,
		ValidFrom:     day("2026-01-01"),
	}
	_ = e.rules.Create(context.Background(), &rule)
	return rule
}

func (e *testEnv) addProfit(amount, start, status string) model.Profit {
	p := model.Profit{
		WaqfGovID:   testGovID,
		Amount:      dec(amount),
		Currency:    "SAR",
		PeriodStart: day(start),
		Status:      status,
	}
	_ = e.profits.Create(context.Background(), &p)
	return p
}
