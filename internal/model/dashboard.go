package model

import (
	"github.com/shopspring/decimal"
)

// DashboardTotals aggregates the per-waqf figures shown on the summary screen
type DashboardTotals struct {
	Corpus                   decimal.Decimal `json:"corpus"`
	LastPeriodProfit         decimal.Decimal `json:"last_period_profit"`
	CompletedPayoutTotal     decimal.Decimal `json:"completed_payout_total"`
	ActiveBeneficiaries      int64           `json:"active_beneficiaries"`
	ActiveRules              int64           `json:"active_rules"`
	MonthInflow              decimal.Decimal `json:"month_inflow"`
	MonthOutflow             decimal.Decimal `json:"month_outflow"`
	CurrentYearPendingProfit decimal.Decimal `json:"current_year_pending_profit"`
}

// BeneficiaryPayoutTotal is the completed payout sum for one beneficiary
type BeneficiaryPayoutTotal struct {
	BeneficiaryID   string          `json:"beneficiary_id"`
	BeneficiaryName string          `json:"beneficiary_name"`
	PayoutCount     int64           `json:"payout_count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}
