// Package distribution computes how a waqf's profit is split among its beneficiaries
// and how much of it has actually been paid out. Everything here is a pure function of
// its arguments: no database handle, clock or logger is reachable from this package.
package distribution

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShareType string

const (
	SharePercent ShareType = "percent"
	ShareFixed   ShareType = "fixed"
)

func (t ShareType) Valid() bool {
	return t == SharePercent || t == ShareFixed
}

var hundred = decimal.NewFromInt(100)

// Rule is the evaluator's view of a distribution rule.
type Rule struct {
	ID            uuid.UUID
	BeneficiaryID uuid.UUID
	ShareType     ShareType
	ShareValue    decimal.Decimal
	Priority      int
	ValidFrom     time.Time
	ValidTo       *time.Time
}

// ActiveOn reports whether the rule applies on the given date. Only the end of the
// validity window is considered; an open-ended rule is always active.
func (r Rule) ActiveOn(date time.Time) bool {
	if r.ValidTo == nil {
		return true
	}
	return !truncateDay(*r.ValidTo).Before(truncateDay(date))
}

// ActiveRules returns the rules active on date, preserving order.
func ActiveRules(rules []Rule, date time.Time) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.ActiveOn(date) {
			out = append(out, r)
		}
	}
	return out
}

type Beneficiary struct {
	ID         uuid.UUID
	FullName   string
	Relation   *string
	NationalID *string
	Active     bool
}

// Allocation is the computed share of one beneficiary.
type Allocation struct {
	RuleID             uuid.UUID       `json:"rule_id"`
	BeneficiaryID      uuid.UUID       `json:"beneficiary_id"`
	BeneficiaryName    string          `json:"beneficiary_name"`
	Relation           *string         `json:"relation"`
	NationalID         *string         `json:"national_id"`
	ShareType          ShareType       `json:"share_type"`
	ShareValue         decimal.Decimal `json:"share_value"`
	AllocatedAmount    decimal.Decimal `json:"allocated_amount"`
	PercentageOfProfit decimal.Decimal `json:"percentage_of_profit"`
}

type Summary struct {
	ProfitAmount             decimal.Decimal `json:"profit_amount"`
	TotalAllocated           decimal.Decimal `json:"total_allocated"`
	RemainingAmount          decimal.Decimal `json:"remaining_amount"`
	AllocationCount          int             `json:"allocation_count"`
	TotalPercentageAllocated decimal.Decimal `json:"total_percentage_allocated"`
}

type Result struct {
	Summary     Summary      `json:"summary"`
	Allocations []Allocation `json:"allocations"`
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
