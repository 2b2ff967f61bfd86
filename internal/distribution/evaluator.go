package distribution

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Evaluate splits profitAmount across beneficiaries according to rules.
//
// The caller passes rules already filtered to those valid on the evaluation date, in
// insertion order; Evaluate orders them by priority with a stable sort so equal priorities
// keep that order. A rule whose beneficiary is unknown or inactive is skipped. Fixed shares
// are capped by what remains of the pool at their turn. Amounts are rounded to two decimals
// for display only; the running total keeps full precision. Rounding is half away from
// zero, so 0.005 becomes 0.01 and a remainder of -0.005 becomes -0.01.
//
// Evaluate never rejects inconsistent rule data. If percent rules sum above 100 the summary
// carries a negative remaining amount.
func Evaluate(profitAmount decimal.Decimal, rules []Rule, beneficiaries []Beneficiary) (Result, error) {
	if !profitAmount.IsPositive() {
		return Result{}, ErrInvalidAmount
	}
	if len(rules) == 0 {
		return Result{}, ErrNoRules
	}

	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	roster := make(map[uuid.UUID]Beneficiary, len(beneficiaries))
	for _, b := range beneficiaries {
		roster[b.ID] = b
	}

	allocations := make([]Allocation, 0, len(ordered))
	allocated := decimal.Zero

	for _, rule := range ordered {
		beneficiary, ok := roster[rule.BeneficiaryID]
		if !ok || !beneficiary.Active {
			continue
		}

		var amount decimal.Decimal
		switch rule.ShareType {
		case SharePercent:
			amount = profitAmount.Mul(rule.ShareValue).Div(hundred)
		case ShareFixed:
			amount = decimal.Min(rule.ShareValue, profitAmount.Sub(allocated))
		default:
			continue
		}

		allocations = append(allocations, Allocation{
			RuleID:             rule.ID,
			BeneficiaryID:      beneficiary.ID,
			BeneficiaryName:    beneficiary.FullName,
			Relation:           beneficiary.Relation,
			NationalID:         beneficiary.NationalID,
			ShareType:          rule.ShareType,
			ShareValue:         rule.ShareValue,
			AllocatedAmount:    amount.Round(2),
			PercentageOfProfit: percentOf(amount, profitAmount),
		})

		allocated = allocated.Add(amount)
	}

	return Result{
		Summary: Summary{
			ProfitAmount:             profitAmount,
			TotalAllocated:           allocated.Round(2),
			RemainingAmount:          profitAmount.Sub(allocated).Round(2),
			AllocationCount:          len(allocations),
			TotalPercentageAllocated: percentOf(allocated, profitAmount),
		},
		Allocations: allocations,
	}, nil
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return part.Mul(hundred).Div(whole).Round(2)
}
