package distribution

import "github.com/shopspring/decimal"

// ValidateShare checks a share value against the range of its type.
func ValidateShare(shareType ShareType, value decimal.Decimal) error {
	switch shareType {
	case SharePercent:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return &InvalidShareError{ShareType: string(shareType), Value: value, Reason: "percent share_value must be between 0 and 100"}
		}
	case ShareFixed:
		if value.IsNegative() {
			return &InvalidShareError{ShareType: string(shareType), Value: value, Reason: "fixed share_value must not be negative"}
		}
	default:
		return &InvalidShareError{ShareType: string(shareType), Value: value, Reason: "share_type must be 'percent' or 'fixed'"}
	}
	return nil
}

// CheckPercentCeiling rejects a percent share that would push the active total of a waqf
// above 100. existingTotal must exclude the rule being updated.
func CheckPercentCeiling(existingTotal, requested decimal.Decimal) error {
	if existingTotal.Add(requested).GreaterThan(hundred) {
		return &OverAllocationError{CurrentTotal: existingTotal, Requested: requested}
	}
	return nil
}
