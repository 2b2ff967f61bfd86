package distribution

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoRules is returned when an allocation is requested for a waqf without valid rules.
	ErrNoRules = errors.New("no distribution rules found for this waqf, set up distribution rules first")

	ErrOverAllocation = errors.New("percent shares would exceed 100%")
	ErrNotFound       = errors.New("not found")
	ErrInvalidShare   = errors.New("invalid share")
	ErrInvalidAmount  = errors.New("amount must be a positive number")
)

// OverAllocationError reports a percent rule write that would push the active total above 100.
type OverAllocationError struct {
	CurrentTotal decimal.Decimal
	Requested    decimal.Decimal
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("total percent shares would exceed 100%%: current total %s%%, requested %s%%",
		e.CurrentTotal.String(), e.Requested.String())
}

func (e *OverAllocationError) Unwrap() error { return ErrOverAllocation }

// NotFoundError reports a missing entity or one that fails an ownership/activity check.
type NotFoundError struct {
	Entity string
	ID     string
	Reason string
}

func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	msg := e.Entity + " not found"
	if e.Reason != "" {
		msg += " or " + e.Reason
	}
	if e.ID != "" {
		msg += ": " + e.ID
	}
	return msg
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidShareError reports a share value outside its type's range or an unknown share type.
type InvalidShareError struct {
	ShareType string
	Value     decimal.Decimal
	Reason    string
}

func (e *InvalidShareError) Error() string {
	return fmt.Sprintf("invalid %s share %s: %s", e.ShareType, e.Value.String(), e.Reason)
}

func (e *InvalidShareError) Unwrap() error { return ErrInvalidShare }
