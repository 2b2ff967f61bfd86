package distribution

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutCompleted PayoutStatus = "completed"
	PayoutFailed    PayoutStatus = "failed"
	PayoutCancelled PayoutStatus = "cancelled"
)

// PayoutRecord is the reconciler's view of a payout.
type PayoutRecord struct {
	BeneficiaryID uuid.UUID
	Amount        decimal.Decimal
	Status        PayoutStatus
	Date          time.Time
}

type PaymentStatus string

const (
	StatusFullyPaid     PaymentStatus = "fully_paid"
	StatusPartiallyPaid PaymentStatus = "partially_paid"
	StatusPending       PaymentStatus = "pending"
)

var statusLabels = map[PaymentStatus]string{
	StatusFullyPaid:     "Fully Paid",
	StatusPartiallyPaid: "Partially Paid",
	StatusPending:       "Pending",
}

func (s PaymentStatus) Label() string {
	return statusLabels[s]
}

// StatusLabel carries the classification together with the totals it was derived from.
type StatusLabel struct {
	Status        PaymentStatus   `json:"status"`
	Label         string          `json:"label"`
	Display       string          `json:"display"`
	ProfitTotal   decimal.Decimal `json:"profit_total"`
	ExecutedTotal decimal.Decimal `json:"executed_total"`
	PendingTotal  decimal.Decimal `json:"pending_total"`
}

type Reconciliation struct {
	ExecutedTotal decimal.Decimal `json:"executed_total"`
	PendingTotal  decimal.Decimal `json:"pending_total"`
	StatusLabel   StatusLabel     `json:"status_label"`
}

type reconcileOptions struct {
	pendingCommitted bool
}

type ReconcileOption func(*reconcileOptions)

// WithPendingCommitted counts pending payouts as money already committed, in addition
// to completed ones.
func WithPendingCommitted() ReconcileOption {
	return func(o *reconcileOptions) {
		o.pendingCommitted = true
	}
}

// Reconcile compares a profit total against the payouts made for it. The result
// depends only on the sum of counted payouts, never on their order.
func Reconcile(profitTotal decimal.Decimal, payouts []PayoutRecord, opts ...ReconcileOption) Reconciliation {
	var o reconcileOptions
	for _, opt := range opts {
		opt(&o)
	}

	executed := decimal.Zero
	for _, p := range payouts {
		if p.Status == PayoutCompleted || (o.pendingCommitted && p.Status == PayoutPending) {
			executed = executed.Add(p.Amount)
		}
	}

	pending := decimal.Max(decimal.Zero, profitTotal.Sub(executed))
	status := classify(profitTotal, executed)

	return Reconciliation{
		ExecutedTotal: executed,
		PendingTotal:  pending,
		StatusLabel: StatusLabel{
			Status:        status,
			Label:         status.Label(),
			Display:       fmt.Sprintf("%s (paid %s, remaining %s)", status.Label(), executed.StringFixed(2), pending.StringFixed(2)),
			ProfitTotal:   profitTotal,
			ExecutedTotal: executed,
			PendingTotal:  pending,
		},
	}
}

func classify(profitTotal, executed decimal.Decimal) PaymentStatus {
	switch {
	case profitTotal.IsPositive() && executed.GreaterThanOrEqual(profitTotal):
		return StatusFullyPaid
	case executed.IsPositive():
		return StatusPartiallyPaid
	default:
		return StatusPending
	}
}
