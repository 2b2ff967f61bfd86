package distribution

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReconcilerSuite struct {
	suite.Suite
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerSuite))
}

func payout(amount string, status PayoutStatus) PayoutRecord {
	return PayoutRecord{Amount: dec(amount), Status: status}
}

func (s *ReconcilerSuite) TestClassification() {
	s.Run("completed payouts covering the profit are fully paid", func() {
		rec := Reconcile(dec("1000"), []PayoutRecord{
			payout("600", PayoutCompleted),
			payout("400", PayoutCompleted),
		})
		s.Equal(StatusFullyPaid, rec.StatusLabel.Status)
		s.Equal("Fully Paid", rec.StatusLabel.Label)
		s.True(rec.PendingTotal.IsZero())
		s.Equal("1000.00", rec.ExecutedTotal.StringFixed(2))
	})

	s.Run("overpayment is still fully paid with nothing pending", func() {
		rec := Reconcile(dec("1000"), []PayoutRecord{payout("1200", PayoutCompleted)})
		s.Equal(StatusFullyPaid, rec.StatusLabel.Status)
		s.True(rec.PendingTotal.IsZero())
	})

	s.Run("some completed payouts are partially paid", func() {
		rec := Reconcile(dec("1000"), []PayoutRecord{
			payout("400", PayoutCompleted),
			payout("300", PayoutPending),
			payout("200", PayoutFailed),
			payout("100", PayoutCancelled),
		})
		s.Equal(StatusPartiallyPaid, rec.StatusLabel.Status)
		s.Equal("400.00", rec.ExecutedTotal.StringFixed(2))
		s.Equal("600.00", rec.PendingTotal.StringFixed(2))
	})

	s.Run("no completed payouts is pending", func() {
		rec := Reconcile(dec("1000"), []PayoutRecord{payout("1000", PayoutPending)})
		s.Equal(StatusPending, rec.StatusLabel.Status)
		s.Equal("Pending", rec.StatusLabel.Label)
		s.Equal("1000.00", rec.PendingTotal.StringFixed(2))
	})

	s.Run("empty payout list is pending", func() {
		rec := Reconcile(dec("1000"), nil)
		s.Equal(StatusPending, rec.StatusLabel.Status)
		s.True(rec.ExecutedTotal.IsZero())
	})

	s.Run("payouts against zero profit are partially paid", func() {
		rec := Reconcile(decimal.Zero, []PayoutRecord{payout("50", PayoutCompleted)})
		s.Equal(StatusPartiallyPaid, rec.StatusLabel.Status)
		s.True(rec.PendingTotal.IsZero())
	})

	s.Run("zero profit without payouts is pending", func() {
		rec := Reconcile(decimal.Zero, nil)
		s.Equal(StatusPending, rec.StatusLabel.Status)
	})
}

func (s *ReconcilerSuite) TestPendingCommittedOption() {
	payouts := []PayoutRecord{
		payout("400", PayoutCompleted),
		payout("600", PayoutPending),
	}

	rec := Reconcile(dec("1000"), payouts)
	s.Equal(StatusPartiallyPaid, rec.StatusLabel.Status)

	rec = Reconcile(dec("1000"), payouts, WithPendingCommitted())
	s.Equal(StatusFullyPaid, rec.StatusLabel.Status)
	s.True(rec.PendingTotal.IsZero())
}

func (s *ReconcilerSuite) TestOrderDoesNotMatter() {
	payouts := []PayoutRecord{
		payout("100.10", PayoutCompleted),
		payout("250", PayoutFailed),
		payout("0.35", PayoutCompleted),
		payout("300", PayoutCompleted),
	}
	reversed := make([]PayoutRecord, len(payouts))
	for i, p := range payouts {
		reversed[len(payouts)-1-i] = p
	}

	forward := Reconcile(dec("500"), payouts)
	backward := Reconcile(dec("500"), reversed)
	s.Equal(forward.StatusLabel.Status, backward.StatusLabel.Status)
	s.Equal(forward.StatusLabel.Display, backward.StatusLabel.Display)
	s.Equal("400.45", backward.ExecutedTotal.StringFixed(2))
	s.Equal("99.55", backward.PendingTotal.StringFixed(2))
}

func (s *ReconcilerSuite) TestDisplayCarriesTotals() {
	rec := Reconcile(dec("1000"), []PayoutRecord{payout("400", PayoutCompleted)})
	s.Equal("Partially Paid (paid 400.00, remaining 600.00)", rec.StatusLabel.Display)
	s.Equal("1000.00", rec.StatusLabel.ProfitTotal.StringFixed(2))
}

func TestPaymentStatus_Label(t *testing.T) {
	assert.Equal(t, "Fully Paid", StatusFullyPaid.Label())
	assert.Equal(t, "Partially Paid", StatusPartiallyPaid.Label())
	assert.Equal(t, "Pending", StatusPending.Label())
}
