package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"awqaf/internal/distribution"
	"awqaf/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var (
	ErrWaqfExists        = errors.New("a waqf record with this gov id, asset kind and label already exists")
	ErrInvalidTransition = errors.New("invalid payout status transition")
	ErrPayoutFinalized   = errors.New("completed or cancelled payouts cannot be edited")
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("access denied for this waqf")
)

// TransitionError reports a payout status change that the workflow does not allow.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move payout from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// EventPublisher pushes real-time events to the clients watching a waqf.
type EventPublisher interface {
	Publish(govID int64, event string, data interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(int64, string, interface{}) {}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// notFoundOr converts gorm's not-found into the domain error and wraps everything else.
func notFoundOr(err error, entity, id, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return distribution.NewNotFound(entity, id)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// isNotFound reports whether err is a missing-row error from either layer.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, distribution.ErrNotFound)
}

// Amount is a decimal sent by a client, either as a JSON number or as a numeric string.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	if s := string(b); s == "null" || s == `""` {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = Amount(d.String())
	return nil
}

// AmountPtr is a convenience for optional amount fields.
func AmountPtr(v string) *Amount {
	a := Amount(v)
	return &a
}

func parseID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, distribution.NewNotFound(entity, raw)
	}
	return id, nil
}

func parseDecimal(field string, raw Amount) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero, invalidInput("%s must be a number", field)
	}
	return d, nil
}

func parseOptionalDecimal(field string, raw *Amount) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := parseDecimal(field, *raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, invalidInput("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}

func parseOptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := parseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func newAuditEntry(userID string, govID int64, action, entityID, entityName string, details interface{}) *model.AuditLog {
	detailsJSON, _ := json.Marshal(details)
	entry := &model.AuditLog{
		WaqfGovID:  &govID,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		entry.UserID = &parsed
	}
	return entry
}
