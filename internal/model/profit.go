package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfitStatus enum constants
const (
	ProfitAllocated   = "allocated"
	ProfitPending     = "pending"
	ProfitDistributed = "distributed"
)

// Profit records the profit a waqf produced over a period
type Profit struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WaqfGovID   int64           `gorm:"not null;index" json:"waqf_gov_id"`
	Amount      decimal.Decimal `gorm:"column:profit_amount;type:decimal(18,4);not null" json:"profit_amount"`
	Currency    string          `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	PeriodStart time.Time       `gorm:"column:profit_period_start;type:date;not null;index" json:"profit_period_start"`
	PeriodEnd   *time.Time      `gorm:"column:profit_period_end;type:date" json:"profit_period_end"`
	Status      string          `gorm:"type:varchar(20);not null;default:'allocated';index" json:"status"`
	Notes       *string         `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProfitPatch struct {
	Status    *string
	PeriodEnd *time.Time
	Notes     *string
}

func (p ProfitPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.PeriodEnd != nil {
		cols["profit_period_end"] = *p.PeriodEnd
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}
