package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WaqfType enum constants
const (
	WaqfTypeCharitable = "Charitable"
	WaqfTypeFamily     = "Family"
	WaqfTypeJoint      = "Joint"
)

// AssetKind enum constants
const (
	AssetKindProperty  = "Property"
	AssetKindCash      = "Cash"
	AssetKindCorporate = "Corporate"
)

const DefaultCurrency = "USD"

// Waqf is one endowed asset. GovID + AssetKind + AssetLabel form its immutable identity;
// beneficiaries, rules, profits and payouts are scoped by GovID.
type Waqf struct {
	ID               uint             `gorm:"primaryKey" json:"-"`
	GovID            int64            `gorm:"not null;uniqueIndex:idx_waqf_identity" json:"waqf_gov_id"`
	AssetKind        string           `gorm:"type:varchar(20);not null;uniqueIndex:idx_waqf_identity" json:"asset_kind"` // Property, Cash, Corporate
	AssetLabel       *string          `gorm:"type:varchar(255);uniqueIndex:idx_waqf_identity" json:"asset_label"`
	Name             string           `gorm:"type:varchar(255);not null" json:"waqf_name"`
	Type             string           `gorm:"type:varchar(20);not null" json:"waqf_type"` // Charitable, Family, Joint
	Corpus           decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0" json:"corpus"`
	LastPeriodProfit *decimal.Decimal `gorm:"type:decimal(18,4)" json:"last_period_profit"`
	Currency         string           `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`
}

// WaqfAuthorizedUser grants a national id access to every record of a waqf.
type WaqfAuthorizedUser struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	WaqfGovID  int64     `gorm:"not null;uniqueIndex:idx_waqf_member" json:"waqf_gov_id"`
	NationalID string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_waqf_member;index" json:"national_id"`
	IsFounder  bool      `gorm:"default:false" json:"is_founder"`
	CreatedAt  time.Time `json:"created_at"`
}

// WaqfPatch holds the mutable waqf fields; nil means "keep the stored value".
type WaqfPatch struct {
	Name             *string
	Type             *string
	Corpus           *decimal.Decimal
	LastPeriodProfit *decimal.Decimal
	Currency         *string
}

// Columns returns the present fields keyed by column name.
func (p WaqfPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Type != nil {
		cols["type"] = *p.Type
	}
	if p.Corpus != nil {
		cols["corpus"] = *p.Corpus
	}
	if p.LastPeriodProfit != nil {
		cols["last_period_profit"] = *p.LastPeriodProfit
	}
	if p.Currency != nil {
		cols["currency"] = *p.Currency
	}
	return cols
}
