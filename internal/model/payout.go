package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutStatus enum constants
const (
	PayoutPending   = "pending"
	PayoutCompleted = "completed"
	PayoutFailed    = "failed"
	PayoutCancelled = "cancelled"
)

// PayoutMethod enum constants
const (
	PayoutMethodBankTransfer  = "Bank Transfer"
	PayoutMethodCash          = "Cash"
	PayoutMethodCheck         = "Check"
	PayoutMethodDigitalWallet = "Digital Wallet"
)

// Payout is a disbursement to one beneficiary. Only completed payouts count as money paid.
type Payout struct {
	ID                 uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WaqfGovID          int64           `gorm:"not null;index:idx_payout_waqf_date,priority:1" json:"waqf_gov_id"`
	AssetKind          string          `gorm:"type:varchar(20);not null" json:"asset_kind"`
	AssetLabel         *string         `gorm:"type:varchar(255)" json:"asset_label"`
	BeneficiaryID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"beneficiary_id"`
	Beneficiary        *Beneficiary    `gorm:"foreignKey:BeneficiaryID" json:"-"`
	DistributionRuleID *uuid.UUID      `gorm:"type:uuid;index" json:"distribution_rule_id"`
	ProfitID           *uuid.UUID      `gorm:"type:uuid;index" json:"profit_id"`
	Amount             decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	Currency           string          `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	PayoutDate         time.Time       `gorm:"type:date;not null;index:idx_payout_waqf_date,priority:2" json:"payout_date"`
	PayoutMethod       string          `gorm:"type:varchar(30);not null;default:'Bank Transfer'" json:"payout_method"`
	Status             string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReferenceNumber    *string         `gorm:"type:varchar(100)" json:"reference_number"`
	Notes              *string         `gorm:"type:text" json:"notes"`
	IBAN               *string         `gorm:"column:iban;type:varchar(34)" json:"iban"`
	BankName           *string         `gorm:"type:varchar(255)" json:"bank_name"`
	AccountHolderName  *string         `gorm:"type:varchar(255)" json:"account_holder_name"`
	CompletedAt        *time.Time      `json:"completed_at"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type PayoutPatch struct {
	Amount            *decimal.Decimal
	PayoutDate        *time.Time
	PayoutMethod      *string
	Status            *string
	ReferenceNumber   *string
	Notes             *string
	IBAN              *string
	BankName          *string
	AccountHolderName *string
	CompletedAt       *time.Time
}

func (p PayoutPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Amount != nil {
		cols["amount"] = *p.Amount
	}
	if p.PayoutDate != nil {
		cols["payout_date"] = *p.PayoutDate
	}
	if p.PayoutMethod != nil {
		cols["payout_method"] = *p.PayoutMethod
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.ReferenceNumber != nil {
		cols["reference_number"] = *p.ReferenceNumber
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if p.IBAN != nil {
		cols["iban"] = *p.IBAN
	}
	if p.BankName != nil {
		cols["bank_name"] = *p.BankName
	}
	if p.AccountHolderName != nil {
		cols["account_holder_name"] = *p.AccountHolderName
	}
	if p.CompletedAt != nil {
		cols["completed_at"] = *p.CompletedAt
	}
	return cols
}

// PayoutFilter narrows payout listings; zero values mean "no constraint".
type PayoutFilter struct {
	Status        string
	From          *time.Time
	To            *time.Time
	BeneficiaryID *uuid.UUID
	ProfitID      *uuid.UUID
}
