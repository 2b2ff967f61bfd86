package model

import (
	"time"

	"github.com/google/uuid"
)

// Beneficiary receives a share of a waqf's profit. Deactivation is the only form of deletion.
type Beneficiary struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WaqfGovID         int64     `gorm:"not null;index" json:"waqf_gov_id"`
	FullName          string    `gorm:"type:varchar(255);not null" json:"full_name"`
	NationalID        *string   `gorm:"type:varchar(50)" json:"national_id"`
	Relation          *string   `gorm:"type:varchar(100)" json:"relation"`
	IsActive          bool      `gorm:"not null;default:true;index" json:"is_active"`
	IBAN              *string   `gorm:"column:iban;type:varchar(34)" json:"iban"`
	BankName          *string   `gorm:"type:varchar(255)" json:"bank_name"`
	AccountHolderName *string   `gorm:"type:varchar(255)" json:"account_holder_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type BeneficiaryPatch struct {
	FullName          *string
	NationalID        *string
	Relation          *string
	IsActive          *bool
	IBAN              *string
	BankName          *string
	AccountHolderName *string
}

func (p BeneficiaryPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.FullName != nil {
		cols["full_name"] = *p.FullName
	}
	if p.NationalID != nil {
		cols["national_id"] = *p.NationalID
	}
	if p.Relation != nil {
		cols["relation"] = *p.Relation
	}
	if p.IsActive != nil {
		cols["is_active"] = *p.IsActive
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
	return cols
}
