package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShareType enum constants
const (
	ShareTypePercent = "percent"
	ShareTypeFixed   = "fixed"
)

const DefaultRulePriority = 100

// DistributionRule assigns a beneficiary a percent or fixed share with temporal validity
type DistributionRule struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WaqfGovID     int64           `gorm:"not null;index:idx_rule_waqf_priority,priority:1" json:"waqf_gov_id"`
	BeneficiaryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"beneficiary_id"`
	Beneficiary   *Beneficiary    `gorm:"foreignKey:BeneficiaryID" json:"-"`
	ShareType     string          `gorm:"type:varchar(10);not null" json:"share_type"` // percent, fixed
	ShareValue    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"share_value"`
	Priority      int             `gorm:"not null;default:100;index:idx_rule_waqf_priority,priority:2" json:"priority"` // lower evaluates first
	ValidFrom     time.Time       `gorm:"type:date;not null" json:"valid_from"`
	ValidTo       *time.Time      `gorm:"type:date;index" json:"valid_to"` // nullable = open ended
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type RulePatch struct {
	ShareType  *string
	ShareValue *decimal.Decimal
	Priority   *int
	ValidFrom  *time.Time
	ValidTo    *time.Time
}

func (p RulePatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.ShareType != nil {
		cols["share_type"] = *p.ShareType
	}
	if p.ShareValue != nil {
		cols["share_value"] = *p.ShareValue
	}
	if p.Priority != nil {
		cols["priority"] = *p.Priority
	}
	if p.ValidFrom != nil {
		cols["valid_from"] = *p.ValidFrom
	}
	if p.ValidTo != nil {
		cols["valid_to"] = *p.ValidTo
	}
	return cols
}

// Apply returns a copy of the rule with the patch applied, used to validate the
// effective state before it is written.
func (p RulePatch) Apply(rule DistributionRule) DistributionRule {
	if p.ShareType != nil {
		rule.ShareType = *p.ShareType
	}
	if p.ShareValue != nil {
		rule.ShareValue = *p.ShareValue
	}
	if p.Priority != nil {
		rule.Priority = *p.Priority
	}
	if p.ValidFrom != nil {
		rule.ValidFrom = *p.ValidFrom
	}
	if p.ValidTo != nil {
		v := *p.ValidTo
		rule.ValidTo = &v
	}
	return rule
}
