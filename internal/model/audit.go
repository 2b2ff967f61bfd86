package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateWaqf        = "CREATE_WAQF"
	ActionUpdateWaqf        = "UPDATE_WAQF"
	ActionDeleteWaqf        = "DELETE_WAQF"
	ActionCreateBeneficiary = "CREATE_BENEFICIARY"
	ActionUpdateBeneficiary = "UPDATE_BENEFICIARY"
	ActionDeactivateBenef   = "DEACTIVATE_BENEFICIARY"
	ActionCreateRule        = "CREATE_DISTRIBUTION_RULE"
	ActionUpdateRule        = "UPDATE_DISTRIBUTION_RULE"
	ActionDeleteRule        = "DELETE_DISTRIBUTION_RULE"
	ActionCreateProfit      = "CREATE_PROFIT"
	ActionUpdateProfit      = "UPDATE_PROFIT"

	// Payout workflow actions
	ActionCreatePayout          = "CREATE_PAYOUT"
	ActionUpdatePayout          = "UPDATE_PAYOUT"
	ActionCancelPayout          = "CANCEL_PAYOUT"
	ActionPayoutsFromAllocation = "CREATE_PAYOUTS_FROM_ALLOCATION"
)

// AuditLog tracks Who, What, and When for critical system changes
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable for system-initiated changes
	User       *User      `gorm:"foreignKey:UserID" json:"user"`
	WaqfGovID  *int64     `gorm:"index" json:"waqf_gov_id"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string     `gorm:"type:jsonb" json:"details"` // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
