package repository

import (
	"context"

	"awqaf/internal/model"
	"awqaf/pkg/pagination"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, govIDs []int64, page, limit int) ([]model.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

// List returns the audit trail of the given waqfs, newest first.
func (r *auditRepository) List(ctx context.Context, govIDs []int64, page, limit int) ([]model.AuditLog, int64, error) {
	var logs []model.AuditLog
	var total int64

	if len(govIDs) == 0 {
		return logs, 0, nil
	}

	db := GetDB(ctx, r.db).Model(&model.AuditLog{}).Where("waqf_gov_id IN ?", govIDs)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("User").Order("created_at desc").Scopes(pagination.Scope(page, limit)).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
