package repository

import (
	"context"
	"time"

	"awqaf/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DistributionRuleRepository interface {
	Create(ctx context.Context, rule *model.DistributionRule) error
	FindByID(ctx context.Context, govID int64, id uuid.UUID) (*model.DistributionRule, error)
	List(ctx context.Context, govID int64) ([]model.DistributionRule, error)
	// ListActive returns rules active on date in evaluation order: priority, then insertion.
	ListActive(ctx context.Context, govID int64, date time.Time) ([]model.DistributionRule, error)
	SumActivePercent(ctx context.Context, govID int64, date time.Time, excludeID *uuid.UUID) (decimal.Decimal, error)
	CountActive(ctx context.Context, govID int64, date time.Time) (int64, error)
	Update(ctx context.Context, govID int64, id uuid.UUID, patch model.RulePatch) (int64, error)
	Delete(ctx context.Context, govID int64, id uuid.UUID) (int64, error)
}

type distributionRuleRepository struct {
	db *gorm.DB
}

func NewDistributionRuleRepository(db *gorm.DB) DistributionRuleRepository {
	return &distributionRuleRepository{db: db}
}

func activeOn(db *gorm.DB, date time.Time) *gorm.DB {
	return db.Where("(valid_to IS NULL OR valid_to >= ?)", date.Format("2006-01-02"))
}

func (r *distributionRuleRepository) Create(ctx context.Context, rule *model.DistributionRule) error {
	return GetDB(ctx, r.db).Create(rule).Error
}

func (r *distributionRuleRepository) FindByID(ctx context.Context, govID int64, id uuid.UUID) (*model.DistributionRule, error) {
	var rule model.DistributionRule
	if err := GetDB(ctx, r.db).Preload("Beneficiary").First(&rule, "id = ? AND waqf_gov_id = ?", id, govID).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *distributionRuleRepository) List(ctx context.Context, govID int64) ([]model.DistributionRule, error) {
	var rules []model.DistributionRule
	if err := GetDB(ctx, r.db).Preload("Beneficiary").
		Where("waqf_gov_id = ?", govID).
		Order("priority asc, created_at asc, id asc").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *distributionRuleRepository) ListActive(ctx context.Context, govID int64, date time.Time) ([]model.DistributionRule, error) {
	var rules []model.DistributionRule
	if err := activeOn(GetDB(ctx, r.db), date).
		Where("waqf_gov_id = ?", govID).
		Order("priority asc, created_at asc, id asc").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *distributionRuleRepository) SumActivePercent(ctx context.Context, govID int64, date time.Time, excludeID *uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	query := activeOn(GetDB(ctx, r.db).Model(&model.DistributionRule{}), date).
		Where("waqf_gov_id = ? AND share_type = ?", govID, model.ShareTypePercent)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Select("COALESCE(SUM(share_value), 0) AS total").Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

func (r *distributionRuleRepository) CountActive(ctx context.Context, govID int64, date time.Time) (int64, error) {
	var count int64
	err := activeOn(GetDB(ctx, r.db).Model(&model.DistributionRule{}), date).
		Where("waqf_gov_id = ?", govID).
		Count(&count).Error
	return count, err
}

func (r *distributionRuleRepository) Update(ctx context.Context, govID int64, id uuid.UUID, patch model.RulePatch) (int64, error) {
	cols := patch.Columns()
	query := GetDB(ctx, r.db).Model(&model.DistributionRule{}).Where("id = ? AND waqf_gov_id = ?", id, govID)
	if len(cols) == 0 {
		var count int64
		err := query.Count(&count).Error
		return count, err
	}
	res := query.Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *distributionRuleRepository) Delete(ctx context.Context, govID int64, id uuid.UUID) (int64, error) {
	res := GetDB(ctx, r.db).Where("id = ? AND waqf_gov_id = ?", id, govID).Delete(&model.DistributionRule{})
	return res.RowsAffected, res.Error
}
