package repository

import (
	"context"

	"awqaf/internal/model"
	"awqaf/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfitRepository interface {
	Create(ctx context.Context, profit *model.Profit) error
	FindByID(ctx context.Context, govID int64, id uuid.UUID) (*model.Profit, error)
	List(ctx context.Context, govID int64, page, limit int) ([]model.Profit, int64, error)
	Update(ctx context.Context, govID int64, id uuid.UUID, patch model.ProfitPatch) (int64, error)
}

type profitRepository struct {
	db *gorm.DB
}

func NewProfitRepository(db *gorm.DB) ProfitRepository {
	return &profitRepository{db: db}
}

func (r *profitRepository) Create(ctx context.Context, profit *model.Profit) error {
	return GetDB(ctx, r.db).Create(profit).Error
}

func (r *profitRepository) FindByID(ctx context.Context, govID int64, id uuid.UUID) (*model.Profit, error) {
	var profit model.Profit
	if err := GetDB(ctx, r.db).First(&profit, "id = ? AND waqf_gov_id = ?", id, govID).Error; err != nil {
		return nil, err
	}
	return &profit, nil
}

func (r *profitRepository) List(ctx context.Context, govID int64, page, limit int) ([]model.Profit, int64, error) {
	var profits []model.Profit
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Profit{}).Where("waqf_gov_id = ?", govID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("profit_period_start desc, created_at desc").Scopes(pagination.Scope(page, limit)).Find(&profits).Error; err != nil {
		return nil, 0, err
	}

	return profits, total, nil
}

func (r *profitRepository) Update(ctx context.Context, govID int64, id uuid.UUID, patch model.ProfitPatch) (int64, error) {
	cols := patch.Columns()
	query := GetDB(ctx, r.db).Model(&model.Profit{}).Where("id = ? AND waqf_gov_id = ?", id, govID)
	if len(cols) == 0 {
		var count int64
		err := query.Count(&count).Error
		return count, err
	}
	res := query.Updates(cols)
	return res.RowsAffected, res.Error
}
