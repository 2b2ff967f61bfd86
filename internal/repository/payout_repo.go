package repository

import (
	"context"
	"time"

	"awqaf/internal/model"
	"awqaf/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayoutRepository interface {
	Create(ctx context.Context, payout *model.Payout) error
	CreateBatch(ctx context.Context, payouts []model.Payout) error
	FindByID(ctx context.Context, govID int64, id uuid.UUID) (*model.Payout, error)
	List(ctx context.Context, govID int64, filter model.PayoutFilter, page, limit int) ([]model.Payout, int64, error)
	// ListForReconciliation returns every payout of the waqf matching filter, unpaginated.
	ListForReconciliation(ctx context.Context, govID int64, filter model.PayoutFilter) ([]model.Payout, error)
	Update(ctx context.Context, govID int64, id uuid.UUID, patch model.PayoutPatch) (int64, error)
}

type payoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &payoutRepository{db: db}
}

func applyPayoutFilter(db *gorm.DB, filter model.PayoutFilter) *gorm.DB {
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		db = db.Where("payout_date >= ?", filter.From.Format(time.DateOnly))
	}
	if filter.To != nil {
		db = db.Where("payout_date <= ?", filter.To.Format(time.DateOnly))
	}
	if filter.BeneficiaryID != nil {
		db = db.Where("beneficiary_id = ?", *filter.BeneficiaryID)
	}
	if filter.ProfitID != nil {
		db = db.Where("profit_id = ?", *filter.ProfitID)
	}
	return db
}

func (r *payoutRepository) Create(ctx context.Context, payout *model.Payout) error {
	return GetDB(ctx, r.db).Create(payout).Error
}

func (r *payoutRepository) CreateBatch(ctx context.Context, payouts []model.Payout) error {
	if len(payouts) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Create(&payouts).Error
}

func (r *payoutRepository) FindByID(ctx context.Context, govID int64, id uuid.UUID) (*model.Payout, error) {
	var payout model.Payout
	if err := GetDB(ctx, r.db).Preload("Beneficiary").First(&payout, "id = ? AND waqf_gov_id = ?", id, govID).Error; err != nil {
		return nil, err
	}
	return &payout, nil
}

func (r *payoutRepository) List(ctx context.Context, govID int64, filter model.PayoutFilter, page, limit int) ([]model.Payout, int64, error) {
	var payouts []model.Payout
	var total int64

	db := applyPayoutFilter(GetDB(ctx, r.db).Model(&model.Payout{}).Where("waqf_gov_id = ?", govID), filter)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Beneficiary").Order("payout_date desc, created_at desc").Scopes(pagination.Scope(page, limit)).Find(&payouts).Error; err != nil {
		return nil, 0, err
	}

	return payouts, total, nil
}

func (r *payoutRepository) ListForReconciliation(ctx context.Context, govID int64, filter model.PayoutFilter) ([]model.Payout, error) {
	var payouts []model.Payout
	db := applyPayoutFilter(GetDB(ctx, r.db).Where("waqf_gov_id = ?", govID), filter)
	if err := db.Order("payout_date asc, created_at asc").Find(&payouts).Error; err != nil {
		return nil, err
	}
	return payouts, nil
}

func (r *payoutRepository) Update(ctx context.Context, govID int64, id uuid.UUID, patch model.PayoutPatch) (int64, error) {
	cols := patch.Columns()
	query := GetDB(ctx, r.db).Model(&model.Payout{}).Where("id = ? AND waqf_gov_id = ?", id, govID)
	if len(cols) == 0 {
		var count int64
		err := query.Count(&count).Error
		return count, err
	}
	res := query.Updates(cols)
	return res.RowsAffected, res.Error
}
