package repository

import (
	"context"

	"awqaf/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BeneficiaryRepository interface {
	Create(ctx context.Context, beneficiary *model.Beneficiary) error
	FindByID(ctx context.Context, govID int64, id uuid.UUID) (*model.Beneficiary, error)
	List(ctx context.Context, govID int64, includeInactive bool) ([]model.Beneficiary, error)
	Update(ctx context.Context, govID int64, id uuid.UUID, patch model.BeneficiaryPatch) (int64, error)
	CountActive(ctx context.Context, govID int64) (int64, error)
}

type beneficiaryRepository struct {
	db *gorm.DB
}

func NewBeneficiaryRepository(db *gorm.DB) BeneficiaryRepository {
	return &beneficiaryRepository{db: db}
}

func (r *beneficiaryRepository) Create(ctx context.Context, beneficiary *model.Beneficiary) error {
	return GetDB(ctx, r.db).Create(beneficiary).Error
}

func (r *beneficiaryRepository) FindByID(ctx context.Context, govID int64, id uuid.UUID) (*model.Beneficiary, error) {
	var b model.Beneficiary
	if err := GetDB(ctx, r.db).First(&b, "id = ? AND waqf_gov_id = ?", id, govID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *beneficiaryRepository) List(ctx context.Context, govID int64, includeInactive bool) ([]model.Beneficiary, error) {
	var list []model.Beneficiary
	query := GetDB(ctx, r.db).Where("waqf_gov_id = ?", govID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("full_name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *beneficiaryRepository) Update(ctx context.Context, govID int64, id uuid.UUID, patch model.BeneficiaryPatch) (int64, error) {
	cols := patch.Columns()
	query := GetDB(ctx, r.db).Model(&model.Beneficiary{}).Where("id = ? AND waqf_gov_id = ?", id, govID)
	if len(cols) == 0 {
		var count int64
		err := query.Count(&count).Error
		return count, err
	}
	res := query.Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *beneficiaryRepository) CountActive(ctx context.Context, govID int64) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Beneficiary{}).
		Where("waqf_gov_id = ? AND is_active = ?", govID, true).
		Count(&count).Error
	return count, err
}
