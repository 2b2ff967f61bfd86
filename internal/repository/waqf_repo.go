package repository

import (
	"context"

	"awqaf/internal/model"

	"gorm.io/gorm"
)

type WaqfRepository interface {
	Create(ctx context.Context, waqf *model.Waqf) error
	FindByKey(ctx context.Context, govID int64, assetKind string, assetLabel *string) (*model.Waqf, error)
	FindFirstByGovID(ctx context.Context, govID int64) (*model.Waqf, error)
	ListByGovID(ctx context.Context, govID int64) ([]model.Waqf, error)
	ListByNationalID(ctx context.Context, nationalID string) ([]model.Waqf, error)
	Update(ctx context.Context, govID int64, assetKind string, assetLabel *string, patch model.WaqfPatch) (int64, error)
	Delete(ctx context.Context, govID int64, assetKind string, assetLabel *string) (int64, error)
	AddAuthorizedUser(ctx context.Context, member *model.WaqfAuthorizedUser) error
	IsAuthorized(ctx context.Context, govID int64, nationalID string) (bool, error)
}

type waqfRepository struct {
	db *gorm.DB
}

func NewWaqfRepository(db *gorm.DB) WaqfRepository {
	return &waqfRepository{db: db}
}

// byKey scopes a query to one waqf record; a nil label matches the unlabeled record.
func byKey(db *gorm.DB, govID int64, assetKind string, assetLabel *string) *gorm.DB {
	db = db.Where("gov_id = ? AND asset_kind = ?", govID, assetKind)
	if assetLabel == nil {
		return db.Where("asset_label IS NULL")
	}
	return db.Where("asset_label = ?", *assetLabel)
}

func (r *waqfRepository) Create(ctx context.Context, waqf *model.Waqf) error {
	return GetDB(ctx, r.db).Create(waqf).Error
}

func (r *waqfRepository) FindByKey(ctx context.Context, govID int64, assetKind string, assetLabel *string) (*model.Waqf, error) {
	var waqf model.Waqf
	if err := byKey(GetDB(ctx, r.db), govID, assetKind, assetLabel).First(&waqf).Error; err != nil {
		return nil, err
	}
	return &waqf, nil
}

func (r *waqfRepository) FindFirstByGovID(ctx context.Context, govID int64) (*model.Waqf, error) {
	var waqf model.Waqf
	if err := GetDB(ctx, r.db).Where("gov_id = ?", govID).Order("created_at asc").First(&waqf).Error; err != nil {
		return nil, err
	}
	return &waqf, nil
}

func (r *waqfRepository) ListByGovID(ctx context.Context, govID int64) ([]model.Waqf, error) {
	var waqfs []model.Waqf
	if err := GetDB(ctx, r.db).Where("gov_id = ?", govID).Order("created_at asc").Find(&waqfs).Error; err != nil {
		return nil, err
	}
	return waqfs, nil
}

func (r *waqfRepository) ListByNationalID(ctx context.Context, nationalID string) ([]model.Waqf, error) {
	var waqfs []model.Waqf
	err := GetDB(ctx, r.db).
		Where("gov_id IN (?)", GetDB(ctx, r.db).Model(&model.WaqfAuthorizedUser{}).Select("waqf_gov_id").Where("national_id = ?", nationalID)).
		Order("created_at desc").
		Find(&waqfs).Error
	if err != nil {
		return nil, err
	}
	return waqfs, nil
}

func (r *waqfRepository) Update(ctx context.Context, govID int64, assetKind string, assetLabel *string, patch model.WaqfPatch) (int64, error) {
	cols := patch.Columns()
	if len(cols) == 0 {
		var count int64
		err := byKey(GetDB(ctx, r.db).Model(&model.Waqf{}), govID, assetKind, assetLabel).Count(&count).Error
		return count, err
	}
	res := byKey(GetDB(ctx, r.db).Model(&model.Waqf{}), govID, assetKind, assetLabel).Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *waqfRepository) Delete(ctx context.Context, govID int64, assetKind string, assetLabel *string) (int64, error) {
	res := byKey(GetDB(ctx, r.db), govID, assetKind, assetLabel).Delete(&model.Waqf{})
	return res.RowsAffected, res.Error
}

func (r *waqfRepository) AddAuthorizedUser(ctx context.Context, member *model.WaqfAuthorizedUser) error {
	return GetDB(ctx, r.db).
		Where("waqf_gov_id = ? AND national_id = ?", member.WaqfGovID, member.NationalID).
		FirstOrCreate(member).Error
}

func (r *waqfRepository) IsAuthorized(ctx context.Context, govID int64, nationalID string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.WaqfAuthorizedUser{}).
		Where("waqf_gov_id = ? AND national_id = ?", govID, nationalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
