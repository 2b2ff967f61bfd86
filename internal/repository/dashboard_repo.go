package repository

import (
	"context"
	"fmt"
	"time"

	"awqaf/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardRepository interface {
	SumCompletedPayouts(ctx context.Context, govID int64, start, end *time.Time) (decimal.Decimal, error)
	SumProfits(ctx context.Context, govID int64, status string, start, end time.Time) (decimal.Decimal, error)
	GetBeneficiaryTotals(ctx context.Context, govID int64, limit int) ([]model.BeneficiaryPayoutTotal, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type sumRow struct {
	Total decimal.Decimal
}

// SumCompletedPayouts totals completed payouts, optionally bounded by payout date (inclusive).
func (r *dashboardRepository) SumCompletedPayouts(ctx context.Context, govID int64, start, end *time.Time) (decimal.Decimal, error) {
	var row sumRow
	query := GetDB(ctx, r.db).Model(&model.Payout{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("waqf_gov_id = ? AND status = ?", govID, model.PayoutCompleted)
	if start != nil {
		query = query.Where("payout_date >= ?", start.Format(time.DateOnly))
	}
	if end != nil {
		query = query.Where("payout_date <= ?", end.Format(time.DateOnly))
	}
	if err := query.Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum completed payouts: %w", err)
	}
	return row.Total, nil
}

// SumProfits totals profits whose period starts within [start, end]; an empty status matches all.
func (r *dashboardRepository) SumProfits(ctx context.Context, govID int64, status string, start, end time.Time) (decimal.Decimal, error) {
	var row sumRow
	query := GetDB(ctx, r.db).Model(&model.Profit{}).
		Select("COALESCE(SUM(profit_amount), 0) AS total").
		Where("waqf_gov_id = ? AND profit_period_start >= ? AND profit_period_start <= ?",
			govID, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum profits: %w", err)
	}
	return row.Total, nil
}

func (r *dashboardRepository) GetBeneficiaryTotals(ctx context.Context, govID int64, limit int) ([]model.BeneficiaryPayoutTotal, error) {
	var totals []model.BeneficiaryPayoutTotal
	if err := GetDB(ctx, r.db).Table("payouts").
		Select("beneficiaries.id as beneficiary_id, beneficiaries.full_name as beneficiary_name, COUNT(payouts.id) as payout_count, COALESCE(SUM(payouts.amount), 0) as total_amount").
		Joins("JOIN beneficiaries ON beneficiaries.id = payouts.beneficiary_id").
		Where("payouts.waqf_gov_id = ? AND payouts.status = ?", govID, model.PayoutCompleted).
		Group("beneficiaries.id, beneficiaries.full_name").
		Order("total_amount DESC").
		Limit(limit).
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to query beneficiary totals: %w", err)
	}
	return totals, nil
}
