package repository

import (
	"context"
	"fmt"
	"time"

	"awqaf/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FlowRow is one period bucket of money moving through a waqf.
type FlowRow struct {
	Period         string          `gorm:"column:period"`
	ProfitInflow   decimal.Decimal `gorm:"column:profit_inflow"`
	PayoutOutflow  decimal.Decimal `gorm:"column:payout_outflow"`
	PendingOutflow decimal.Decimal `gorm:"column:pending_outflow"`
}

type FlowRepository interface {
	GetFlows(ctx context.Context, govID int64, groupBy string, start, end time.Time) ([]FlowRow, error)
}

type flowRepository struct {
	db *gorm.DB
}

func NewFlowRepository(db *gorm.DB) FlowRepository {
	return &flowRepository{db: db}
}

// GetFlows buckets profits by period start and payouts by payout date. groupBy must be a
// DATE_TRUNC field the caller has already validated.
func (r *flowRepository) GetFlows(ctx context.Context, govID int64, groupBy string, start, end time.Time) ([]FlowRow, error) {
	query := `
		WITH flows AS (
			SELECT DATE_TRUNC($1, p.profit_period_start) AS bucket,
				p.profit_amount AS inflow, 0 AS outflow, 0 AS pending
			FROM profits p
			WHERE p.waqf_gov_id = $2
			  AND p.profit_period_start >= $3::date
			  AND p.profit_period_start <= $4::date
			UNION ALL
			SELECT DATE_TRUNC($1, o.payout_date) AS bucket,
				0 AS inflow,
				CASE WHEN o.status = $5 THEN o.amount ELSE 0 END AS outflow,
				CASE WHEN o.status = $6 THEN o.amount ELSE 0 END AS pending
			FROM payouts o
			WHERE o.waqf_gov_id = $2
			  AND o.payout_date >= $3::date
			  AND o.payout_date <= $4::date
		)
		SELECT
			TO_CHAR(bucket, 'YYYY-MM-DD') AS period,
			COALESCE(SUM(inflow), 0) AS profit_inflow,
			COALESCE(SUM(outflow), 0) AS payout_outflow,
			COALESCE(SUM(pending), 0) AS pending_outflow
		FROM flows
		GROUP BY bucket
		ORDER BY bucket
	`

	var rows []FlowRow
	if err := GetDB(ctx, r.db).Raw(query,
		groupBy, govID, start.Format(time.DateOnly), end.Format(time.DateOnly),
		model.PayoutCompleted, model.PayoutPending,
	).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query waqf flows: %w", err)
	}

	return rows, nil
}
