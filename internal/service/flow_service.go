package service

import (
	"context"
	"time"

	"awqaf/internal/repository"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

type FlowDataPoint struct {
	Period         string          `json:"period"`
	ProfitInflow   decimal.Decimal `json:"profit_inflow"`
	PayoutOutflow  decimal.Decimal `json:"payout_outflow"`
	PendingOutflow decimal.Decimal `json:"pending_outflow"`
	Net            decimal.Decimal `json:"net"`
}

type FlowFilter struct {
	GroupBy string  // week, month, quarter, year
	From    *string // YYYY-MM-DD, defaults to twelve months before To
	To      *string // YYYY-MM-DD, defaults to today
}

// --- Interface ---

type FlowService interface {
	GetFlows(ctx context.Context, govID int64, filter FlowFilter) ([]FlowDataPoint, error)
}

type flowService struct {
	flowRepo repository.FlowRepository
	now      func() time.Time
}

func NewFlowService(flowRepo repository.FlowRepository) FlowService {
	return &flowService{flowRepo: flowRepo, now: time.Now}
}

// --- Implementation ---

func (s *flowService) GetFlows(ctx context.Context, govID int64, filter FlowFilter) ([]FlowDataPoint, error) {
	groupBy := filter.GroupBy
	switch groupBy {
	case "week", "month", "quarter", "year":
	case "":
		groupBy = "month"
	default:
		return nil, invalidInput("group_by must be one of week, month, quarter, year")
	}

	end := today(s.now())
	to, err := parseOptionalDate("to", filter.To)
	if err != nil {
		return nil, err
	}
	if to != nil {
		end = *to
	}
	start := end.AddDate(-1, 0, 0)
	from, err := parseOptionalDate("from", filter.From)
	if err != nil {
		return nil, err
	}
	if from != nil {
		start = *from
	}
	if end.Before(start) {
		return nil, invalidInput("to must not be before from")
	}

	rows, err := s.flowRepo.GetFlows(ctx, govID, groupBy, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]FlowDataPoint, 0, len(rows))
	for _, r := range rows {
		result = append(result, FlowDataPoint{
			Period:         r.Period,
			ProfitInflow:   r.ProfitInflow.Round(2),
			PayoutOutflow:  r.PayoutOutflow.Round(2),
			PendingOutflow: r.PendingOutflow.Round(2),
			Net:            r.ProfitInflow.Sub(r.PayoutOutflow).Round(2),
		})
	}
	return result, nil
}
