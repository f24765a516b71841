package dto

import (
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DaySummaryResponse is the day view of the dashboard.
type DaySummaryResponse struct {
	Date         time.Time             `json:"date"`
	Total        decimal.Decimal       `json:"total"`
	Count        int                   `json:"count"`
	Transactions []TransactionResponse `json:"transactions"`
}

// WeeklyMetricsResponse is the weekly-target card of the dashboard.
type WeeklyMetricsResponse struct {
	WeekStart time.Time       `json:"weekStart"`
	WeekSales decimal.Decimal `json:"weekSales"`
	Target    decimal.Decimal `json:"target"`
	Percent   int             `json:"percent"`
	Remain    decimal.Decimal `json:"remain"`
}

// ToDaySummaryResponse converts a derived domain.DaySummary.
func ToDaySummaryResponse(summary *domain.DaySummary) DaySummaryResponse {
	return DaySummaryResponse{
		Date:         summary.Day,
		Total:        summary.Total,
		Count:        len(summary.Transactions),
		Transactions: ToListTransactionsResponse(summary.Transactions).Transactions,
	}
}

// ToWeeklyMetricsResponse converts a derived domain.WeeklyMetrics.
func ToWeeklyMetricsResponse(metrics *domain.WeeklyMetrics) WeeklyMetricsResponse {
	return WeeklyMetricsResponse{
		WeekStart: metrics.WeekStart,
		WeekSales: metrics.WeekSales,
		Target:    metrics.Target,
		Percent:   metrics.Percent,
		Remain:    metrics.Remain,
	}
}
