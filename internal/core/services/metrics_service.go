package services

import (
	"context"
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// metricsService derives the dashboard numbers from the live ledger. Results
// are recomputed per call and never stored.
type metricsService struct {
	BaseService
	stateSvc portssvc.StateReaderSvc
	loc      *time.Location
}

// NewMetricsService creates the metrics engine. Calendar-day and week
// boundaries are evaluated in loc; pass nil for the process-local zone.
func NewMetricsService(stateSvc portssvc.StateReaderSvc, loc *time.Location) portssvc.MetricsSvcFacade {
	if loc == nil {
		loc = time.Local
	}
	return &metricsService{stateSvc: stateSvc, loc: loc}
}

func (s *metricsService) DaySummary(ctx context.Context, userID string, day time.Time) (*domain.DaySummary, error) {
	ledger, err := s.stateSvc.GetLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	txns := transactionsOn(ledger, day, s.loc)
	return &domain.DaySummary{
		Day:          dates.StartOfDay(day, s.loc),
		Transactions: txns,
		Total:        dayTotal(txns),
	}, nil
}

func (s *metricsService) Weekly(ctx context.Context, userID string, day time.Time) (*domain.WeeklyMetrics, error) {
	ledger, err := s.stateSvc.GetLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekStart := dates.MostRecentSunday(day, s.loc)
	weekSales := decimal.Zero
	for _, txn := range ledger.Transactions {
		if !txn.Date.Before(weekStart) {
			weekSales = weekSales.Add(txn.Amount)
		}
	}

	target := ledger.WeeklyTargetOrDefault()

	percent := int(weekSales.Mul(decimal.NewFromInt(100)).Div(target).Round(0).IntPart())
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	remain := target.Sub(weekSales)
	if remain.IsNegative() {
		remain = decimal.Zero
	}

	return &domain.WeeklyMetrics{
		WeekStart: weekStart,
		WeekSales: weekSales,
		Target:    target,
		Percent:   percent,
		Remain:    remain,
	}, nil
}

// transactionsOn keeps the entries whose date falls on the same calendar day
// as day in loc. Ledger order (newest first) is preserved.
func transactionsOn(ledger domain.Ledger, day time.Time, loc *time.Location) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(ledger.Transactions))
	for _, txn := range ledger.Transactions {
		if dates.SameDay(txn.Date, day, loc) {
			out = append(out, txn)
		}
	}
	return out
}

func dayTotal(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	return total
}
