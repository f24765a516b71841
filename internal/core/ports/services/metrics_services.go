package services

import (
	"context"
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
)

// MetricsSvcFacade derives the dashboard numbers. Everything here is
// recomputed from the ledger on every call; nothing is persisted.
type MetricsSvcFacade interface {
	// DaySummary returns the transactions whose date falls on the same local
	// calendar day as day, plus their total amount.
	DaySummary(ctx context.Context, userID string, day time.Time) (*domain.DaySummary, error)

	// Weekly returns sales since the most recent Sunday (local midnight) at
	// or before day, measured against the configured weekly target.
	Weekly(ctx context.Context, userID string, day time.Time) (*domain.WeeklyMetrics, error)
}
