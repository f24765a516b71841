package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaySummary is the derived view of one calendar day. It is recomputed on
// every read and never persisted.
type DaySummary struct {
	Day          time.Time
	Transactions []Transaction
	Total        decimal.Decimal
}

// WeeklyMetrics is the derived weekly-target view, measured from the most
// recent Sunday (local midnight) at or before the reference date.
type WeeklyMetrics struct {
	WeekStart time.Time
	WeekSales decimal.Decimal
	Target    decimal.Decimal
	Percent   int // completion percentage, clamped to [0, 100]
	Remain    decimal.Decimal
}
