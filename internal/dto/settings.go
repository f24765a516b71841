package dto

import "github.com/shopspring/decimal"

// UpdateWeeklyTargetRequest changes the weekly sales goal used as the metrics
// denominator. Must be positive.
type UpdateWeeklyTargetRequest struct {
	WeeklyTarget decimal.Decimal `json:"weeklyTarget" binding:"required"`
}
