package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultFuelType is the fuel grade recorded when the caller supplies none.
const DefaultFuelType = "91"

// FuelLog is one refuelling entry. The type is an informational grade tag.
type FuelLog struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}
