package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one sale (or failed attempt) recorded in a ledger.
// The date is caller-supplied and may be backdated via the day navigator.
type Transaction struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Type   SimType         `json:"type"`
	Amount decimal.Decimal `json:"amt"`
	Sims   int             `json:"sims"` // 0 for issue-typed entries
}
