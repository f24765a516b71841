package domain

import (
	"fmt"
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SimType categorises a sold unit.
type SimType string

const (
	SimJawwy SimType = "jawwy"
	SimSawa  SimType = "sawa"
	SimMulti SimType = "multi"
	// SimIssue marks a failed/incomplete attempt; it never touches stock.
	SimIssue SimType = "issue"
)

// Valid reports whether t is one of the known SIM types.
func (t SimType) Valid() bool {
	switch t {
	case SimJawwy, SimSawa, SimMulti, SimIssue:
		return true
	}
	return false
}

// Stocked reports whether sales of this type consume stock.
func (t SimType) Stocked() bool {
	return t.Valid() && t != SimIssue
}

// DefaultWeeklyTarget is the fallback weekly sales goal when settings carry
// none (or a non-positive one, which would break the percent computation).
var DefaultWeeklyTarget = decimal.NewFromInt(3000)

// Settings holds per-ledger configuration.
type Settings struct {
	WeeklyTarget decimal.Decimal `json:"weeklyTarget"`
}

// StockAdjustment is one entry of the append-only stock audit trail.
type StockAdjustment struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Type  SimType   `json:"type"`
	Delta int       `json:"delta"`
}

// Ledger is the full business-state record owned by exactly one user.
//
// Every mutation below is a pure function: it takes the receiver by value and
// returns a fresh deep-copied ledger, leaving the input untouched. Either the
// whole new ledger is produced or an error is returned and nothing changes.
// Committing the result back to the owning user, persisting it and pushing it
// to the mirror is the caller's job.
type Ledger struct {
	Transactions []Transaction     `json:"tx"` // newest first
	Stock        map[SimType]int   `json:"stock"`
	Damaged      map[SimType]int   `json:"damaged"`
	StockLog     []StockAdjustment `json:"stockLog"`
	FuelLog      []FuelLog         `json:"fuelLog"` // newest first
	Settings     Settings          `json:"settings"`
}

// NewLedger returns an empty ledger with zeroed stock counters and the
// default weekly target.
func NewLedger() Ledger {
	return Ledger{
		Transactions: []Transaction{},
		Stock:        map[SimType]int{SimJawwy: 0, SimSawa: 0, SimMulti: 0},
		Damaged:      map[SimType]int{SimJawwy: 0, SimSawa: 0, SimMulti: 0},
		StockLog:     []StockAdjustment{},
		FuelLog:      []FuelLog{},
		Settings:     Settings{WeeklyTarget: DefaultWeeklyTarget},
	}
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := l
	out.Transactions = append([]Transaction(nil), l.Transactions...)
	out.StockLog = append([]StockAdjustment(nil), l.StockLog...)
	out.FuelLog = append([]FuelLog(nil), l.FuelLog...)
	out.Stock = make(map[SimType]int, len(l.Stock))
	for k, v := range l.Stock {
		out.Stock[k] = v
	}
	out.Damaged = make(map[SimType]int, len(l.Damaged))
	for k, v := range l.Damaged {
		out.Damaged[k] = v
	}
	return out
}

// WeeklyTargetOrDefault returns the configured weekly target, falling back to
// DefaultWeeklyTarget when the setting is absent or non-positive.
func (l Ledger) WeeklyTargetOrDefault() decimal.Decimal {
	if l.Settings.WeeklyTarget.IsPositive() {
		return l.Settings.WeeklyTarget
	}
	return DefaultWeeklyTarget
}

// RecordSale prepends a new transaction and, for stocked SIM types, decrements
// the stock counter by the number of SIMs sold. Stock is intentionally not
// clamped at zero: over-selling drives it negative, matching the deployed
// behaviour (see DESIGN.md).
func (l Ledger) RecordSale(simType SimType, amount decimal.Decimal, sims int, occurredAt time.Time) (Ledger, Transaction, error) {
	if !simType.Valid() {
		return Ledger{}, Transaction{}, fmt.Errorf("%w: unknown sim type %q", apperrors.ErrValidation, simType)
	}
	if amount.IsNegative() {
		return Ledger{}, Transaction{}, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if sims < 0 {
		return Ledger{}, Transaction{}, fmt.Errorf("%w: sims count must not be negative", apperrors.ErrValidation)
	}

	txn := Transaction{
		ID:     uuid.NewString(),
		Date:   occurredAt,
		Type:   simType,
		Amount: amount,
		Sims:   sims,
	}

	out := l.Clone()
	out.Transactions = append([]Transaction{txn}, out.Transactions...)
	if simType.Stocked() {
		out.Stock[simType] -= sims
	}
	return out, txn, nil
}

// DeleteTransaction removes the transaction with the given ID and restores the
// stock it consumed. An unknown ID is a no-op, not an error; the returned
// ledger is value-identical to the input and found is false.
func (l Ledger) DeleteTransaction(id string) (Ledger, bool) {
	out := l.Clone()
	for i, txn := range out.Transactions {
		if txn.ID != id {
			continue
		}
		out.Transactions = append(out.Transactions[:i], out.Transactions[i+1:]...)
		if txn.Type.Stocked() {
			out.Stock[txn.Type] += txn.Sims
		}
		return out, true
	}
	return out, false
}

// AdjustStock adds delta (positive or negative) to the stock counter of a
// stocked SIM type and appends an audit record to the stock log.
func (l Ledger) AdjustStock(simType SimType, delta int, occurredAt time.Time) (Ledger, error) {
	if !simType.Stocked() {
		return Ledger{}, fmt.Errorf("%w: sim type %q carries no stock", apperrors.ErrValidation, simType)
	}
	out := l.Clone()
	out.Stock[simType] += delta
	out.StockLog = append(out.StockLog, StockAdjustment{
		ID:    uuid.NewString(),
		Date:  occurredAt,
		Type:  simType,
		Delta: delta,
	})
	return out, nil
}

// AdjustDamaged adds delta to the damaged/returned counter of a stocked SIM
// type. Damaged counts are informational; they never feed back into stock.
func (l Ledger) AdjustDamaged(simType SimType, delta int) (Ledger, error) {
	if !simType.Stocked() {
		return Ledger{}, fmt.Errorf("%w: sim type %q carries no stock", apperrors.ErrValidation, simType)
	}
	out := l.Clone()
	out.Damaged[simType] += delta
	return out, nil
}

// RecordFuel prepends a new fuel log entry. Fuel entries are never deleted.
func (l Ledger) RecordFuel(amount decimal.Decimal, fuelType string, occurredAt time.Time) (Ledger, FuelLog, error) {
	if amount.IsNegative() {
		return Ledger{}, FuelLog{}, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	entry := FuelLog{
		ID:     uuid.NewString(),
		Date:   occurredAt,
		Amount: amount,
		Type:   fuelType,
	}
	out := l.Clone()
	out.FuelLog = append([]FuelLog{entry}, out.FuelLog...)
	return out, entry, nil
}

// WithWeeklyTarget returns the ledger with a new weekly sales target.
func (l Ledger) WithWeeklyTarget(target decimal.Decimal) (Ledger, error) {
	if !target.IsPositive() {
		return Ledger{}, fmt.Errorf("%w: weekly target must be positive", apperrors.ErrValidation)
	}
	out := l.Clone()
	out.Settings.WeeklyTarget = target
	return out, nil
}
