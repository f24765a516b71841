package dto

import (
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordFuelRequest appends a fuel log entry. Type defaults to the 91 grade
// when omitted; Date defaults to the server clock.
type RecordFuelRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
	Date   time.Time       `json:"date"`
}

// FuelLogResponse is the outward view of one fuel entry.
type FuelLogResponse struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}

// ListFuelResponse wraps the fuel log, newest first.
type ListFuelResponse struct {
	Entries []FuelLogResponse `json:"entries"`
}

// ToFuelLogResponse converts a domain.FuelLog to its response DTO.
func ToFuelLogResponse(entry domain.FuelLog) FuelLogResponse {
	return FuelLogResponse{
		ID:     entry.ID,
		Date:   entry.Date,
		Amount: entry.Amount,
		Type:   entry.Type,
	}
}

// ToListFuelResponse converts the fuel log of a ledger.
func ToListFuelResponse(entries []domain.FuelLog) ListFuelResponse {
	out := make([]FuelLogResponse, len(entries))
	for i, entry := range entries {
		out[i] = ToFuelLogResponse(entry)
	}
	return ListFuelResponse{Entries: out}
}
