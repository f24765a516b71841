package dto

import (
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
)

// AdjustStockRequest applies a manual restock (positive delta) or a
// correction (negative delta) to one stocked SIM type.
type AdjustStockRequest struct {
	Type  domain.SimType `json:"type" binding:"required,stockedsim"`
	Delta int            `json:"delta" binding:"required"`
}

// AdjustDamagedRequest records damaged/returned SIMs of one stocked type.
type AdjustDamagedRequest struct {
	Type  domain.SimType `json:"type" binding:"required,stockedsim"`
	Delta int            `json:"delta" binding:"required"`
}

// StockAdjustmentResponse is one entry of the stock audit trail.
type StockAdjustmentResponse struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Type  string    `json:"type"`
	Delta int       `json:"delta"`
}

// StockResponse is the inventory view: live counters plus the damaged bin and
// the append-only adjustment log.
type StockResponse struct {
	Stock    map[string]int            `json:"stock"`
	Damaged  map[string]int            `json:"damaged"`
	StockLog []StockAdjustmentResponse `json:"stockLog"`
}

// ToStockResponse converts the inventory part of a ledger.
func ToStockResponse(ledger domain.Ledger) StockResponse {
	stock := make(map[string]int, len(ledger.Stock))
	for k, v := range ledger.Stock {
		stock[string(k)] = v
	}
	damaged := make(map[string]int, len(ledger.Damaged))
	for k, v := range ledger.Damaged {
		damaged[string(k)] = v
	}
	log := make([]StockAdjustmentResponse, len(ledger.StockLog))
	for i, adj := range ledger.StockLog {
		log[i] = StockAdjustmentResponse{
			ID:    adj.ID,
			Date:  adj.Date,
			Type:  string(adj.Type),
			Delta: adj.Delta,
		}
	}
	return StockResponse{Stock: stock, Damaged: damaged, StockLog: log}
}
