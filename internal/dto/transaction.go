package dto

import (
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordSaleRequest records one sale. Date is optional; when omitted the
// server clock is used, but the day navigator may backdate it freely.
type RecordSaleRequest struct {
	Type   domain.SimType  `json:"type" binding:"required,simtype"`
	Amount decimal.Decimal `json:"amt"`
	Sims   int             `json:"sims" binding:"min=0"`
	Date   time.Time       `json:"date"`
}

// TransactionResponse is the outward view of a ledger transaction.
type TransactionResponse struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amt"`
	Sims   int             `json:"sims"`
}

// ListTransactionsResponse wraps a day's transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:     txn.ID,
		Date:   txn.Date,
		Type:   string(txn.Type),
		Amount: txn.Amount,
		Sims:   txn.Sims,
	}
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return ListTransactionsResponse{Transactions: out}
}
