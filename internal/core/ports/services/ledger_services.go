package services

import (
	"context"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	"github.com/TalalMnd/sim_sales_tracker/internal/dto"
)

// LedgerReaderSvc defines read operations for a user's ledger.
type LedgerReaderSvc interface {
	// GetLedger returns a copy of the user's full ledger.
	GetLedger(ctx context.Context, userID string) (domain.Ledger, error)
}

// LedgerWriterSvc defines the mutation operations. Each one applies a pure
// ledger function, commits the resulting snapshot and enqueues a mirror push.
type LedgerWriterSvc interface {
	// RecordSale records a sale (or an issue-typed failed attempt).
	RecordSale(ctx context.Context, userID string, req dto.RecordSaleRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and restores its stock.
	// Deleting an unknown ID succeeds without changing anything.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error

	// AdjustStock applies a manual restock (or correction) delta.
	AdjustStock(ctx context.Context, userID string, req dto.AdjustStockRequest) (domain.Ledger, error)

	// AdjustDamaged records damaged/returned SIMs.
	AdjustDamaged(ctx context.Context, userID string, req dto.AdjustDamagedRequest) (domain.Ledger, error)

	// RecordFuel appends a fuel log entry.
	RecordFuel(ctx context.Context, userID string, req dto.RecordFuelRequest) (*domain.FuelLog, error)

	// UpdateWeeklyTarget changes the weekly sales goal.
	UpdateWeeklyTarget(ctx context.Context, userID string, req dto.UpdateWeeklyTargetRequest) error
}

// LedgerSvcFacade combines all ledger-related service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
