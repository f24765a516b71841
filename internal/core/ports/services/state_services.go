package services

import (
	"context"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
)

// StateReaderSvc defines read operations over the in-memory system state.
type StateReaderSvc interface {
	// Snapshot returns a deep copy of the full current state.
	Snapshot(ctx context.Context) domain.SystemState

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByCredentials retrieves the first user matching the exact
	// username/password pair.
	GetUserByCredentials(ctx context.Context, username, password string) (*domain.User, error)

	// GetLedger retrieves a copy of the ledger owned by the given user.
	GetLedger(ctx context.Context, userID string) (domain.Ledger, error)
}

// StateWriterSvc defines write operations over the in-memory system state.
type StateWriterSvc interface {
	// CommitLedger swaps in a new ledger for the given user and persists the
	// resulting state to the local slot. It returns a snapshot of the
	// committed state for the caller to hand to the mirror push queue.
	// Local persistence failures are logged, never surfaced: the in-memory
	// commit always stands.
	CommitLedger(ctx context.Context, userID string, ledger domain.Ledger) (domain.SystemState, error)

	// Replace overwrites the entire state (mirror pulls) and persists it.
	Replace(ctx context.Context, state domain.SystemState) error
}

// StateSvcFacade combines all state-manager interfaces.
type StateSvcFacade interface {
	StateReaderSvc
	StateWriterSvc
}
