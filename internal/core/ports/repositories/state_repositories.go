package repositories

import (
	"context"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
)

// StateReader defines read access to the persisted state blob.
type StateReader interface {
	// Load reads the full system state from the local slot. An absent slot,
	// an unreadable file or a malformed payload all yield apperrors.ErrNotFound
	// so the caller can fall back to the seeded default state.
	Load(ctx context.Context) (*domain.SystemState, error)
}

// StateWriter defines write access to the persisted state blob.
type StateWriter interface {
	// Save overwrites the local slot with the full serialized state.
	Save(ctx context.Context, state domain.SystemState) error
}

// StateRepositoryFacade combines read and write access to the state slot.
type StateRepositoryFacade interface {
	StateReader
	StateWriter
}

// AuthSlotRepositoryFacade manages the second local slot: the bare
// authenticated-user identifier that backs the "remember me" restore.
type AuthSlotRepositoryFacade interface {
	// LoadUserID returns the persisted identifier, or apperrors.ErrNotFound.
	LoadUserID(ctx context.Context) (string, error)

	// SaveUserID persists the identifier of the authenticated user.
	SaveUserID(ctx context.Context, userID string) error

	// Clear removes the persisted identifier. Clearing an absent slot is a no-op.
	Clear(ctx context.Context) error
}
