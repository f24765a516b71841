package services

import (
	"context"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
)

// SessionSvcFacade is the Anonymous/Authenticated state machine.
//
// Login and Restore transition to Authenticated; Logout returns to Anonymous.
// Current re-resolves the active user from the live state on every call, so a
// mirror pull that replaced the state (or removed the user) takes effect
// without any extra bookkeeping.
type SessionSvcFacade interface {
	// Login matches the exact, case-sensitive plaintext credential pair
	// against the user list. On success the user's identifier is persisted to
	// the auth slot. A mismatch yields apperrors.ErrInvalidCredentials and no
	// state change.
	Login(ctx context.Context, username, password string) (*domain.User, error)

	// Logout clears the persisted identifier and returns to Anonymous.
	Logout(ctx context.Context) error

	// Restore transitions directly to Authenticated when a persisted
	// identifier exists and matches a user in the loaded state ("remember me"
	// default). Returns apperrors.ErrNoSession when there is nothing to restore.
	Restore(ctx context.Context) (*domain.User, error)

	// Current returns the authenticated user, or apperrors.ErrNoSession.
	Current(ctx context.Context) (*domain.User, error)
}
