package repositories

import (
	"context"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
)

// MirrorRepositoryFacade talks to the opaque remote endpoint that mirrors the
// full state blob. There is no conflict detection: concurrent writers from
// different devices silently overwrite each other (last push wins).
type MirrorRepositoryFacade interface {
	// Pull fetches the remote blob. The payload must decode and carry at
	// least one user, otherwise an error is returned and the caller keeps its
	// local state untouched.
	Pull(ctx context.Context) (*domain.SystemState, error)

	// Push uploads the full state. Callers treat it as best-effort: failures
	// are logged, never retried and never surfaced to the user.
	Push(ctx context.Context, state domain.SystemState) error
}
