package services

import (
	"context"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
)

// SyncStatus is the signal surfaced to the UI's sync indicator.
type SyncStatus string

const (
	SyncIdle    SyncStatus = "idle"
	SyncPending SyncStatus = "pending"
)

// SyncSvcFacade orchestrates the best-effort mirroring of the state blob.
//
// Pushes go through a coalescing single-slot queue drained by a background
// worker: only the newest snapshot matters because the mirror stores the full
// blob and last write wins. There are no retries and no user-visible errors.
type SyncSvcFacade interface {
	// Refresh pulls the remote blob and, on success, replaces the local state
	// with it. On any failure the local state is left untouched and only a
	// warning is logged (offline-tolerant degrade).
	Refresh(ctx context.Context) error

	// EnqueuePush schedules a best-effort upload of the given snapshot,
	// replacing any snapshot still waiting in the queue. It never blocks.
	EnqueuePush(state domain.SystemState)

	// Status reports whether an upload is pending or in flight.
	Status() SyncStatus

	// Close stops the push worker. Pending uploads are abandoned.
	Close()
}
