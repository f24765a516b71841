package services

import (
	"context"
	"time"

	portsrepo "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/repositories"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The state service loads the local slot
// synchronously; kicking off the asynchronous mirror refresh afterwards is
// the caller's job (see cmd/simtracker).
func NewServiceContainer(ctx context.Context, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// State first: everything else reads through it.
	container.State = NewStateService(ctx, repos.StateRepo)

	container.Session = NewSessionService(container.State, repos.AuthSlotRepo)
	container.Sync = NewSyncService(repos.MirrorRepo, container.State)
	container.Ledger = NewLedgerService(container.State, container.Sync)
	container.Metrics = NewMetricsService(container.State, time.Local)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.StateSvcFacade   = (*stateService)(nil)
	_ portssvc.SessionSvcFacade = (*sessionService)(nil)
	_ portssvc.LedgerSvcFacade  = (*ledgerService)(nil)
	_ portssvc.MetricsSvcFacade = (*metricsService)(nil)
	_ portssvc.SyncSvcFacade    = (*syncService)(nil)
)
