package services

import (
	"context"
	"sync"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	portsrepo "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/repositories"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
)

// syncService mirrors the state blob to the remote endpoint.
//
// Pushes are fully decoupled from the mutation path: EnqueuePush drops the
// snapshot into a single coalescing slot and returns. A background worker
// drains the slot and uploads. Because the mirror stores the whole blob and
// last write wins, a newer snapshot simply replaces an older one still
// waiting in the slot; there are no retries and failures are only logged.
type syncService struct {
	BaseService
	mirrorRepo portsrepo.MirrorRepositoryFacade
	stateSvc   portssvc.StateWriterSvc

	mu       sync.Mutex
	pending  *domain.SystemState
	inFlight bool

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewSyncService creates the sync orchestrator and starts its push worker.
func NewSyncService(mirrorRepo portsrepo.MirrorRepositoryFacade, stateSvc portssvc.StateWriterSvc) portssvc.SyncSvcFacade {
	s := &syncService{
		mirrorRepo: mirrorRepo,
		stateSvc:   stateSvc,
		wake:       make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	go s.pushWorker()
	return s
}

// Refresh pulls the remote blob and replaces the local state with it. Any
// failure leaves the local state untouched; offline operation is normal, so
// this only logs a warning.
func (s *syncService) Refresh(ctx context.Context) error {
	state, err := s.mirrorRepo.Pull(ctx)
	if err != nil {
		s.LogWarn(ctx, "Mirror pull failed, offline mode active", "error", err.Error())
		return err
	}

	if err := s.stateSvc.Replace(ctx, *state); err != nil {
		s.LogError(ctx, err, "Pulled state rejected")
		return err
	}

	s.LogInfo(ctx, "State refreshed from mirror", "users", len(state.Users))
	return nil
}

func (s *syncService) EnqueuePush(state domain.SystemState) {
	s.mu.Lock()
	s.pending = &state
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *syncService) Status() portssvc.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil || s.inFlight {
		return portssvc.SyncPending
	}
	return portssvc.SyncIdle
}

func (s *syncService) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *syncService) pushWorker() {
	ctx := context.Background()
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
			for {
				s.mu.Lock()
				state := s.pending
				s.pending = nil
				if state != nil {
					s.inFlight = true
				}
				s.mu.Unlock()

				if state == nil {
					break
				}

				if err := s.mirrorRepo.Push(ctx, *state); err != nil {
					s.LogWarn(ctx, "State push failed, mirror is stale", "error", err.Error())
				}

				s.mu.Lock()
				s.inFlight = false
				s.mu.Unlock()
			}
		}
	}
}
