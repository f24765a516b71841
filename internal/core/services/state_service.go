package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	portsrepo "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/repositories"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
)

// stateService owns the single in-memory SystemState blob. All reads hand out
// deep copies and all writes happen under the lock, which serializes mutations
// the same way the original single-threaded event loop did.
type stateService struct {
	BaseService
	stateRepo portsrepo.StateRepositoryFacade

	mu    sync.RWMutex
	state domain.SystemState
}

// NewStateService loads the persisted state synchronously so the caller has
// something to serve immediately; an absent or unparseable slot falls back to
// the seeded default state. A later mirror pull may overwrite it via Replace.
func NewStateService(ctx context.Context, stateRepo portsrepo.StateRepositoryFacade) portssvc.StateSvcFacade {
	s := &stateService{stateRepo: stateRepo}

	loaded, err := stateRepo.Load(ctx)
	if err != nil {
		s.LogInfo(ctx, "No usable persisted state, seeding default")
		s.state = domain.DefaultSystemState()
		return s
	}
	s.state = *loaded
	return s
}

func (s *stateService) Snapshot(ctx context.Context) domain.SystemState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *stateService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.state.FindUserByID(userID)
	if idx < 0 {
		return nil, fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}
	user := s.state.Users[idx].Clone()
	return &user, nil
}

func (s *stateService) GetUserByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.state.FindUserByCredentials(username, password)
	if idx < 0 {
		return nil, apperrors.ErrInvalidCredentials
	}
	user := s.state.Users[idx].Clone()
	return &user, nil
}

func (s *stateService) GetLedger(ctx context.Context, userID string) (domain.Ledger, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return domain.Ledger{}, err
	}
	return user.DB, nil
}

// CommitLedger swaps in the new ledger and persists the full blob. The
// in-memory commit always stands: a failed disk write is logged and swallowed
// so a storage hiccup can never fail (or roll back) a recorded sale.
func (s *stateService) CommitLedger(ctx context.Context, userID string, ledger domain.Ledger) (domain.SystemState, error) {
	s.mu.Lock()
	idx := s.state.FindUserByID(userID)
	if idx < 0 {
		s.mu.Unlock()
		return domain.SystemState{}, fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}
	s.state.Users[idx].DB = ledger.Clone()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if err := s.stateRepo.Save(ctx, snapshot); err != nil {
		s.LogError(ctx, err, "Failed to persist state after ledger commit")
	}
	return snapshot, nil
}

// Replace overwrites the whole state, typically with a freshly pulled mirror
// blob. Payloads without users are rejected so a bad pull cannot wipe the app.
func (s *stateService) Replace(ctx context.Context, state domain.SystemState) error {
	if !state.Valid() {
		return fmt.Errorf("%w: state must carry at least one user", apperrors.ErrValidation)
	}

	s.mu.Lock()
	s.state = state.Clone()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if err := s.stateRepo.Save(ctx, snapshot); err != nil {
		s.LogError(ctx, err, "Failed to persist replaced state")
	}
	return nil
}
