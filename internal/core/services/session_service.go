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

// sessionService keeps only the identifier of the active user; the user
// record itself is looked up from the live state on every read, so a mirror
// pull that replaced the state is picked up automatically.
//
// Credentials are compared in plaintext with no lockout and no rate limiting.
// That mirrors the deployed system's data model and is a documented
// limitation, not something to harden silently here (see DESIGN.md).
type sessionService struct {
	BaseService
	stateSvc portssvc.StateReaderSvc
	authRepo portsrepo.AuthSlotRepositoryFacade

	mu            sync.RWMutex
	currentUserID string
}

// NewSessionService creates the Anonymous/Authenticated session manager.
func NewSessionService(stateSvc portssvc.StateReaderSvc, authRepo portsrepo.AuthSlotRepositoryFacade) portssvc.SessionSvcFacade {
	return &sessionService{stateSvc: stateSvc, authRepo: authRepo}
}

func (s *sessionService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.stateSvc.GetUserByCredentials(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", apperrors.ErrInvalidCredentials)
	}

	s.mu.Lock()
	s.currentUserID = user.ID
	s.mu.Unlock()

	// A failed slot write only loses "remember me" across restarts; the
	// login itself stands.
	if err := s.authRepo.SaveUserID(ctx, user.ID); err != nil {
		s.LogWarn(ctx, "Failed to persist authenticated user identifier", "error", err.Error())
	}

	s.LogInfo(ctx, "User logged in", "user_id", user.ID)
	return user, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.currentUserID = ""
	s.mu.Unlock()

	if err := s.authRepo.Clear(ctx); err != nil {
		s.LogWarn(ctx, "Failed to clear authenticated user identifier", "error", err.Error())
	}
	return nil
}

func (s *sessionService) Restore(ctx context.Context) (*domain.User, error) {
	userID, err := s.authRepo.LoadUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("no persisted session: %w", apperrors.ErrNoSession)
	}

	user, err := s.stateSvc.GetUserByID(ctx, userID)
	if err != nil {
		// Stale identifier: the user no longer exists in the loaded state.
		return nil, fmt.Errorf("persisted user %q not in state: %w", userID, apperrors.ErrNoSession)
	}

	s.mu.Lock()
	s.currentUserID = user.ID
	s.mu.Unlock()

	s.LogInfo(ctx, "Session restored", "user_id", user.ID)
	return user, nil
}

func (s *sessionService) Current(ctx context.Context) (*domain.User, error) {
	s.mu.RLock()
	userID := s.currentUserID
	s.mu.RUnlock()

	if userID == "" {
		return nil, apperrors.ErrNoSession
	}

	user, err := s.stateSvc.GetUserByID(ctx, userID)
	if err != nil {
		// The user disappeared, e.g. removed by a mirror pull.
		return nil, fmt.Errorf("user %q vanished from state: %w", userID, apperrors.ErrNoSession)
	}
	return user, nil
}
