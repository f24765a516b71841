package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
)

// AuthSlotRepository persists the authenticated user's identifier as a bare
// string file, backing the "remember me" restore across restarts.
type AuthSlotRepository struct {
	path string
}

// NewAuthSlotRepository creates a file-backed auth slot repository.
func NewAuthSlotRepository(path string) *AuthSlotRepository {
	return &AuthSlotRepository{path: path}
}

// LoadUserID returns the persisted identifier, or ErrNotFound when the slot
// is absent or empty.
func (r *AuthSlotRepository) LoadUserID(ctx context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("read auth slot %q: %w", r.path, apperrors.ErrNotFound)
	}
	userID := strings.TrimSpace(string(data))
	if userID == "" {
		return "", fmt.Errorf("empty auth slot %q: %w", r.path, apperrors.ErrNotFound)
	}
	return userID, nil
}

// SaveUserID persists the identifier. The slot holds a credential-adjacent
// value, so it is not group/world readable.
func (r *AuthSlotRepository) SaveUserID(ctx context.Context, userID string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create auth slot dir: %w", err)
	}
	if err := os.WriteFile(r.path, []byte(userID), 0o600); err != nil {
		return fmt.Errorf("write auth slot %q: %w", r.path, err)
	}
	return nil
}

// Clear removes the slot. Clearing an absent slot is a no-op.
func (r *AuthSlotRepository) Clear(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear auth slot %q: %w", r.path, err)
	}
	return nil
}
