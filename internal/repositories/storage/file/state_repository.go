// Package file implements the local persisted slots as plain files: one JSON
// blob for the full system state and one bare string for the authenticated
// user identifier.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
)

// StateRepository persists the full SystemState blob to a single JSON file.
type StateRepository struct {
	path string
}

// NewStateRepository creates a file-backed state repository.
func NewStateRepository(path string) *StateRepository {
	return &StateRepository{path: path}
}

// Load reads and decodes the state blob. Absent files, unreadable files,
// malformed JSON and payloads without users all come back as ErrNotFound:
// the caller treats every one of them as "no persisted state" and seeds the
// default instead of crashing.
func (r *StateRepository) Load(ctx context.Context) (*domain.SystemState, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read state slot %q: %w", r.path, apperrors.ErrNotFound)
	}

	var state domain.SystemState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("malformed state slot %q: %w", r.path, apperrors.ErrNotFound)
	}
	if !state.Valid() {
		return nil, fmt.Errorf("state slot %q carries no users: %w", r.path, apperrors.ErrNotFound)
	}
	return &state, nil
}

// Save overwrites the slot with the serialized state.
func (r *StateRepository) Save(ctx context.Context, state domain.SystemState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write state slot %q: %w", r.path, err)
	}
	return nil
}
