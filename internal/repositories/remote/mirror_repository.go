// Package remote implements the mirror client against the opaque remote
// endpoint: GET returns the full state blob, POST overwrites it wholesale.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
)

// ErrNotConfigured is returned when no mirror URL is set; the app then runs
// purely on its local slots.
var ErrNotConfigured = errors.New("mirror URL not configured")

// MirrorRepository talks HTTP to the remote mirror endpoint.
type MirrorRepository struct {
	url    string
	client *http.Client
}

// NewMirrorRepository creates the mirror client. The timeout bounds each
// request; the wrapping sync worker never retries.
func NewMirrorRepository(url string, timeout time.Duration) *MirrorRepository {
	return &MirrorRepository{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Pull fetches and validates the remote blob. A decoded payload without a
// users field is as useless as a network failure, so both are errors and the
// caller keeps its local state.
func (r *MirrorRepository) Pull(ctx context.Context) (*domain.SystemState, error) {
	if r.url == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build pull request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pull state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pull state: unexpected status %d", resp.StatusCode)
	}

	var state domain.SystemState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("decode pulled state: %w", err)
	}
	if !state.Valid() {
		return nil, fmt.Errorf("pulled state carries no users: %w", apperrors.ErrValidation)
	}
	return &state, nil
}

// Push uploads the full blob. The response body is ignored beyond the status
// code; the endpoint acknowledges nothing useful.
func (r *MirrorRepository) Push(ctx context.Context, state domain.SystemState) error {
	if r.url == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("push state: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push state: unexpected status %d", resp.StatusCode)
	}
	return nil
}
