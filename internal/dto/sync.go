package dto

// SyncStatusResponse reports the push queue signal for the sync indicator.
type SyncStatusResponse struct {
	Status string `json:"status"` // "idle" or "pending"
}

// RefreshResponse reports whether a manual refresh replaced the local state.
// Refreshed is false when the mirror was unreachable (offline mode).
type RefreshResponse struct {
	Refreshed bool `json:"refreshed"`
}
