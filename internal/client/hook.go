package client

import "sync"

// hookState is the shared loading/error contract of every data hook:
// loading turns on before a call and off again on success and on failure;
// the error field holds the last failure, cleared by the next success.
type hookState struct {
	mu      sync.RWMutex
	loading bool
	err     error
}

// Loading reports whether a call is in flight.
func (h *hookState) Loading() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loading
}

// Err returns the last call's error, nil after a success.
func (h *hookState) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

func (h *hookState) begin() {
	h.mu.Lock()
	h.loading = true
	h.mu.Unlock()
}

// finish clears loading, records the outcome, and applies the cache update
// under the same lock so readers never see a half-finished call.
func (h *hookState) finish(err error, apply func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loading = false
	h.err = err
	if apply != nil {
		apply()
	}
}
