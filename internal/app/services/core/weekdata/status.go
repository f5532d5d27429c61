package weekdata

import "sync"

// OperationStatus is the externally visible state of the latest attempt of
// one operation.
type OperationStatus struct {
	Operation string
	IsLoading bool
	Success   bool
	Error     string
}

type statusEntry struct {
	latest uint64
	status OperationStatus
}

// StatusRegistry tracks per-operation loading state with request fencing.
// Begin stamps each attempt with a monotonic sequence number; Finish
// discards completions whose sequence is no longer the latest, so a slow
// first response can never overwrite the state of a newer attempt.
type StatusRegistry struct {
	mu      sync.Mutex
	entries map[string]*statusEntry
}

func NewStatusRegistry() *StatusRegistry {
	return &StatusRegistry{entries: make(map[string]*statusEntry)}
}

// Begin marks the operation loading and returns the fencing sequence the
// caller must present to Finish.
func (r *StatusRegistry) Begin(operation string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[operation]
	if !ok {
		entry = &statusEntry{}
		r.entries[operation] = entry
	}
	entry.latest++
	entry.status = OperationStatus{Operation: operation, IsLoading: true}
	return entry.latest
}

// Finish records the outcome of an attempt. It reports false, and changes
// nothing, when a newer attempt has begun since seq was issued.
func (r *StatusRegistry) Finish(operation string, seq uint64, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[operation]
	if !ok || seq != entry.latest {
		return false
	}

	entry.status = OperationStatus{Operation: operation, Success: err == nil}
	if err != nil {
		entry.status.Error = err.Error()
	}
	return true
}

// Current reports whether seq still identifies the latest attempt.
func (r *StatusRegistry) Current(operation string, seq uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[operation]
	return ok && seq == entry.latest
}

// Status returns the tracked state of one operation.
func (r *StatusRegistry) Status(operation string) (OperationStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[operation]
	if !ok {
		return OperationStatus{}, false
	}
	return entry.status, true
}

// Snapshot lists the state of every tracked operation.
func (r *StatusRegistry) Snapshot() []OperationStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	statuses := make([]OperationStatus, 0, len(r.entries))
	for _, entry := range r.entries {
		statuses = append(statuses, entry.status)
	}
	return statuses
}
