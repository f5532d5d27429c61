package bookings

import (
	"sync"

	"schedboard-service/internal/pkg/exceptions"
)

// DraftManager holds the in-flight booking drafts keyed by draft ID. The
// whole drafting flow is in-process state; nothing reaches upstream until
// submit.
type DraftManager struct {
	mu     sync.Mutex
	drafts map[string]*BookingDraft
}

func NewDraftManager() *DraftManager {
	return &DraftManager{drafts: make(map[string]*BookingDraft)}
}

func (m *DraftManager) Put(draft *BookingDraft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[draft.DraftID] = draft
}

func (m *DraftManager) Get(draftID string) (*BookingDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft, ok := m.drafts[draftID]
	if !ok {
		return nil, exceptions.ErrDraftNotFound(draftID)
	}
	return draft, nil
}

func (m *DraftManager) Delete(draftID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, draftID)
}

// Mutate runs fn against a draft under the manager lock, so concurrent
// edits to the same draft serialize instead of interleaving.
func (m *DraftManager) Mutate(draftID string, fn func(*BookingDraft) error) (*BookingDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft, ok := m.drafts[draftID]
	if !ok {
		return nil, exceptions.ErrDraftNotFound(draftID)
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	return draft, nil
}
