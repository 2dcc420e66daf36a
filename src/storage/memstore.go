package storage

import (
	"context"
	"sync"

	"github.com/kopibot/kopi/src/debate"
)

// MemStore is an in-memory implementation of the engine's store contract,
// used for ephemeral CLI sessions. Conversations vanish when the process
// exits.
type MemStore struct {
	mu     sync.RWMutex
	states map[string]*debate.State
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{states: make(map[string]*debate.State)}
}

var _ debate.Store = (*MemStore)(nil)

// LoadState returns a copy of the stored state.
func (m *MemStore) LoadState(ctx context.Context, conversationID string) (*debate.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.states[conversationID]
	if !ok {
		return nil, debate.ErrConversationNotFound
	}
	return s.Clone(), nil
}

// SaveState stores a copy of the state. The newTurns argument is unused:
// the snapshot already carries the retained window, which is all an
// in-memory session ever reads back.
func (m *MemStore) SaveState(ctx context.Context, s *debate.State, newTurns []debate.Turn) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[s.ID] = s.Clone()
	return nil
}

// Len returns the number of stored conversations.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states)
}
