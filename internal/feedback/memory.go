package feedback

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and by serve --memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	likes   int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) AddEntry(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *MemoryStore) ListEntries(_ context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *MemoryStore) LikeCount(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.likes, nil
}

func (m *MemoryStore) IncrementLikes(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.likes++
	return m.likes, nil
}
