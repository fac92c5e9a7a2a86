package store

import (
	"context"
	"sort"
	"sync"
)

// Backend persists watchlists keyed by session id.
type Backend interface {
	// Add inserts id and reports whether it was newly added.
	Add(ctx context.Context, session, id string) (bool, error)

	// Remove deletes id and reports whether it was present.
	Remove(ctx context.Context, session, id string) (bool, error)

	Has(ctx context.Context, session, id string) (bool, error)
	Count(ctx context.Context, session string) (int, error)

	// Items returns the ids in ascending order.
	Items(ctx context.Context, session string) ([]string, error)

	Close() error
}

// MemoryBackend keeps watchlists in process memory.
type MemoryBackend struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{sets: make(map[string]map[string]struct{})}
}

func (m *MemoryBackend) Add(_ context.Context, session, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.sets[session]
	if !ok {
		set = make(map[string]struct{})
		m.sets[session] = set
	}
	if _, exists := set[id]; exists {
		return false, nil
	}
	set[id] = struct{}{}
	return true, nil
}

func (m *MemoryBackend) Remove(_ context.Context, session, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set := m.sets[session]
	if _, exists := set[id]; !exists {
		return false, nil
	}
	delete(set, id)
	if len(set) == 0 {
		delete(m.sets, session)
	}
	return true, nil
}

func (m *MemoryBackend) Has(_ context.Context, session, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sets[session][id]
	return ok, nil
}

func (m *MemoryBackend) Count(_ context.Context, session string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sets[session]), nil
}

func (m *MemoryBackend) Items(_ context.Context, session string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]string, 0, len(m.sets[session]))
	for id := range m.sets[session] {
		items = append(items, id)
	}
	sort.Strings(items)
	return items, nil
}

func (m *MemoryBackend) Close() error { return nil }
