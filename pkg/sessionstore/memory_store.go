package sessionstore

import (
	"context"
	"sync"
)

type memoryEntry struct {
	value string
	opts  EntryOptions
}

// MemoryStore implements Store using an in-process map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) ReadEntry(ctx context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[name]
	if !ok {
		return "", ErrEntryNotFound
	}
	return e.value, nil
}

func (m *MemoryStore) WriteEntry(ctx context.Context, name, value string, opts EntryOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[name] = memoryEntry{value: value, opts: opts}
	return nil
}

// EntryOptions returns the options the entry was last written with.
func (m *MemoryStore) EntryOptions(name string) (EntryOptions, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[name]
	return e.opts, ok
}

// Delete removes a single entry.
func (m *MemoryStore) Delete(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, name)
}

// Clear drops all entries, the equivalent of the browsing session ending.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.entries)
}

// Len returns the number of stored entries.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
