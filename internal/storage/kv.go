// Package storage defines the key-value capability injected into the
// matching and analytics use cases, plus an in-process implementation.
package storage

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrEmptyKey = errors.New("empty key")

// KV is a get/put/delete store keyed by string. A miss is (nil, false, nil).
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// DefaultMaxEntries bounds a Memory store built with NewMemory.
const DefaultMaxEntries = 10000

// Memory is a mutex-guarded map. Entries expire after ttl when ttl > 0.
// Put sweeps expired entries at most once per ttl and, when the store is
// still full, evicts an arbitrary entry, so the map never grows past
// maxEntries.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	lastSweep  time.Time
	now        func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return NewMemoryWithLimit(ttl, DefaultMaxEntries)
}

// NewMemoryWithLimit is NewMemory with an explicit size cap. A cap <= 0
// means unbounded.
func NewMemoryWithLimit(ttl time.Duration, maxEntries int) *Memory {
	return &Memory{entries: map[string]memoryEntry{}, ttl: ttl, maxEntries: maxEntries, now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	e := memoryEntry{value: make([]byte, len(value))}
	copy(e.value, value)
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.ttl > 0 && !now.Before(m.lastSweep.Add(m.ttl)) {
		m.sweepLocked(now)
	}
	if _, exists := m.entries[key]; !exists && m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
		m.sweepLocked(now)
		for k := range m.entries {
			if len(m.entries) < m.maxEntries {
				break
			}
			delete(m.entries, k)
		}
	}
	m.entries[key] = e
	return nil
}

func (m *Memory) sweepLocked(now time.Time) {
	for k, e := range m.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(m.entries, k)
		}
	}
	m.lastSweep = now
}

func (m *Memory) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
