package cache

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

type memoryEntry struct {
	value  []byte
	expiry time.Time
}

// Memory is an in-process Cache. Expired entries are dropped lazily on Get.
type Memory struct {
	clock   clock.Clock
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemory(clock clock.Clock) *Memory {
	return &Memory{
		clock:   clock,
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, found := m.entries[key]
	if !found {
		return nil, nil
	}
	if !m.clock.Now().Before(e.expiry) {
		delete(m.entries, key)
		return nil, nil
	}
	return append([]byte(nil), e.value...), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		value:  append([]byte(nil), value...),
		expiry: m.clock.Now().Add(NormalizeTTL(ttl)),
	}
	return nil
}

// Len returns the number of entries currently held, including expired ones
// that were not read since they expired.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
