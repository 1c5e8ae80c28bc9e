package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a snapshot is served before it is refetched.
const DefaultTTL = 5 * time.Minute

// ── In-process snapshot cache ────────────────────────────────────────────────
// Holds one value with the time it was fetched. Readers never block each other.

type entry[T any] struct {
	data      T
	fetchedAt time.Time
}

type Snapshot[T any] struct {
	ttl   time.Duration
	now   func() time.Time
	mu    sync.RWMutex
	entry *entry[T]
}

func NewSnapshot[T any](ttl time.Duration) *Snapshot[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Snapshot[T]{ttl: ttl, now: time.Now}
}

func (s *Snapshot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.entry != nil && s.now().Sub(s.entry.fetchedAt) < s.ttl {
		return s.entry.data, true
	}
	var zero T
	return zero, false
}

func (s *Snapshot[T]) Set(data T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = &entry[T]{data: data, fetchedAt: s.now()}
}

// ── Invalidate (call on any catalog create/update/delete) ───────────────────

func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	s.entry = nil
	s.mu.Unlock()
}

func (s *Snapshot[T]) TTL() time.Duration {
	return s.ttl
}
