package services

import (
	"context"
	"sync"
	"time"
)

// snapshot is a TTL cache of one domain's full record list. Refreshes
// are generation-counted so a slow fetch never overwrites a newer
// snapshot, and a failed fetch never disturbs the cached records.
type snapshot[T any] struct {
	ttl   time.Duration
	fetch func(context.Context) ([]T, error)

	mu         sync.Mutex
	records    []T
	fetchedAt  time.Time
	nextGen    uint64
	appliedGen uint64
}

func newSnapshot[T any](ttl time.Duration, fetch func(context.Context) ([]T, error)) *snapshot[T] {
	return &snapshot[T]{ttl: ttl, fetch: fetch}
}

// Get returns the cached records, refreshing first when the cache is
// stale or force is set.
func (s *snapshot[T]) Get(ctx context.Context, force bool) ([]T, error) {
	s.mu.Lock()
	if !force && !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.ttl {
		records := s.records
		s.mu.Unlock()
		return records, nil
	}
	s.nextGen++
	gen := s.nextGen
	s.mu.Unlock()

	fetched, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if gen > s.appliedGen {
		s.records = fetched
		s.appliedGen = gen
		s.fetchedAt = time.Now()
	}
	records := s.records
	s.mu.Unlock()
	return records, nil
}

// Invalidate marks the cache stale so the next Get refetches
func (s *snapshot[T]) Invalidate() {
	s.mu.Lock()
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}
