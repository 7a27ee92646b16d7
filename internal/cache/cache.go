// Package cache holds responses from the remote data providers for the
// lifetime of one process run. Entries are never invalidated: the remote
// dataset is treated as immutable while a run is in flight.
package cache

import (
	"sync"

	"github.com/magber/frc-fetcher/internal/metrics"
)

// Store is a mutex-guarded map from request key to response value.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	metrics metrics.Metrics
}

// New creates an empty store.
func New(metricsSvc metrics.Metrics) *Store {
	return &Store{
		entries: make(map[string]any),
		metrics: metricsSvc,
	}
}

// GetOrCompute returns the cached value for key, or invokes compute, stores
// the result, and returns it. Failed computations are not cached.
//
// This is a relaxed cache, not a singleflight: concurrent first misses on the
// same key may each call compute and the last write wins. Duplicate upstream
// calls are tolerated, not suppressed; values are write-once-per-key in
// practice so the duplicates are identical.
func GetOrCompute[T any](s *Store, key string, compute func() (T, error)) (T, error) {
	s.mu.RLock()
	cached, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		if value, isT := cached.(T); isT {
			s.metrics.IncCacheHit()
			return value, nil
		}
	}

	s.metrics.IncCacheMiss()
	value, err := compute()
	if err != nil {
		return value, err
	}

	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
	return value, nil
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
