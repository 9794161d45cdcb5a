package history

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStorage keeps scan runs in memory. Used when history
// persistence is disabled, and in tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	records []*Record
}

// NewMemoryStorage creates an empty in-memory history.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// SaveRun persists one record.
func (s *MemoryStorage) SaveRun(ctx context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *record
	s.records = append(s.records, &copied)
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *MemoryStorage) ListRuns(ctx context.Context, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.sorted()
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// RunsSince returns runs started at or after t, newest first.
func (s *MemoryStorage) RunsSince(ctx context.Context, t time.Time) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Record
	for _, r := range s.sorted() {
		if !r.StartedAt.Before(t) {
			out = append(out, r)
		}
	}
	return out, nil
}

// PruneBefore deletes runs started before t.
func (s *MemoryStorage) PruneBefore(ctx context.Context, t time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	var pruned int64
	for _, r := range s.records {
		if r.StartedAt.Before(t) {
			pruned++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return pruned, nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStorage) Close() error { return nil }

// sorted returns copies of the records, newest first. Callers hold the
// lock.
func (s *MemoryStorage) sorted() []*Record {
	out := make([]*Record, 0, len(s.records))
	for _, r := range s.records {
		copied := *r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out
}
