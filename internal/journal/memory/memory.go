package memory

import (
	"context"
	"sort"
	"sync"

	"moodlog/internal/core"
)

// Store is an in-memory journal keyed by calendar date. It backs the
// "memory" data backend and the test suites.
type Store struct {
	mu      sync.Mutex
	entries map[string]core.Entry // keyed by date string YYYY-MM-DD
}

func New() *Store {
	return &Store{entries: make(map[string]core.Entry)}
}

// UpsertForDate stores the entry, replacing any previous entry on the same date.
func (s *Store) UpsertForDate(_ context.Context, e core.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.Date.String()] = e
	return nil
}

// GetByDate returns the entry for a date, or nil when none exists.
func (s *Store) GetByDate(_ context.Context, d core.Date) (*core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[d.String()]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// ListRange returns entries within the inclusive range, date ascending.
func (s *Store) ListRange(_ context.Context, start, end core.Date) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Entry
	for _, e := range s.entries {
		if e.Date.Before(start.Time) || e.Date.After(end.Time) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Time.Before(out[j].Date.Time)
	})
	return out, nil
}
