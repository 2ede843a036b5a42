package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Harshitk-cp/decidable/internal/domain"
)

// PredicateStore keeps catalog entries in memory, keyed by predicate name.
type PredicateStore[K any] struct {
	mu      sync.RWMutex
	entries map[string]domain.Entry[K]
}

func NewPredicateStore[K any]() *PredicateStore[K] {
	return &PredicateStore[K]{entries: make(map[string]domain.Entry[K])}
}

// Upsert stores a copy of e, replacing any entry with the same name. Entries
// without a name, or with neither a proof nor a decision procedure, are
// rejected with ErrConflict.
func (s *PredicateStore[K]) Upsert(ctx context.Context, e *domain.Entry[K]) error {
	if e.Name == "" || (e.Prove == nil && e.Decide == nil) {
		return ErrConflict
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.Name] = *e
	return nil
}

// Get returns a copy of the named entry.
func (s *PredicateStore[K]) Get(ctx context.Context, name string) (*domain.Entry[K], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *PredicateStore[K]) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *PredicateStore[K]) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[name]; !ok {
		return ErrNotFound
	}
	delete(s.entries, name)
	return nil
}
