// Package store holds the in-memory repositories backing each back-office
// collection. A Store keeps records keyed by identifier together with their
// display order; newly created records go to the head of the sequence.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/backoffice/internal/domain"
)

// ErrNotFound is returned when an identifier is not present in the store.
var ErrNotFound = errors.New("record not found")

// Record is satisfied by pointers to entity types embedding domain.Meta.
type Record[T any] interface {
	*T
	Metadata() *domain.Meta
}

// Cloner is implemented by records holding slices or pointers. The store
// keeps its own copy of such records and hands out copies.
type Cloner[T any] interface {
	Clone() T
}

// Options tunes a Store. The zero value is usable.
type Options struct {
	// Latency delays every operation, standing in for a remote backend.
	Latency time.Duration
	// Now overrides the clock.
	Now func() time.Time
	// NewID overrides identifier generation.
	NewID func() string
}

// Store is a concurrency-safe ordered repository for one entity type.
type Store[T any, P Record[T]] struct {
	mu      sync.RWMutex
	order   []string
	items   map[string]T
	latency time.Duration
	now     func() time.Time
	newID   func() string
}

// New builds an empty store.
func New[T any, P Record[T]](opts Options) *Store[T, P] {
	s := &Store[T, P]{
		items:   make(map[string]T),
		latency: opts.Latency,
		now:     opts.Now,
		newID:   opts.NewID,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// Seed appends fixtures in the given order, keeping their identifiers and
// timestamps. Fixtures without an identifier get a fresh one; zero
// timestamps are stamped with the current time.
func (s *Store[T, P]) Seed(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, item := range items {
		item = clone(item)
		meta := P(&item).Metadata()
		if meta.ID == "" {
			meta.ID = s.newID()
		}
		if meta.CreatedAt.IsZero() {
			meta.CreatedAt = now
		}
		if meta.UpdatedAt.IsZero() {
			meta.UpdatedAt = meta.CreatedAt
		}
		if _, exists := s.items[meta.ID]; !exists {
			s.order = append(s.order, meta.ID)
		}
		s.items[meta.ID] = item
	}
}

// Reset drops every record.
func (s *Store[T, P]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.items = make(map[string]T)
}

// Len reports the number of records.
func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Create stores item under a fresh identifier at the head of the sequence.
func (s *Store[T, P]) Create(ctx context.Context, item T) (T, error) {
	if err := s.wait(ctx); err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item = clone(item)
	meta := P(&item).Metadata()
	meta.ID = s.newID()
	meta.CreatedAt = s.now()
	meta.UpdatedAt = meta.CreatedAt

	s.items[meta.ID] = item
	s.order = append([]string{meta.ID}, s.order...)
	return clone(item), nil
}

// Update applies mutate to a copy of the record and commits it, refreshing
// UpdatedAt, only when mutate returns nil. The identifier and creation time
// cannot be changed by mutate.
func (s *Store[T, P]) Update(ctx context.Context, id string, mutate func(*T) error) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	next := clone(current)
	if err := mutate(&next); err != nil {
		return zero, err
	}

	meta := P(&next).Metadata()
	prev := P(&current).Metadata()
	meta.ID = prev.ID
	meta.CreatedAt = prev.CreatedAt
	meta.UpdatedAt = s.now()

	s.items[id] = next
	return clone(next), nil
}

// Delete removes the record with the given identifier.
func (s *Store[T, P]) Delete(ctx context.Context, id string) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	delete(s.items, id)
	for i, candidate := range s.order {
		if candidate == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return removed, nil
}

// Get fetches a record by identifier.
func (s *Store[T, P]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	return clone(item), nil
}

// List returns a snapshot of every record in display order. Records
// implementing Cloner are deep copies.
func (s *Store[T, P]) List(ctx context.Context) ([]T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, clone(s.items[id]))
	}
	return result, nil
}

func (s *Store[T, P]) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func clone[T any](item T) T {
	if c, ok := any(item).(Cloner[T]); ok {
		return c.Clone()
	}
	return item
}
