package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/backoffice/internal/domain"
)

// AuditFilter narrows an audit listing. Empty fields are wildcards; a
// non-positive Limit returns every match.
type AuditFilter struct {
	Collection string
	EntityID   string
	Limit      int
	Offset     int
}

// AuditRepository stores the back-office audit trail. Listings are newest first.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error)
}

type memoryAuditRepository struct {
	mu      sync.RWMutex
	entries []domain.AuditEntry
	now     func() time.Time
}

// NewMemoryAuditRepository builds a process-local audit log.
func NewMemoryAuditRepository() AuditRepository {
	return &memoryAuditRepository{now: time.Now}
}

func (r *memoryAuditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stampEntry(entry, r.now)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memoryAuditRepository) List(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.AuditEntry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		entry := r.entries[i]
		if filter.Collection != "" && entry.Collection != filter.Collection {
			continue
		}
		if filter.EntityID != "" && entry.EntityID != filter.EntityID {
			continue
		}
		matched = append(matched, entry)
	}

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []domain.AuditEntry{}, nil
	}
	matched = matched[offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func stampEntry(entry *domain.AuditEntry, now func() time.Time) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now().UTC()
	}
}
