package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/events"
	"github.com/spec-kit/backoffice/internal/query"
	"github.com/spec-kit/backoffice/internal/store"
	apperrors "github.com/spec-kit/backoffice/pkg/util/errorutil"
)

// Patch is a partial update for an entity of type T.
type Patch[T any] interface {
	Apply(*T)
}

// Schema describes one admin page: what it filters on, how it is
// summarized and how new records are normalized.
type Schema[T any, S any] struct {
	Name      string
	Query     query.Schema[T]
	Summarize func([]T) S
	// Defaults fills unset fields on creation only.
	Defaults func(*T)
	// Prepare normalizes a record on creation, on every update and on seeding.
	Prepare func(*T)
	// Status reads the record's lifecycle status. Optional.
	Status func(*T) string
	// Transitions is enforced on status changes in strict mode. Optional.
	Transitions domain.Transitions
}

// CollectionDependencies bundles collaborators shared by every collection.
type CollectionDependencies struct {
	Store             store.Options
	Validator         *validator.Validate
	Dispatcher        events.Dispatcher
	Logger            *zap.Logger
	StrictTransitions bool
}

// ListResult is one page of a filtered listing.
type ListResult[T any] struct {
	Items     []T    `json:"items"`
	Total     int    `json:"total"`
	LastError string `json:"last_error,omitempty"`
}

// Collection coordinates the store, filter and aggregator of one admin page.
type Collection[T any, P store.Record[T], S any] struct {
	schema     Schema[T, S]
	store      *store.Store[T, P]
	validate   *validator.Validate
	dispatcher events.Dispatcher
	logger     *zap.Logger
	strict     bool
	now        func() time.Time

	mu      sync.RWMutex
	lastErr string
}

// NewCollection constructs the service.
func NewCollection[T any, P store.Record[T], S any](schema Schema[T, S], deps CollectionDependencies) *Collection[T, P, S] {
	validate := deps.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Store.Now
	if now == nil {
		now = time.Now
	}
	return &Collection[T, P, S]{
		schema:     schema,
		store:      store.New[T, P](deps.Store),
		validate:   validate,
		dispatcher: deps.Dispatcher,
		logger:     logger.With(zap.String("collection", schema.Name)),
		strict:     deps.StrictTransitions,
		now:        now,
	}
}

// Name returns the collection's route name.
func (c *Collection[T, P, S]) Name() string {
	return c.schema.Name
}

// QuerySchema exposes the searchable and facet fields.
func (c *Collection[T, P, S]) QuerySchema() query.Schema[T] {
	return c.schema.Query
}

// Create validates item and stores it at the head of the list.
func (c *Collection[T, P, S]) Create(ctx context.Context, item T) (T, error) {
	if c.schema.Defaults != nil {
		c.schema.Defaults(&item)
	}
	if c.schema.Prepare != nil {
		c.schema.Prepare(&item)
	}
	if err := c.validate.StructCtx(ctx, &item); err != nil {
		var zero T
		return zero, c.fail("create", "", apperrors.FromValidation(err))
	}

	created, err := c.store.Create(ctx, item)
	if err != nil {
		return created, c.fail("create", "", err)
	}
	id := P(&created).Metadata().ID
	c.succeed("create", id)
	c.publishEvent(ctx, events.Event{
		Type:     events.EventEntityCreated,
		EntityID: id,
		Payload:  created,
	})
	return created, nil
}

// Update merges patch into the record. Nothing changes when the record is
// missing, the result fails validation, or (in strict mode) the status
// change is not an allowed transition.
func (c *Collection[T, P, S]) Update(ctx context.Context, id string, patch Patch[T]) (T, error) {
	return c.modify(ctx, "update", id, func(item *T) error {
		patch.Apply(item)
		return nil
	}, func(before, after T) []events.Event {
		return []events.Event{{Type: events.EventEntityUpdated, Payload: after}}
	})
}

// Delete removes the record.
func (c *Collection[T, P, S]) Delete(ctx context.Context, id string) error {
	removed, err := c.store.Delete(ctx, id)
	if err != nil {
		return c.fail("delete", id, err)
	}
	c.succeed("delete", id)
	c.publishEvent(ctx, events.Event{
		Type:     events.EventEntityDeleted,
		EntityID: id,
		Payload:  removed,
	})
	return nil
}

// Get fetches one record.
func (c *Collection[T, P, S]) Get(ctx context.Context, id string) (T, error) {
	item, err := c.store.Get(ctx, id)
	if err != nil {
		return item, c.notFound(id, err)
	}
	return item, nil
}

// Items returns every record matching f, in list order.
func (c *Collection[T, P, S]) Items(ctx context.Context, f query.Filter) ([]T, error) {
	items, err := c.store.List(ctx)
	if err != nil {
		return nil, c.fail("list", "", err)
	}
	if f.IsEmpty() {
		return items, nil
	}
	return query.Apply(items, c.schema.Query, f), nil
}

// List returns one page of the records matching f together with the number
// of matches and the last recorded failure.
func (c *Collection[T, P, S]) List(ctx context.Context, f query.Filter, limit, offset int) (ListResult[T], error) {
	items, err := c.Items(ctx, f)
	if err != nil {
		return ListResult[T]{}, err
	}
	return ListResult[T]{
		Items:     query.Page(items, limit, offset),
		Total:     len(items),
		LastError: c.LastError(),
	}, nil
}

// Stats summarizes the whole collection regardless of any filter.
func (c *Collection[T, P, S]) Stats(ctx context.Context) (S, error) {
	items, err := c.store.List(ctx)
	if err != nil {
		var zero S
		return zero, c.fail("stats", "", err)
	}
	return c.schema.Summarize(items), nil
}

// LastError reports the most recent failure, empty after a success.
func (c *Collection[T, P, S]) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// Len reports the number of records.
func (c *Collection[T, P, S]) Len() int {
	return c.store.Len()
}

// Seed loads fixtures in order, normalizing each one.
func (c *Collection[T, P, S]) Seed(items []T) {
	prepared := make([]T, len(items))
	copy(prepared, items)
	if c.schema.Prepare != nil {
		for i := range prepared {
			c.schema.Prepare(&prepared[i])
		}
	}
	c.store.Seed(prepared)
}

// Reset drops every record and the last failure.
func (c *Collection[T, P, S]) Reset() {
	c.store.Reset()
	c.mu.Lock()
	c.lastErr = ""
	c.mu.Unlock()
}

// modify runs mutate on a copy of the record, re-normalizes and validates
// the result, enforces transitions and commits. emit builds the events for
// a committed change; a status_changed event is appended automatically.
func (c *Collection[T, P, S]) modify(
	ctx context.Context,
	op, id string,
	mutate func(*T) error,
	emit func(before, after T) []events.Event,
) (T, error) {
	var before T
	updated, err := c.store.Update(ctx, id, func(item *T) error {
		before = *item
		if err := mutate(item); err != nil {
			return err
		}
		if c.schema.Prepare != nil {
			c.schema.Prepare(item)
		}
		if err := c.validate.StructCtx(ctx, item); err != nil {
			return apperrors.FromValidation(err)
		}
		return c.checkTransition(&before, item)
	})
	if err != nil {
		return updated, c.fail(op, id, err)
	}
	c.succeed(op, id)

	for _, event := range emit(before, updated) {
		event.EntityID = id
		c.publishEvent(ctx, event)
	}
	if c.schema.Status != nil {
		oldStatus, newStatus := c.schema.Status(&before), c.schema.Status(&updated)
		if oldStatus != newStatus {
			c.publishEvent(ctx, events.Event{
				Type:     events.EventStatusChanged,
				EntityID: id,
				Payload:  events.StatusChangedPayload{OldStatus: oldStatus, NewStatus: newStatus},
			})
		}
	}
	return updated, nil
}

func (c *Collection[T, P, S]) checkTransition(before, after *T) error {
	if !c.strict || c.schema.Status == nil || c.schema.Transitions == nil {
		return nil
	}
	current, next := c.schema.Status(before), c.schema.Status(after)
	if c.schema.Transitions.Allows(current, next) {
		return nil
	}
	return apperrors.NewConflict("status transition not allowed", map[string]any{
		"from": current,
		"to":   next,
	})
}

// fail records err as the collection's last failure and maps it for callers.
func (c *Collection[T, P, S]) fail(op, id string, err error) error {
	err = c.notFound(id, err)
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()

	fields := []zap.Field{zap.String("op", op), zap.Error(err)}
	if id != "" {
		fields = append(fields, zap.String("id", id))
	}
	c.logger.Warn("collection operation failed", fields...)
	return err
}

func (c *Collection[T, P, S]) succeed(op, id string) {
	c.mu.Lock()
	c.lastErr = ""
	c.mu.Unlock()
	c.logger.Info("collection "+op, zap.String("id", id))
}

func (c *Collection[T, P, S]) notFound(id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.NewNotFound(c.schema.Name, map[string]any{"id": id})
	}
	return err
}

func (c *Collection[T, P, S]) publishEvent(ctx context.Context, event events.Event) {
	if c.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = c.now()
	}
	event.Collection = c.schema.Name
	if err := c.dispatcher.Publish(ctx, event); err != nil {
		c.logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.String("entity_id", event.EntityID),
			zap.Error(err))
	}
}
