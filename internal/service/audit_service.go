package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/events"
	"github.com/spec-kit/backoffice/internal/repository"
)

// AuditService records every committed mutation in the audit log.
type AuditService struct {
	dispatcher events.Dispatcher
	repo       repository.AuditRepository
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, repo repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, repo: repo, logger: logger}
}

// RegisterHandlers subscribes to mutation events. status_changed always
// accompanies another event and is not recorded separately.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, t := range events.AllEventTypes {
		if t == events.EventStatusChanged {
			continue
		}
		a.dispatcher.Subscribe(t, a.handle)
	}
}

// List returns audit entries, newest first.
func (a *AuditService) List(ctx context.Context, filter repository.AuditFilter) ([]domain.AuditEntry, error) {
	return a.repo.List(ctx, filter)
}

func (a *AuditService) handle(ctx context.Context, event events.Event) error {
	snapshot, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("encode audit snapshot: %w", err)
	}
	entry := &domain.AuditEntry{
		Collection: event.Collection,
		EntityID:   event.EntityID,
		Action:     auditAction(event.Type),
		EventType:  string(event.Type),
		Snapshot:   snapshot,
		CreatedAt:  event.Timestamp,
	}
	if err := a.repo.Create(ctx, entry); err != nil {
		a.logger.Error("audit write failed",
			zap.String("collection", event.Collection),
			zap.String("entity_id", event.EntityID),
			zap.Error(err))
		return err
	}
	return nil
}

func auditAction(t events.EventType) domain.AuditAction {
	switch t {
	case events.EventEntityCreated:
		return domain.AuditActionCreated
	case events.EventEntityDeleted:
		return domain.AuditActionDeleted
	default:
		return domain.AuditActionUpdated
	}
}
