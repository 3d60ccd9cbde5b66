package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/backoffice/internal/config"
	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/events"
	"github.com/spec-kit/backoffice/internal/repository"
	"github.com/spec-kit/backoffice/internal/service"
)

func TestStartRegistersAuditTrail(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	repo := repository.NewMemoryAuditRepository()
	audit := service.NewAuditService(dispatcher, repo, zap.NewNop())

	Start(dispatcher, Subscribers{
		Audit:        audit,
		Notification: service.NewNotificationService(dispatcher, zap.NewNop(), config.NotificationConfig{}),
		Redis:        events.NewRedisPublisher(nil, "backoffice.events"),
	})

	office := service.NewBackoffice(service.CollectionDependencies{Dispatcher: dispatcher, Logger: zap.NewNop()})
	_, err := office.Settings.Create(context.Background(), domain.Setting{Key: "k"})
	require.NoError(t, err)

	entries, err := audit.List(context.Background(), repository.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionCreated, entries[0].Action)
}

func TestStartWithNothingConfigured(t *testing.T) {
	assert.NotPanics(t, func() { Start(nil, Subscribers{}) })
}
