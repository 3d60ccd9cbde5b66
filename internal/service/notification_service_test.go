package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/backoffice/internal/config"
	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/events"
)

func TestNotificationRelayChannels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{
		EmailFrom:  "noreply@example.com",
		WebhookURL: "https://hooks.example.com",
	}).RegisterHandlers()
	ctx := context.Background()

	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:       events.EventPaymentRefunded,
		Collection: CollectionPayments,
		EntityID:   "pay-2",
		Payload:    events.PaymentRefundedPayload{Amount: 100000, Reason: "고객 요청"},
	}))
	relayed := logs.FilterMessage("event relayed").All()
	require.Len(t, relayed, 1)
	assert.Equal(t, int64(100000), relayed[0].ContextMap()["amount"])
	assert.Equal(t, 1, logs.FilterMessage("webhook queued").Len())
	assert.Zero(t, logs.FilterMessage("email queued").Len())

	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:       events.EventNotificationSent,
		Collection: CollectionNotifications,
		EntityID:   "noti-2",
		Payload:    domain.Notification{Title: "점검 안내", Target: domain.NotificationTargetAll},
	}))
	assert.Equal(t, 1, logs.FilterMessage("email queued").Len())
	assert.Equal(t, 2, logs.FilterMessage("webhook queued").Len())
}

func TestNotificationRelayIgnoresUnroutedEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{}).RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventEntityCreated}))
	assert.Zero(t, logs.Len())
}

func TestNotificationRelaySkipsUnconfiguredEndpoints(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{}).RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventInquiryAnswered,
		Payload: domain.Inquiry{Title: "환불 문의", UserID: "user-1"},
	}))
	assert.Equal(t, 1, logs.FilterMessage("event relayed").Len())
	assert.Zero(t, logs.FilterMessage("email queued").Len())
}
