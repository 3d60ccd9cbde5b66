package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/backoffice/internal/config"
	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/events"
)

type relayChannel uint8

const (
	relayEmail relayChannel = 1 << iota
	relayWebhook
)

type relayRoute struct {
	channels relayChannel
	fields   func(events.Event) []zap.Field
}

// relayRoutes lists the events operators are told about and where.
var relayRoutes = map[events.EventType]relayRoute{
	events.EventPaymentRefunded: {relayWebhook, func(e events.Event) []zap.Field {
		p, _ := e.Payload.(events.PaymentRefundedPayload)
		return []zap.Field{zap.Int64("amount", p.Amount), zap.String("reason", p.Reason)}
	}},
	events.EventInquiryAssigned: {relayWebhook, func(e events.Event) []zap.Field {
		p, _ := e.Payload.(events.InquiryAssignedPayload)
		return []zap.Field{zap.String("assignee_id", p.AssigneeID)}
	}},
	events.EventInquiryAnswered: {relayEmail, func(e events.Event) []zap.Field {
		q, _ := e.Payload.(domain.Inquiry)
		return []zap.Field{zap.String("user_id", q.UserID), zap.String("title", q.Title)}
	}},
	events.EventNotificationSent: {relayEmail | relayWebhook, func(e events.Event) []zap.Field {
		n, _ := e.Payload.(domain.Notification)
		return []zap.Field{zap.String("target", string(n.Target)), zap.String("title", n.Title)}
	}},
}

// NotificationService relays back-office events to the operator email and
// webhook endpoints. Delivery is stubbed as structured log lines.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger.Named("relay"),
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes the relay to every routed event type.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for eventType := range relayRoutes {
		n.dispatcher.Subscribe(eventType, n.relay)
	}
}

func (n *NotificationService) relay(ctx context.Context, event events.Event) error {
	route, ok := relayRoutes[event.Type]
	if !ok {
		return nil
	}
	fields := append([]zap.Field{
		zap.String("event_type", string(event.Type)),
		zap.String("collection", event.Collection),
		zap.String("entity_id", event.EntityID),
	}, route.fields(event)...)
	n.logger.Info("event relayed", fields...)

	if route.channels&relayEmail != 0 {
		n.sendEmail(ctx, fields)
	}
	if route.channels&relayWebhook != 0 {
		n.sendWebhook(ctx, fields)
	}
	return nil
}

func (n *NotificationService) sendEmail(_ context.Context, fields []zap.Field) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("email queued", append(fields, zap.String("from", n.cfg.EmailFrom))...)
}

func (n *NotificationService) sendWebhook(_ context.Context, fields []zap.Field) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("webhook queued", append(fields, zap.String("url", n.cfg.WebhookURL))...)
}
