package worker

import (
	"github.com/spec-kit/backoffice/internal/events"
	"github.com/spec-kit/backoffice/internal/service"
)

// Subscribers are the event consumers started with the server.
type Subscribers struct {
	Notification *service.NotificationService
	Audit        *service.AuditService
	Redis        *events.RedisPublisher
}

// Start registers every configured subscriber on dispatcher.
func Start(dispatcher events.Dispatcher, subs Subscribers) {
	if subs.Audit != nil {
		subs.Audit.RegisterHandlers()
	}
	if subs.Notification != nil {
		subs.Notification.RegisterHandlers()
	}
	if subs.Redis != nil && dispatcher != nil {
		events.SubscribeAll(dispatcher, subs.Redis.Handle)
	}
}
