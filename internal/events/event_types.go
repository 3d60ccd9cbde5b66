package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntityCreated    EventType = "entity_created"
	EventEntityUpdated    EventType = "entity_updated"
	EventEntityDeleted    EventType = "entity_deleted"
	EventPaymentRefunded  EventType = "payment_refunded"
	EventInquiryAssigned  EventType = "inquiry_assigned"
	EventInquiryAnswered  EventType = "inquiry_answered"
	EventNotificationSent EventType = "notification_sent"
	EventStatusChanged    EventType = "status_changed"
)

// AllEventTypes lists every event the services emit.
var AllEventTypes = []EventType{
	EventEntityCreated,
	EventEntityUpdated,
	EventEntityDeleted,
	EventPaymentRefunded,
	EventInquiryAssigned,
	EventInquiryAnswered,
	EventNotificationSent,
	EventStatusChanged,
}

// Event represents a domain event emitted by services. Payload carries the
// record after the change (before it, for deletions).
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Collection string    `json:"collection"`
	EntityID   string    `json:"entity_id"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload"`
}

// StatusChangedPayload payload.
type StatusChangedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// PaymentRefundedPayload payload.
type PaymentRefundedPayload struct {
	Amount    int64  `json:"amount"`
	OldStatus string `json:"old_status"`
	Reason    string `json:"reason,omitempty"`
}

// InquiryAssignedPayload payload.
type InquiryAssignedPayload struct {
	AssigneeID string `json:"assignee_id"`
	Previous   string `json:"previous,omitempty"`
}
