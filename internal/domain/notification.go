package domain

import "time"

// NotificationStatus enumerates delivery states.
type NotificationStatus string

const (
	NotificationStatusDraft     NotificationStatus = "draft"
	NotificationStatusScheduled NotificationStatus = "scheduled"
	NotificationStatusSent      NotificationStatus = "sent"
	NotificationStatusFailed    NotificationStatus = "failed"
)

// NotificationType drives badge colouring.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

// NotificationTarget selects the audience.
type NotificationTarget string

const (
	NotificationTargetAll    NotificationTarget = "all"
	NotificationTargetUsers  NotificationTarget = "users"
	NotificationTargetAdmins NotificationTarget = "admins"
)

// Notification is an announcement managed from the notifications page.
type Notification struct {
	Meta
	Title       string             `json:"title" toml:"title" validate:"required"`
	Message     string             `json:"message" toml:"message" validate:"required"`
	Type        NotificationType   `json:"type" toml:"type" validate:"omitempty,oneof=info success warning error"`
	Target      NotificationTarget `json:"target" toml:"target" validate:"omitempty,oneof=all users admins"`
	Status      NotificationStatus `json:"status" toml:"status" validate:"omitempty,oneof=draft scheduled sent failed"`
	Read        bool               `json:"read" toml:"read"`
	ScheduledAt *time.Time         `json:"scheduled_at,omitempty" toml:"scheduled_at"`
	SentAt      *time.Time         `json:"sent_at,omitempty" toml:"sent_at"`
}

// NotificationPatch is a partial update for a notification.
type NotificationPatch struct {
	Title       *string             `json:"title"`
	Message     *string             `json:"message"`
	Type        *NotificationType   `json:"type"`
	Target      *NotificationTarget `json:"target"`
	Status      *NotificationStatus `json:"status"`
	Read        *bool               `json:"read"`
	ScheduledAt *time.Time          `json:"scheduled_at"`
	SentAt      *time.Time          `json:"-"`
}

// Apply merges the patch into n.
func (p NotificationPatch) Apply(n *Notification) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Message != nil {
		n.Message = *p.Message
	}
	if p.Type != nil {
		n.Type = *p.Type
	}
	if p.Target != nil {
		n.Target = *p.Target
	}
	if p.Status != nil {
		n.Status = *p.Status
	}
	if p.Read != nil {
		n.Read = *p.Read
	}
	if p.ScheduledAt != nil {
		n.ScheduledAt = p.ScheduledAt
	}
	if p.SentAt != nil {
		n.SentAt = p.SentAt
	}
}
