package domain

import (
	"encoding/json"
	"time"
)

// AuditAction captures what happened to a record.
type AuditAction string

const (
	AuditActionCreated AuditAction = "created"
	AuditActionUpdated AuditAction = "updated"
	AuditActionDeleted AuditAction = "deleted"
)

// AuditEntry is an immutable trail entry for a back-office mutation.
type AuditEntry struct {
	ID         string          `json:"id"`
	Collection string          `json:"collection"`
	EntityID   string          `json:"entity_id"`
	Action     AuditAction     `json:"action"`
	EventType  string          `json:"event_type"`
	Snapshot   json.RawMessage `json:"snapshot,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
