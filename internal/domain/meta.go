package domain

import "time"

// Meta carries the identity and timestamps shared by every back-office record.
type Meta struct {
	ID        string    `json:"id" toml:"id"`
	CreatedAt time.Time `json:"created_at" toml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" toml:"updated_at"`
}

// Metadata exposes the embedded Meta to generic repositories.
func (m *Meta) Metadata() *Meta {
	return m
}
