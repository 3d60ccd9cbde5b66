package domain

import "time"

// InquiryStatus enumerates support inquiry states.
type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "pending"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
	InquiryStatusClosed     InquiryStatus = "closed"
)

// InquiryPriority enumerates urgency.
type InquiryPriority string

const (
	InquiryPriorityLow    InquiryPriority = "low"
	InquiryPriorityMedium InquiryPriority = "medium"
	InquiryPriorityHigh   InquiryPriority = "high"
	InquiryPriorityUrgent InquiryPriority = "urgent"
)

// Inquiry is a customer question handled on the inquiries page.
// AssignedTo is a soft reference to an admin account identifier.
type Inquiry struct {
	Meta
	UserID     string          `json:"user_id" toml:"user_id"`
	UserName   string          `json:"user_name" toml:"user_name"`
	Email      string          `json:"email" toml:"email" validate:"omitempty,email"`
	Title      string          `json:"title" toml:"title" validate:"required"`
	Content    string          `json:"content" toml:"content" validate:"required"`
	Category   string          `json:"category" toml:"category"`
	Priority   InquiryPriority `json:"priority" toml:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status     InquiryStatus   `json:"status" toml:"status" validate:"omitempty,oneof=pending in_progress resolved closed"`
	AssignedTo string          `json:"assigned_to" toml:"assigned_to"`
	Answer     string          `json:"answer,omitempty" toml:"answer"`
	AnsweredAt *time.Time      `json:"answered_at,omitempty" toml:"answered_at"`
}

// InquiryPatch is a partial update for an inquiry.
type InquiryPatch struct {
	Title      *string          `json:"title"`
	Content    *string          `json:"content"`
	Category   *string          `json:"category"`
	Priority   *InquiryPriority `json:"priority"`
	Status     *InquiryStatus   `json:"status"`
	AssignedTo *string          `json:"assigned_to"`
	Answer     *string          `json:"answer"`
	AnsweredAt *time.Time       `json:"-"`
}

// Apply merges the patch into i.
func (p InquiryPatch) Apply(i *Inquiry) {
	if p.Title != nil {
		i.Title = *p.Title
	}
	if p.Content != nil {
		i.Content = *p.Content
	}
	if p.Category != nil {
		i.Category = *p.Category
	}
	if p.Priority != nil {
		i.Priority = *p.Priority
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
	if p.AssignedTo != nil {
		i.AssignedTo = *p.AssignedTo
	}
	if p.Answer != nil {
		i.Answer = *p.Answer
	}
	if p.AnsweredAt != nil {
		i.AnsweredAt = p.AnsweredAt
	}
}
