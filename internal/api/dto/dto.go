package dto

import "github.com/spec-kit/backoffice/internal/domain"

// PageMeta describes a paginated listing.
type PageMeta struct {
	Total     int    `json:"total"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	LastError string `json:"last_error,omitempty"`
}

// ListResponse is the envelope for GET /api/{collection}.
type ListResponse[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// RefundRequest payload.
type RefundRequest struct {
	Reason string `json:"reason"`
}

// AssignRequest payload.
type AssignRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// AnswerRequest payload.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// SSNPreviewRequest payload.
type SSNPreviewRequest struct {
	SSN    string        `json:"ssn"`
	Gender domain.Gender `json:"gender"`
}

// SSNPreviewResponse shows what the employee form would store.
type SSNPreviewResponse struct {
	Masked  string        `json:"masked"`
	Gender  domain.Gender `json:"gender"`
	Derived bool          `json:"derived"`
}
