package domain

import "time"

// ContentStatus enumerates editorial states.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
	ContentStatusPending   ContentStatus = "pending"
	ContentStatusApproved  ContentStatus = "approved"
	ContentStatusRejected  ContentStatus = "rejected"
	ContentStatusScheduled ContentStatus = "scheduled"
)

// ContentType distinguishes the kind of post.
type ContentType string

const (
	ContentTypeArticle ContentType = "article"
	ContentTypeNotice  ContentType = "notice"
	ContentTypeBanner  ContentType = "banner"
	ContentTypeFAQ     ContentType = "faq"
	ContentTypeEvent   ContentType = "event"
)

// Content is an editorial item managed from the content page.
type Content struct {
	Meta
	Title       string        `json:"title" toml:"title" validate:"required"`
	Body        string        `json:"body" toml:"body"`
	Excerpt     string        `json:"excerpt" toml:"excerpt"`
	Category    string        `json:"category" toml:"category"`
	Type        ContentType   `json:"type" toml:"type" validate:"omitempty,oneof=article notice banner faq event"`
	Status      ContentStatus `json:"status" toml:"status" validate:"omitempty,oneof=draft published archived pending approved rejected scheduled"`
	Author      string        `json:"author" toml:"author"`
	Tags        []string      `json:"tags" toml:"tags"`
	Views       int64         `json:"views" toml:"views" validate:"gte=0"`
	PublishedAt *time.Time    `json:"published_at,omitempty" toml:"published_at"`
	ScheduledAt *time.Time    `json:"scheduled_at,omitempty" toml:"scheduled_at"`
}

// ContentPatch is a partial update for a content item.
type ContentPatch struct {
	Title       *string        `json:"title"`
	Body        *string        `json:"body"`
	Excerpt     *string        `json:"excerpt"`
	Category    *string        `json:"category"`
	Type        *ContentType   `json:"type"`
	Status      *ContentStatus `json:"status"`
	Author      *string        `json:"author"`
	Tags        []string       `json:"tags"`
	ScheduledAt *time.Time     `json:"scheduled_at"`
}

// Apply merges the patch into c. A non-nil Tags slice replaces the tags.
func (p ContentPatch) Apply(c *Content) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Body != nil {
		c.Body = *p.Body
	}
	if p.Excerpt != nil {
		c.Excerpt = *p.Excerpt
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Author != nil {
		c.Author = *p.Author
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	if p.ScheduledAt != nil {
		c.ScheduledAt = p.ScheduledAt
	}
}
