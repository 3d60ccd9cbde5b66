package service

import (
	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/query"
	"github.com/spec-kit/backoffice/internal/ssn"
	"github.com/spec-kit/backoffice/internal/stats"
)

// Collection names double as route segments.
const (
	CollectionUsers         = "users"
	CollectionEmployees     = "employees"
	CollectionContent       = "content"
	CollectionPayments      = "payments"
	CollectionInquiries     = "inquiries"
	CollectionNotifications = "notifications"
	CollectionPermissions   = "permissions"
	CollectionSettings      = "settings"
)

// CollectionNames lists every collection in menu order.
var CollectionNames = []string{
	CollectionUsers,
	CollectionEmployees,
	CollectionContent,
	CollectionPayments,
	CollectionInquiries,
	CollectionNotifications,
	CollectionPermissions,
	CollectionSettings,
}

type (
	Users         = Collection[domain.User, *domain.User, stats.UserSummary]
	Employees     = Collection[domain.Employee, *domain.Employee, stats.EmployeeSummary]
	Contents      = Collection[domain.Content, *domain.Content, stats.ContentSummary]
	Permissions   = Collection[domain.AdminAccount, *domain.AdminAccount, stats.AdminSummary]
	Settings      = Collection[domain.Setting, *domain.Setting, stats.SettingSummary]
	paymentStore  = Collection[domain.Payment, *domain.Payment, stats.PaymentSummary]
	inquiryStore  = Collection[domain.Inquiry, *domain.Inquiry, stats.InquirySummary]
	noticeStore   = Collection[domain.Notification, *domain.Notification, stats.NotificationSummary]
)

// UserSchema describes the users page.
func UserSchema() Schema[domain.User, stats.UserSummary] {
	return Schema[domain.User, stats.UserSummary]{
		Name: CollectionUsers,
		Query: query.Schema[domain.User]{
			Search: []query.Accessor[domain.User]{
				func(u *domain.User) string { return u.Name },
				func(u *domain.User) string { return u.Email },
				func(u *domain.User) string { return u.Phone },
			},
			Facets: map[string]query.Accessor[domain.User]{
				"status": func(u *domain.User) string { return string(u.Status) },
				"role":   func(u *domain.User) string { return string(u.Role) },
			},
		},
		Summarize: stats.Users,
		Defaults: func(u *domain.User) {
			if u.Status == "" {
				u.Status = domain.UserStatusActive
			}
			if u.Role == "" {
				u.Role = domain.UserRoleUser
			}
		},
		Status: func(u *domain.User) string { return string(u.Status) },
	}
}

// EmployeeSchema describes the employees page. Resident numbers are masked
// and the gender derived before anything is stored.
func EmployeeSchema() Schema[domain.Employee, stats.EmployeeSummary] {
	return Schema[domain.Employee, stats.EmployeeSummary]{
		Name: CollectionEmployees,
		Query: query.Schema[domain.Employee]{
			Search: []query.Accessor[domain.Employee]{
				func(e *domain.Employee) string { return e.Name },
				func(e *domain.Employee) string { return e.Email },
				func(e *domain.Employee) string { return e.Department },
				func(e *domain.Employee) string { return e.Position },
			},
			Facets: map[string]query.Accessor[domain.Employee]{
				"status":     func(e *domain.Employee) string { return string(e.Status) },
				"department": func(e *domain.Employee) string { return e.Department },
				"gender":     func(e *domain.Employee) string { return string(e.Gender) },
			},
		},
		Summarize: stats.Employees,
		Defaults: func(e *domain.Employee) {
			if e.Status == "" {
				e.Status = domain.EmployeeStatusActive
			}
		},
		Prepare: func(e *domain.Employee) {
			if e.SSN != "" {
				e.SSN, e.Gender = ssn.Apply(e.SSN, e.Gender)
			}
		},
		Status: func(e *domain.Employee) string { return string(e.Status) },
	}
}

// ContentSchema describes the content page.
func ContentSchema() Schema[domain.Content, stats.ContentSummary] {
	return Schema[domain.Content, stats.ContentSummary]{
		Name: CollectionContent,
		Query: query.Schema[domain.Content]{
			Search: []query.Accessor[domain.Content]{
				func(c *domain.Content) string { return c.Title },
				func(c *domain.Content) string { return c.Body },
				func(c *domain.Content) string { return c.Category },
				func(c *domain.Content) string { return c.Excerpt },
			},
			Facets: map[string]query.Accessor[domain.Content]{
				"status":   func(c *domain.Content) string { return string(c.Status) },
				"category": func(c *domain.Content) string { return c.Category },
				"type":     func(c *domain.Content) string { return string(c.Type) },
				"author":   func(c *domain.Content) string { return c.Author },
			},
		},
		Summarize: stats.Contents,
		Defaults: func(c *domain.Content) {
			if c.Status == "" {
				c.Status = domain.ContentStatusDraft
			}
		},
		Status: func(c *domain.Content) string { return string(c.Status) },
	}
}

// PaymentSchema describes the payments page.
func PaymentSchema() Schema[domain.Payment, stats.PaymentSummary] {
	return Schema[domain.Payment, stats.PaymentSummary]{
		Name: CollectionPayments,
		Query: query.Schema[domain.Payment]{
			Search: []query.Accessor[domain.Payment]{
				func(p *domain.Payment) string { return p.TransactionID },
				func(p *domain.Payment) string { return p.UserName },
				func(p *domain.Payment) string { return p.Description },
			},
			Facets: map[string]query.Accessor[domain.Payment]{
				"status": func(p *domain.Payment) string { return string(p.Status) },
				"method": func(p *domain.Payment) string { return string(p.Method) },
				"user":   func(p *domain.Payment) string { return p.UserID },
			},
		},
		Summarize: stats.Payments,
		Defaults: func(p *domain.Payment) {
			if p.Status == "" {
				p.Status = domain.PaymentStatusPending
			}
		},
		Status:      func(p *domain.Payment) string { return string(p.Status) },
		Transitions: domain.PaymentTransitions,
	}
}

// InquirySchema describes the inquiries page.
func InquirySchema() Schema[domain.Inquiry, stats.InquirySummary] {
	return Schema[domain.Inquiry, stats.InquirySummary]{
		Name: CollectionInquiries,
		Query: query.Schema[domain.Inquiry]{
			Search: []query.Accessor[domain.Inquiry]{
				func(i *domain.Inquiry) string { return i.Title },
				func(i *domain.Inquiry) string { return i.Content },
				func(i *domain.Inquiry) string { return i.UserName },
				func(i *domain.Inquiry) string { return i.Email },
			},
			Facets: map[string]query.Accessor[domain.Inquiry]{
				"status":   func(i *domain.Inquiry) string { return string(i.Status) },
				"category": func(i *domain.Inquiry) string { return i.Category },
				"priority": func(i *domain.Inquiry) string { return string(i.Priority) },
				"assignee": func(i *domain.Inquiry) string { return i.AssignedTo },
			},
		},
		Summarize: stats.Inquiries,
		Defaults: func(i *domain.Inquiry) {
			if i.Status == "" {
				i.Status = domain.InquiryStatusPending
			}
			if i.Priority == "" {
				i.Priority = domain.InquiryPriorityMedium
			}
		},
		Status:      func(i *domain.Inquiry) string { return string(i.Status) },
		Transitions: domain.InquiryTransitions,
	}
}

// NotificationSchema describes the notifications page.
func NotificationSchema() Schema[domain.Notification, stats.NotificationSummary] {
	return Schema[domain.Notification, stats.NotificationSummary]{
		Name: CollectionNotifications,
		Query: query.Schema[domain.Notification]{
			Search: []query.Accessor[domain.Notification]{
				func(n *domain.Notification) string { return n.Title },
				func(n *domain.Notification) string { return n.Message },
			},
			Facets: map[string]query.Accessor[domain.Notification]{
				"status": func(n *domain.Notification) string { return string(n.Status) },
				"type":   func(n *domain.Notification) string { return string(n.Type) },
				"target": func(n *domain.Notification) string { return string(n.Target) },
			},
		},
		Summarize: stats.Notifications,
		Defaults: func(n *domain.Notification) {
			if n.Status == "" {
				n.Status = domain.NotificationStatusDraft
			}
			if n.Type == "" {
				n.Type = domain.NotificationTypeInfo
			}
			if n.Target == "" {
				n.Target = domain.NotificationTargetAll
			}
		},
		Status: func(n *domain.Notification) string { return string(n.Status) },
	}
}

// PermissionSchema describes the permissions page.
func PermissionSchema() Schema[domain.AdminAccount, stats.AdminSummary] {
	return Schema[domain.AdminAccount, stats.AdminSummary]{
		Name: CollectionPermissions,
		Query: query.Schema[domain.AdminAccount]{
			Search: []query.Accessor[domain.AdminAccount]{
				func(a *domain.AdminAccount) string { return a.Name },
				func(a *domain.AdminAccount) string { return a.Email },
				func(a *domain.AdminAccount) string { return a.Department },
			},
			Facets: map[string]query.Accessor[domain.AdminAccount]{
				"status": func(a *domain.AdminAccount) string { return string(a.Status) },
				"role":   func(a *domain.AdminAccount) string { return string(a.Role) },
			},
		},
		Summarize: stats.Admins,
		Defaults: func(a *domain.AdminAccount) {
			if a.Status == "" {
				a.Status = domain.AdminStatusActive
			}
			if a.Role == "" {
				a.Role = domain.AdminRoleViewer
			}
		},
		Status: func(a *domain.AdminAccount) string { return string(a.Status) },
	}
}

// SettingSchema describes the settings page.
func SettingSchema() Schema[domain.Setting, stats.SettingSummary] {
	return Schema[domain.Setting, stats.SettingSummary]{
		Name: CollectionSettings,
		Query: query.Schema[domain.Setting]{
			Search: []query.Accessor[domain.Setting]{
				func(s *domain.Setting) string { return s.Key },
				func(s *domain.Setting) string { return s.Description },
				func(s *domain.Setting) string { return s.Value },
			},
			Facets: map[string]query.Accessor[domain.Setting]{
				"category": func(s *domain.Setting) string { return s.Category },
			},
		},
		Summarize: stats.Settings,
	}
}
