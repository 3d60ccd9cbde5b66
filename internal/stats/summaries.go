package stats

import "github.com/spec-kit/backoffice/internal/domain"

// UserSummary backs the users page header.
type UserSummary struct {
	Total     int    `json:"total"`
	Active    int    `json:"active"`
	Inactive  int    `json:"inactive"`
	Suspended int    `json:"suspended"`
	ByStatus  Counts `json:"by_status"`
	ByRole    Counts `json:"by_role"`
}

// Users summarizes member accounts.
func Users(items []domain.User) UserSummary {
	byStatus := CountBy(items, func(u *domain.User) string { return string(u.Status) })
	return UserSummary{
		Total:     len(items),
		Active:    byStatus.Get(string(domain.UserStatusActive)),
		Inactive:  byStatus.Get(string(domain.UserStatusInactive)),
		Suspended: byStatus.Get(string(domain.UserStatusSuspended)),
		ByStatus:  byStatus,
		ByRole:    CountBy(items, func(u *domain.User) string { return string(u.Role) }),
	}
}

// EmployeeSummary backs the employees page header.
type EmployeeSummary struct {
	Total        int    `json:"total"`
	Active       int    `json:"active"`
	Male         int    `json:"male"`
	Female       int    `json:"female"`
	ByStatus     Counts `json:"by_status"`
	ByDepartment Counts `json:"by_department"`
	ByGender     Counts `json:"by_gender"`
}

// Employees summarizes staff records.
func Employees(items []domain.Employee) EmployeeSummary {
	byGender := CountBy(items, func(e *domain.Employee) string { return string(e.Gender) })
	byStatus := CountBy(items, func(e *domain.Employee) string { return string(e.Status) })
	return EmployeeSummary{
		Total:        len(items),
		Active:       byStatus.Get(string(domain.EmployeeStatusActive)),
		Male:         byGender.Get(string(domain.GenderMale)),
		Female:       byGender.Get(string(domain.GenderFemale)),
		ByStatus:     byStatus,
		ByDepartment: CountBy(items, func(e *domain.Employee) string { return e.Department }),
		ByGender:     byGender,
	}
}

// ContentSummary backs the content page header.
type ContentSummary struct {
	Total      int    `json:"total"`
	Published  int    `json:"published"`
	Draft      int    `json:"draft"`
	Pending    int    `json:"pending"`
	TotalViews int64  `json:"total_views"`
	ByStatus   Counts `json:"by_status"`
	ByCategory Counts `json:"by_category"`
	ByType     Counts `json:"by_type"`
}

// Contents summarizes editorial items.
func Contents(items []domain.Content) ContentSummary {
	byStatus := CountBy(items, func(c *domain.Content) string { return string(c.Status) })
	return ContentSummary{
		Total:      len(items),
		Published:  byStatus.Get(string(domain.ContentStatusPublished)),
		Draft:      byStatus.Get(string(domain.ContentStatusDraft)),
		Pending:    byStatus.Get(string(domain.ContentStatusPending)),
		TotalViews: SumBy(items, func(c *domain.Content) int64 { return c.Views }),
		ByStatus:   byStatus,
		ByCategory: CountBy(items, func(c *domain.Content) string { return c.Category }),
		ByType:     CountBy(items, func(c *domain.Content) string { return string(c.Type) }),
	}
}

// PaymentSummary backs the payments page header. Amounts are whole won.
type PaymentSummary struct {
	Total           int    `json:"total"`
	TotalAmount     int64  `json:"total_amount"`
	CompletedAmount int64  `json:"completed_amount"`
	RefundedAmount  int64  `json:"refunded_amount"`
	Completed       int    `json:"completed_count"`
	Pending         int    `json:"pending_count"`
	Failed          int    `json:"failed_count"`
	Refunded        int    `json:"refunded_count"`
	ByStatus        Counts `json:"by_status"`
	ByMethod        Counts `json:"by_method"`
}

// Payments summarizes transactions.
func Payments(items []domain.Payment) PaymentSummary {
	amount := func(p *domain.Payment) int64 { return p.Amount }
	statusIs := func(s domain.PaymentStatus) func(*domain.Payment) bool {
		return func(p *domain.Payment) bool { return p.Status == s }
	}
	byStatus := CountBy(items, func(p *domain.Payment) string { return string(p.Status) })
	return PaymentSummary{
		Total:           len(items),
		TotalAmount:     SumBy(items, amount),
		CompletedAmount: SumIf(items, statusIs(domain.PaymentStatusCompleted), amount),
		RefundedAmount:  SumIf(items, statusIs(domain.PaymentStatusRefunded), amount),
		Completed:       byStatus.Get(string(domain.PaymentStatusCompleted)),
		Pending:         byStatus.Get(string(domain.PaymentStatusPending)),
		Failed:          byStatus.Get(string(domain.PaymentStatusFailed)),
		Refunded:        byStatus.Get(string(domain.PaymentStatusRefunded)),
		ByStatus:        byStatus,
		ByMethod:        CountBy(items, func(p *domain.Payment) string { return string(p.Method) }),
	}
}

// InquirySummary backs the inquiries page header.
type InquirySummary struct {
	Total      int    `json:"total"`
	Pending    int    `json:"pending"`
	InProgress int    `json:"in_progress"`
	Resolved   int    `json:"resolved"`
	Unassigned int    `json:"unassigned"`
	ByStatus   Counts `json:"by_status"`
	ByPriority Counts `json:"by_priority"`
	ByCategory Counts `json:"by_category"`
}

// Inquiries summarizes support inquiries.
func Inquiries(items []domain.Inquiry) InquirySummary {
	byStatus := CountBy(items, func(i *domain.Inquiry) string { return string(i.Status) })
	return InquirySummary{
		Total:      len(items),
		Pending:    byStatus.Get(string(domain.InquiryStatusPending)),
		InProgress: byStatus.Get(string(domain.InquiryStatusInProgress)),
		Resolved:   byStatus.Get(string(domain.InquiryStatusResolved)),
		Unassigned: CountIf(items, func(i *domain.Inquiry) bool { return i.AssignedTo == "" }),
		ByStatus:   byStatus,
		ByPriority: CountBy(items, func(i *domain.Inquiry) string { return string(i.Priority) }),
		ByCategory: CountBy(items, func(i *domain.Inquiry) string { return i.Category }),
	}
}

// NotificationSummary backs the notifications page header.
type NotificationSummary struct {
	Total    int    `json:"total"`
	Sent     int    `json:"sent"`
	Unread   int    `json:"unread"`
	ByStatus Counts `json:"by_status"`
	ByType   Counts `json:"by_type"`
	ByTarget Counts `json:"by_target"`
}

// Notifications summarizes announcements.
func Notifications(items []domain.Notification) NotificationSummary {
	byStatus := CountBy(items, func(n *domain.Notification) string { return string(n.Status) })
	return NotificationSummary{
		Total:    len(items),
		Sent:     byStatus.Get(string(domain.NotificationStatusSent)),
		Unread:   CountIf(items, func(n *domain.Notification) bool { return !n.Read }),
		ByStatus: byStatus,
		ByType:   CountBy(items, func(n *domain.Notification) string { return string(n.Type) }),
		ByTarget: CountBy(items, func(n *domain.Notification) string { return string(n.Target) }),
	}
}

// AdminSummary backs the permissions page header.
type AdminSummary struct {
	Total    int    `json:"total"`
	Active   int    `json:"active"`
	ByStatus Counts `json:"by_status"`
	ByRole   Counts `json:"by_role"`
}

// Admins summarizes operator accounts.
func Admins(items []domain.AdminAccount) AdminSummary {
	byStatus := CountBy(items, func(a *domain.AdminAccount) string { return string(a.Status) })
	return AdminSummary{
		Total:    len(items),
		Active:   byStatus.Get(string(domain.AdminStatusActive)),
		ByStatus: byStatus,
		ByRole:   CountBy(items, func(a *domain.AdminAccount) string { return string(a.Role) }),
	}
}

// SettingSummary backs the settings page header.
type SettingSummary struct {
	Total      int    `json:"total"`
	ByCategory Counts `json:"by_category"`
}

// Settings summarizes configuration rows.
func Settings(items []domain.Setting) SettingSummary {
	return SettingSummary{
		Total:      len(items),
		ByCategory: CountBy(items, func(s *domain.Setting) string { return s.Category }),
	}
}

// Dashboard is the analytics page: every collection summary side by side.
type Dashboard struct {
	Users         UserSummary         `json:"users"`
	Employees     EmployeeSummary     `json:"employees"`
	Content       ContentSummary      `json:"content"`
	Payments      PaymentSummary      `json:"payments"`
	Inquiries     InquirySummary      `json:"inquiries"`
	Notifications NotificationSummary `json:"notifications"`
	Permissions   AdminSummary        `json:"permissions"`
	Settings      SettingSummary      `json:"settings"`
}
