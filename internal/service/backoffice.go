package service

import (
	"context"

	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/seed"
	"github.com/spec-kit/backoffice/internal/stats"
	apperrors "github.com/spec-kit/backoffice/pkg/util/errorutil"
)

// Backoffice bundles the collections behind every admin page.
type Backoffice struct {
	Users         *Users
	Employees     *Employees
	Content       *Contents
	Payments      *Payments
	Inquiries     *Inquiries
	Notifications *Notifications
	Permissions   *Permissions
	Settings      *Settings
}

// NewBackoffice builds empty collections sharing deps.
func NewBackoffice(deps CollectionDependencies) *Backoffice {
	permissions := NewCollection[domain.AdminAccount, *domain.AdminAccount](PermissionSchema(), deps)
	inquiries := &Inquiries{
		inquiryStore: NewCollection[domain.Inquiry, *domain.Inquiry](InquirySchema(), deps),
		admins:       permissions,
	}
	return &Backoffice{
		Users:         NewCollection[domain.User, *domain.User](UserSchema(), deps),
		Employees:     NewCollection[domain.Employee, *domain.Employee](EmployeeSchema(), deps),
		Content:       NewCollection[domain.Content, *domain.Content](ContentSchema(), deps),
		Payments:      &Payments{NewCollection[domain.Payment, *domain.Payment](PaymentSchema(), deps)},
		Inquiries:     inquiries,
		Notifications: &Notifications{NewCollection[domain.Notification, *domain.Notification](NotificationSchema(), deps)},
		Permissions:   permissions,
		Settings:      NewCollection[domain.Setting, *domain.Setting](SettingSchema(), deps),
	}
}

// Seed loads fixtures into every collection.
func (b *Backoffice) Seed(f seed.Fixtures) {
	b.Users.Seed(f.Users)
	b.Employees.Seed(f.Employees)
	b.Content.Seed(f.Content)
	b.Payments.Seed(f.Payments)
	b.Inquiries.Seed(f.Inquiries)
	b.Notifications.Seed(f.Notifications)
	b.Permissions.Seed(f.Permissions)
	b.Settings.Seed(f.Settings)
}

// Reset empties every collection.
func (b *Backoffice) Reset() {
	b.Users.Reset()
	b.Employees.Reset()
	b.Content.Reset()
	b.Payments.Reset()
	b.Inquiries.Reset()
	b.Notifications.Reset()
	b.Permissions.Reset()
	b.Settings.Reset()
}

// Sizes returns a record counter per collection name.
func (b *Backoffice) Sizes() map[string]func() int {
	return map[string]func() int{
		CollectionUsers:         b.Users.Len,
		CollectionEmployees:     b.Employees.Len,
		CollectionContent:       b.Content.Len,
		CollectionPayments:      b.Payments.Len,
		CollectionInquiries:     b.Inquiries.Len,
		CollectionNotifications: b.Notifications.Len,
		CollectionPermissions:   b.Permissions.Len,
		CollectionSettings:      b.Settings.Len,
	}
}

// Dashboard summarizes every collection.
func (b *Backoffice) Dashboard(ctx context.Context) (stats.Dashboard, error) {
	var (
		d   stats.Dashboard
		err error
	)
	if d.Users, err = b.Users.Stats(ctx); err != nil {
		return d, err
	}
	if d.Employees, err = b.Employees.Stats(ctx); err != nil {
		return d, err
	}
	if d.Content, err = b.Content.Stats(ctx); err != nil {
		return d, err
	}
	if d.Payments, err = b.Payments.Stats(ctx); err != nil {
		return d, err
	}
	if d.Inquiries, err = b.Inquiries.Stats(ctx); err != nil {
		return d, err
	}
	if d.Notifications, err = b.Notifications.Stats(ctx); err != nil {
		return d, err
	}
	if d.Permissions, err = b.Permissions.Stats(ctx); err != nil {
		return d, err
	}
	if d.Settings, err = b.Settings.Stats(ctx); err != nil {
		return d, err
	}
	return d, nil
}

// CollectionStats summarizes the named collection.
func (b *Backoffice) CollectionStats(ctx context.Context, name string) (any, error) {
	switch name {
	case CollectionUsers:
		return b.Users.Stats(ctx)
	case CollectionEmployees:
		return b.Employees.Stats(ctx)
	case CollectionContent:
		return b.Content.Stats(ctx)
	case CollectionPayments:
		return b.Payments.Stats(ctx)
	case CollectionInquiries:
		return b.Inquiries.Stats(ctx)
	case CollectionNotifications:
		return b.Notifications.Stats(ctx)
	case CollectionPermissions:
		return b.Permissions.Stats(ctx)
	case CollectionSettings:
		return b.Settings.Stats(ctx)
	default:
		return nil, apperrors.NewNotFound("collection", map[string]any{"name": name})
	}
}
