package domain

import "time"

// UserStatus represents lifecycle states for a member account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// UserRole classifies member accounts.
type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRolePremium UserRole = "premium"
	UserRoleAdmin   UserRole = "admin"
)

// User is a member account managed from the users page.
type User struct {
	Meta
	Name      string     `json:"name" toml:"name" validate:"required"`
	Email     string     `json:"email" toml:"email" validate:"required,email"`
	Phone     string     `json:"phone" toml:"phone"`
	Role      UserRole   `json:"role" toml:"role" validate:"omitempty,oneof=user premium admin"`
	Status    UserStatus `json:"status" toml:"status" validate:"omitempty,oneof=active inactive suspended"`
	LastLogin *time.Time `json:"last_login,omitempty" toml:"last_login"`
}

// UserPatch is a partial update; nil fields are left untouched.
type UserPatch struct {
	Name   *string     `json:"name"`
	Email  *string     `json:"email"`
	Phone  *string     `json:"phone"`
	Role   *UserRole   `json:"role"`
	Status *UserStatus `json:"status"`
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}
