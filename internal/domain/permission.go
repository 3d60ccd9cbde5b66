package domain

import "time"

// AdminRole enumerates back-office operator roles.
type AdminRole string

const (
	AdminRoleSuperAdmin AdminRole = "super_admin"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleManager    AdminRole = "manager"
	AdminRoleViewer     AdminRole = "viewer"
)

// AdminStatus enumerates whether an operator may sign in.
type AdminStatus string

const (
	AdminStatusActive   AdminStatus = "active"
	AdminStatusInactive AdminStatus = "inactive"
)

// AdminAccount is an operator row on the permissions page. Permissions holds
// the granted capability keys such as "users.write".
type AdminAccount struct {
	Meta
	Name        string      `json:"name" toml:"name" validate:"required"`
	Email       string      `json:"email" toml:"email" validate:"required,email"`
	Department  string      `json:"department" toml:"department"`
	Role        AdminRole   `json:"role" toml:"role" validate:"omitempty,oneof=super_admin admin manager viewer"`
	Status      AdminStatus `json:"status" toml:"status" validate:"omitempty,oneof=active inactive"`
	Permissions []string    `json:"permissions" toml:"permissions"`
	LastLogin   *time.Time  `json:"last_login,omitempty" toml:"last_login"`
}

// AdminAccountPatch is a partial update for an operator.
type AdminAccountPatch struct {
	Name        *string      `json:"name"`
	Email       *string      `json:"email"`
	Department  *string      `json:"department"`
	Role        *AdminRole   `json:"role"`
	Status      *AdminStatus `json:"status"`
	Permissions []string     `json:"permissions"`
}

// Apply merges the patch into a. A non-nil Permissions slice replaces the grants.
func (p AdminAccountPatch) Apply(a *AdminAccount) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Department != nil {
		a.Department = *p.Department
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Permissions != nil {
		a.Permissions = append([]string(nil), p.Permissions...)
	}
}
