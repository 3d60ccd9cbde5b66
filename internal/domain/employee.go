package domain

import "time"

// EmployeeStatus enumerates employment states.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusOnLeave  EmployeeStatus = "on_leave"
	EmployeeStatusResigned EmployeeStatus = "resigned"
)

// Gender is either chosen on the form or derived from the resident number.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Employee is a staff record managed from the employees page.
type Employee struct {
	Meta
	Name       string         `json:"name" toml:"name" validate:"required"`
	SSN        string         `json:"ssn" toml:"ssn"`
	Gender     Gender         `json:"gender" toml:"gender" validate:"omitempty,oneof=male female"`
	Email      string         `json:"email" toml:"email" validate:"omitempty,email"`
	Phone      string         `json:"phone" toml:"phone"`
	Department string         `json:"department" toml:"department" validate:"required"`
	Position   string         `json:"position" toml:"position"`
	Status     EmployeeStatus `json:"status" toml:"status" validate:"omitempty,oneof=active on_leave resigned"`
	HireDate   *time.Time     `json:"hire_date,omitempty" toml:"hire_date"`
}

// EmployeePatch is a partial update for an employee.
type EmployeePatch struct {
	Name       *string         `json:"name"`
	SSN        *string         `json:"ssn"`
	Gender     *Gender         `json:"gender"`
	Email      *string         `json:"email"`
	Phone      *string         `json:"phone"`
	Department *string         `json:"department"`
	Position   *string         `json:"position"`
	Status     *EmployeeStatus `json:"status"`
	HireDate   *time.Time      `json:"hire_date"`
}

// Apply merges the patch into e. A new SSN without a gender clears the
// gender so it is derived again from the new number.
func (p EmployeePatch) Apply(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.SSN != nil {
		if *p.SSN != e.SSN && p.Gender == nil {
			e.Gender = GenderUnset
		}
		e.SSN = *p.SSN
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.HireDate != nil {
		e.HireDate = p.HireDate
	}
}
