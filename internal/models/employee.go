package models

import "time"

// Employee works for one company. Login/password are stored for a future
// employee portal; they are not a login surface today. Login is unique among
// employees only — an admin may share the same login.
type Employee struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	HourlyRate   float64 `json:"hourlyRate"`
	Login        string  `json:"login"`
	PasswordHash string  `json:"passwordHash,omitempty"`
	CompanyID    string  `json:"companyId"`

	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty"`
}

func (e Employee) Sanitized() Employee {
	e.PasswordHash = ""
	return e
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
