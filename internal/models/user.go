package models

import "time"

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
)

// User is a console account: the bootstrap superadmin or a company admin.
// PasswordHash is part of the persisted record but is cleared on every copy
// the store hands out, so it never reaches a response body.
type User struct {
	ID           string `json:"id"`
	Login        string `json:"login"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	CompanyID    string `json:"companyId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized returns a copy safe to serialize to clients.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
