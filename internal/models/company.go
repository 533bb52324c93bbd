package models

import "time"

// Company is the tenant: every employee, service, client and appointment
// belongs to exactly one.
type Company struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	CreatedAt time.Time `json:"createdAt"`
}
