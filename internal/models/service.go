package models

import "time"

// Service is something the company sells: a haircut, a manicure. Duration is
// minutes. Color is whatever the calendar UI wants to paint it with.
type Service struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Duration  int    `json:"duration"`
	Type      string `json:"type,omitempty"`
	Color     string `json:"color"`
	CompanyID string `json:"companyId"`

	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty"`
}
