package models

import "time"

// Appointment is the base record. Its services are never stored here — they
// live in AppointmentService join rows and are attached at read time.
type Appointment struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	ClientID  string `json:"clientId"`
	CompanyID string `json:"companyId"`
	Notes     string `json:"notes"`
	Paid      bool   `json:"paid"`

	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty"`
}

// AppointmentService links one appointment to one service. Duplicates are
// allowed: one row per element the caller passed.
type AppointmentService struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	ServiceID     string    `json:"serviceId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AppointmentDetail is the read shape: the base record plus the service ids
// derived from the join rows.
type AppointmentDetail struct {
	Appointment
	ServiceIDs []string `json:"serviceIds"`
}
