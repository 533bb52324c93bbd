package models

import "time"

// Actions recorded in the activity log.
const (
	ActionCreate        = "create"
	ActionUpdate        = "update"
	ActionDelete        = "delete"
	ActionUpdatePayment = "update_payment"
	ActionUpdateNotes   = "update_notes"
)

// ActivityLog is one append-only audit entry, attributed to the acting user
// and, through that user's company membership, to a company.
type ActivityLog struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"createdAt"`
}
