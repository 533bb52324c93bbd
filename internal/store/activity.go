package store

import (
	"context"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

// ActivityLogFilter narrows the log query; zero values match everything.
type ActivityLogFilter struct {
	Action     string
	EntityType string
}

// LogActivity appends one entry to the activity log and returns it.
func (s *Store) LogActivity(ctx context.Context, userID, action, entityType, entityID string, details map[string]any) (*models.ActivityLog, error) {
	return s.audit.Record(ctx, userID, action, entityType, entityID, details)
}

// ActivityLogs returns entries whose actor belongs to the company. The
// attribution is purely through the acting user's company membership —
// Users only, so employee-held ids never match, and the entity acted upon
// is not consulted.
func (s *Store) ActivityLogs(ctx context.Context, companyID string, filter ActivityLogFilter) ([]models.ActivityLog, error) {
	logs, err := s.audit.All(ctx)
	if err != nil {
		return nil, err
	}

	users, err := readCollection[models.User](ctx, s.backend, colUsers)
	if err != nil {
		return nil, err
	}

	companyUsers := map[string]bool{}
	for _, u := range users {
		// Superadmins carry no companyId; they never attribute to a company.
		if u.CompanyID != "" && u.CompanyID == companyID {
			companyUsers[u.ID] = true
		}
	}

	out := []models.ActivityLog{}
	for _, entry := range logs {
		if !companyUsers[entry.UserID] {
			continue
		}
		if filter.Action != "" && entry.Action != filter.Action {
			continue
		}
		if filter.EntityType != "" && entry.EntityType != filter.EntityType {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}
