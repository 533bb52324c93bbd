package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/storage"
)

const collection = "activityLogs"

// Recorder owns the activityLogs collection. Appends are synchronous: the
// entry an operation logged must be readable as soon as the operation
// returns, and the entry itself is part of the operation's result.
type Recorder struct {
	backend storage.Backend
}

func New(backend storage.Backend) *Recorder {
	return &Recorder{backend: backend}
}

// Record appends one entry and returns it. Entries are never updated or
// deleted afterwards.
func (r *Recorder) Record(
	ctx context.Context,
	userID string,
	action string,
	entityType string,
	entityID string,
	details map[string]any,
) (*models.ActivityLog, error) {

	logs, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	entry := models.ActivityLog{
		ID:         uuid.NewString(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}

	logs = append(logs, entry)

	raw, err := json.Marshal(logs)
	if err != nil {
		return nil, fmt.Errorf("encode activity log: %w", err)
	}
	if err := r.backend.Set(ctx, collection, raw); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *Recorder) All(ctx context.Context) ([]models.ActivityLog, error) {
	raw, err := r.backend.Get(ctx, collection)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.ActivityLog{}, nil
	}

	var logs []models.ActivityLog
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil, fmt.Errorf("decode activity log: %w", err)
	}
	return logs, nil
}
