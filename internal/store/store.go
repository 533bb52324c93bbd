// Package store is the data-access layer of the console: typed CRUD over the
// persisted collections, the appointment/service link table, and the
// activity log. Every operation reads a whole collection, mutates it in
// memory and writes it back — fine at the scale of one small business, and
// the storage.Backend seam is where indexed storage would slot in.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	"github.com/BruksfildServices01/salon-admin/internal/storage"
)

// Persisted collection names.
const (
	colUsers               = "users"
	colCompanies           = "companies"
	colEmployees           = "employees"
	colServices            = "services"
	colClients             = "clients"
	colAppointments        = "appointments"
	colAppointmentServices = "appointmentServices"

	keyCurrentUser = "currentUser"
	keyTheme       = "theme"
)

type Store struct {
	backend storage.Backend
	audit   *audit.Recorder
}

func New(backend storage.Backend) *Store {
	return &Store{
		backend: backend,
		audit:   audit.New(backend),
	}
}

func readCollection[T any](ctx context.Context, b storage.Backend, name string) ([]T, error) {
	raw, err := b.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", name, err)
	}
	return items, nil
}

func writeCollection[T any](ctx context.Context, b storage.Backend, name string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	return b.Set(ctx, name, raw)
}
