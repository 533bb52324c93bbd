package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type ServiceInput struct {
	Name     string
	Duration int
	Type     string
	Color    string
}

type ServicePatch struct {
	Name     *string
	Duration *int
	Type     *string
	Color    *string
}

func (s *Store) AddService(ctx context.Context, companyID, userID string, in ServiceInput) (*models.Service, error) {
	services, err := readCollection[models.Service](ctx, s.backend, colServices)
	if err != nil {
		return nil, err
	}

	service := models.Service{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Duration:  in.Duration,
		Type:      in.Type,
		Color:     in.Color,
		CompanyID: companyID,
		CreatedAt: time.Now().UTC(),
		CreatedBy: userID,
	}

	services = append(services, service)
	if err := writeCollection(ctx, s.backend, colServices, services); err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionCreate, "service", service.ID, map[string]any{
		"service_name": service.Name,
	}); err != nil {
		return nil, err
	}

	return &service, nil
}

func (s *Store) UpdateService(ctx context.Context, userID, serviceID string, patch ServicePatch) (*models.Service, error) {
	services, err := readCollection[models.Service](ctx, s.backend, colServices)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, srv := range services {
		if srv.ID == serviceID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrServiceNotFound
	}

	service := services[idx]
	if patch.Name != nil {
		service.Name = *patch.Name
	}
	if patch.Duration != nil {
		service.Duration = *patch.Duration
	}
	if patch.Type != nil {
		service.Type = *patch.Type
	}
	if patch.Color != nil {
		service.Color = *patch.Color
	}

	now := time.Now().UTC()
	service.UpdatedAt = &now
	service.UpdatedBy = userID

	services[idx] = service
	if err := writeCollection(ctx, s.backend, colServices, services); err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionUpdate, "service", serviceID, map[string]any{
		"service_name": service.Name,
	}); err != nil {
		return nil, err
	}

	return &service, nil
}

// DeleteService removes the service and cascades any appointment-service
// rows still referencing it, so reads never see a dangling service id.
func (s *Store) DeleteService(ctx context.Context, userID, serviceID string) (string, error) {
	services, err := readCollection[models.Service](ctx, s.backend, colServices)
	if err != nil {
		return "", err
	}

	var name string
	idx := -1
	for i, srv := range services {
		if srv.ID == serviceID {
			idx = i
			name = srv.Name
			break
		}
	}
	if idx == -1 {
		return "", ErrServiceNotFound
	}

	services = append(services[:idx], services[idx+1:]...)
	if err := writeCollection(ctx, s.backend, colServices, services); err != nil {
		return "", err
	}

	links, err := readCollection[models.AppointmentService](ctx, s.backend, colAppointmentServices)
	if err != nil {
		return "", err
	}
	kept := links[:0]
	for _, l := range links {
		if l.ServiceID != serviceID {
			kept = append(kept, l)
		}
	}
	if len(kept) != len(links) {
		if err := writeCollection(ctx, s.backend, colAppointmentServices, kept); err != nil {
			return "", err
		}
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionDelete, "service", serviceID, map[string]any{
		"service_name": name,
	}); err != nil {
		return "", err
	}

	return serviceID, nil
}

func (s *Store) CompanyServices(ctx context.Context, companyID string) ([]models.Service, error) {
	services, err := readCollection[models.Service](ctx, s.backend, colServices)
	if err != nil {
		return nil, err
	}

	out := []models.Service{}
	for _, srv := range services {
		if srv.CompanyID == companyID {
			out = append(out, srv)
		}
	}
	return out, nil
}
