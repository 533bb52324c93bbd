package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type ClientInput struct {
	FullName string
	Phone    string
}

type ClientPatch struct {
	FullName *string
	Phone    *string
}

func (s *Store) AddClient(ctx context.Context, companyID, userID string, in ClientInput) (*models.Client, error) {
	clients, err := readCollection[models.Client](ctx, s.backend, colClients)
	if err != nil {
		return nil, err
	}

	client := models.Client{
		ID:        uuid.NewString(),
		FullName:  in.FullName,
		Phone:     in.Phone,
		CompanyID: companyID,
		CreatedAt: time.Now().UTC(),
		CreatedBy: userID,
	}

	clients = append(clients, client)
	if err := writeCollection(ctx, s.backend, colClients, clients); err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionCreate, "client", client.ID, map[string]any{
		"client_name": client.FullName,
	}); err != nil {
		return nil, err
	}

	return &client, nil
}

func (s *Store) UpdateClient(ctx context.Context, userID, clientID string, patch ClientPatch) (*models.Client, error) {
	clients, err := readCollection[models.Client](ctx, s.backend, colClients)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, cli := range clients {
		if cli.ID == clientID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrClientNotFound
	}

	client := clients[idx]
	if patch.FullName != nil {
		client.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		client.Phone = *patch.Phone
	}

	now := time.Now().UTC()
	client.UpdatedAt = &now
	client.UpdatedBy = userID

	clients[idx] = client
	if err := writeCollection(ctx, s.backend, colClients, clients); err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionUpdate, "client", clientID, map[string]any{
		"client_name": client.FullName,
	}); err != nil {
		return nil, err
	}

	return &client, nil
}

// DeleteClient refuses to remove a client that still has appointments. The
// check runs before anything is touched, so a refusal leaves state intact.
func (s *Store) DeleteClient(ctx context.Context, userID, clientID string) (string, error) {
	clients, err := readCollection[models.Client](ctx, s.backend, colClients)
	if err != nil {
		return "", err
	}

	var name string
	idx := -1
	for i, cli := range clients {
		if cli.ID == clientID {
			idx = i
			name = cli.FullName
			break
		}
	}
	if idx == -1 {
		return "", ErrClientNotFound
	}

	appointments, err := readCollection[models.Appointment](ctx, s.backend, colAppointments)
	if err != nil {
		return "", err
	}
	for _, a := range appointments {
		if a.ClientID == clientID {
			return "", ErrClientHasAppointments
		}
	}

	clients = append(clients[:idx], clients[idx+1:]...)
	if err := writeCollection(ctx, s.backend, colClients, clients); err != nil {
		return "", err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionDelete, "client", clientID, map[string]any{
		"client_name": name,
	}); err != nil {
		return "", err
	}

	return clientID, nil
}

func (s *Store) CompanyClients(ctx context.Context, companyID string) ([]models.Client, error) {
	clients, err := readCollection[models.Client](ctx, s.backend, colClients)
	if err != nil {
		return nil, err
	}

	out := []models.Client{}
	for _, cli := range clients {
		if cli.CompanyID == companyID {
			out = append(out, cli)
		}
	}
	return out, nil
}

// ClientByID returns (nil, nil) when the id is unknown.
func (s *Store) ClientByID(ctx context.Context, clientID string) (*models.Client, error) {
	clients, err := readCollection[models.Client](ctx, s.backend, colClients)
	if err != nil {
		return nil, err
	}

	for _, cli := range clients {
		if cli.ID == clientID {
			return &cli, nil
		}
	}
	return nil, nil
}
