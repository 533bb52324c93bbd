package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCRUD(t *testing.T) {
	s, ctx := newTestStore(t)
	company, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	client, err := s.AddClient(ctx, company.ID, admin.ID, ClientInput{
		FullName: "Jane Doe", Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, company.ID, client.CompanyID)

	updated, err := s.UpdateClient(ctx, admin.ID, client.ID, ClientPatch{
		Phone: strptr("555-0199"),
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Jane Doe", updated.FullName, "omitted fields survive")

	got, err := s.ClientByID(ctx, client.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "555-0199", got.Phone)

	missing, err := s.ClientByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateClient_NotFound(t *testing.T) {
	s, ctx := newTestStore(t)
	_, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	_, err := s.UpdateClient(ctx, admin.ID, "missing", ClientPatch{Phone: strptr("1")})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClient_WithoutAppointments(t *testing.T) {
	s, ctx := newTestStore(t)
	company, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	client, err := s.AddClient(ctx, company.ID, admin.ID, ClientInput{FullName: "Jane Doe"})
	require.NoError(t, err)

	id, err := s.DeleteClient(ctx, admin.ID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, id)

	clients, err := s.CompanyClients(ctx, company.ID)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestDeleteClient_BlockedByAppointments(t *testing.T) {
	s, ctx := newTestStore(t)
	company, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	client, err := s.AddClient(ctx, company.ID, admin.ID, ClientInput{FullName: "Jane Doe"})
	require.NoError(t, err)

	_, err = s.AddAppointment(ctx, company.ID, admin.ID, AppointmentInput{
		Date: "2025-01-10", Time: "09:00", ClientID: client.ID,
	})
	require.NoError(t, err)

	_, err = s.DeleteClient(ctx, admin.ID, client.ID)
	assert.ErrorIs(t, err, ErrClientHasAppointments)

	// The client is still there.
	clients, err := s.CompanyClients(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, client.ID, clients[0].ID)
}

func TestDeleteClient_NotFound(t *testing.T) {
	s, ctx := newTestStore(t)
	_, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	_, err := s.DeleteClient(ctx, admin.ID, "missing")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCompanyClients_ScopedToCompany(t *testing.T) {
	s, ctx := newTestStore(t)
	acme, acmeAdmin := newTestCompany(t, ctx, s, "Acme", "acme-admin")
	globex, globexAdmin := newTestCompany(t, ctx, s, "Globex", "globex-admin")

	_, err := s.AddClient(ctx, acme.ID, acmeAdmin.ID, ClientInput{FullName: "Jane Doe"})
	require.NoError(t, err)
	_, err = s.AddClient(ctx, globex.ID, globexAdmin.ID, ClientInput{FullName: "Hank Scorpio"})
	require.NoError(t, err)

	clients, err := s.CompanyClients(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Jane Doe", clients[0].FullName)
}
