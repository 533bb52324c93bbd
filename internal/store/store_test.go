package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/storage"
)

func newTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	return New(storage.NewMemory()), context.Background()
}

// newTestCompany seeds a company plus one admin and returns both; most
// operations need an acting user and a company scope.
func newTestCompany(t *testing.T, ctx context.Context, s *Store, name, adminLogin string) (*models.Company, *models.User) {
	t.Helper()

	company, err := s.AddCompany(ctx, CompanyInput{
		Name:    name,
		Address: "1 Main St",
		Phone:   "555-0000",
		Email:   "owner@example.com",
	})
	require.NoError(t, err)

	admin, err := s.AddCompanyAdmin(ctx, company.ID, AdminInput{
		Name:     name + " Admin",
		Login:    adminLogin,
		Password: "pw123456",
	})
	require.NoError(t, err)

	return company, admin
}

func strptr(s string) *string { return &s }
