package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

func TestAddEmployee(t *testing.T) {
	s, ctx := newTestStore(t)
	company, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	employee, err := s.AddEmployee(ctx, company.ID, admin.ID, EmployeeInput{
		FirstName: "Ann", LastName: "Lee", HourlyRate: 25.5,
		Login: "ann", Password: "pw123456",
	})
	require.NoError(t, err)
	assert.Empty(t, employee.PasswordHash)
	assert.Equal(t, admin.ID, employee.CreatedBy)
	assert.Equal(t, company.ID, employee.CompanyID)

	list, err := s.CompanyEmployees(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].PasswordHash, "listings never include passwords")
}

func TestAddEmployee_DuplicateLogin(t *testing.T) {
	s, ctx := newTestStore(t)
	company, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	_, err := s.AddEmployee(ctx, company.ID, admin.ID, EmployeeInput{
		FirstName: "Ann", LastName: "Lee", HourlyRate: 25,
		Login: "ann", Password: "pw123456",
	})
	require.NoError(t, err)

	_, err = s.AddEmployee(ctx, company.ID, admin.ID, EmployeeInput{
		FirstName: "Another", LastName: "Ann", HourlyRate: 30,
		Login: "ann", Password: "pw123456",
	})
	assert.ErrorIs(t, err, ErrDuplicateLogin)

	employees, err := readCollection[models.Employee](ctx, s.backend, colEmployees)
	require.NoError(t, err)
	assert.Len(t, employees, 1, "collection unchanged after the refusal")
}

// Login uniqueness is per-collection: an admin and an employee may share a
// login; two employees may not.
func TestEmployeeLogin_DoesNotCollideWithAdminLogin(t *testing.T) {
	s, ctx := newTestStore(t)
	company, admin := newTestCompany(t, ctx, s, "Acme", "bob")

	_, err := s.AddEmployee(ctx, company.ID, admin.ID, EmployeeInput{
		FirstName: "Bob", LastName: "Barber", HourlyRate: 20,
		Login: "bob", Password: "pw123456",
	})
	require.NoError(t, err, "admin and employee logins live in separate collections")

	_, err = s.AddEmployee(ctx, company.ID, admin.ID, EmployeeInput{
		FirstName: "Bobby", LastName: "Two", HourlyRate: 20,
		Login: "bob", Password: "pw123456",
	})
	assert.ErrorIs(t, err, ErrDuplicateLogin)
}

func TestUpdateEmployee_ShallowMerge(t *testing.T) {
	s, ctx := newTestStore(t)
	company, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	created, err := s.AddEmployee(ctx, company.ID, admin.ID, EmployeeInput{
		FirstName: "Ann", LastName: "Lee", HourlyRate: 25,
		Login: "ann", Password: "pw123456",
	})
	require.NoError(t, err)

	rate := 32.0
	updated, err := s.UpdateEmployee(ctx, admin.ID, created.ID, EmployeePatch{
		HourlyRate: &rate,
	})
	require.NoError(t, err)

	assert.Equal(t, 32.0, updated.HourlyRate)
	assert.Equal(t, "Ann", updated.FirstName, "omitted fields are left as-is")
	assert.Equal(t, "ann", updated.Login)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, admin.ID, updated.UpdatedBy)
	assert.Empty(t, updated.PasswordHash)
}

func TestUpdateEmployee_LoginCollision(t *testing.T) {
	s, ctx := newTestStore(t)
	company, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	_, err := s.AddEmployee(ctx, company.ID, admin.ID, EmployeeInput{
		FirstName: "Ann", LastName: "Lee", HourlyRate: 25,
		Login: "ann", Password: "pw123456",
	})
	require.NoError(t, err)

	bob, err := s.AddEmployee(ctx, company.ID, admin.ID, EmployeeInput{
		FirstName: "Bob", LastName: "Ray", HourlyRate: 25,
		Login: "bob", Password: "pw123456",
	})
	require.NoError(t, err)

	_, err = s.UpdateEmployee(ctx, admin.ID, bob.ID, EmployeePatch{Login: strptr("ann")})
	assert.ErrorIs(t, err, ErrDuplicateLogin)

	// Re-submitting the current login is not a collision.
	_, err = s.UpdateEmployee(ctx, admin.ID, bob.ID, EmployeePatch{Login: strptr("bob")})
	assert.NoError(t, err)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	s, ctx := newTestStore(t)
	_, admin := newTestCompany(t, ctx, s, "Acme", "acme-admin")

	_, err := s.UpdateEmployee(ctx, admin.ID, "missing", EmployeePatch{Login: strptr("x")})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestCompanyEmployees_ScopedToCompany(t *testing.T) {
	s, ctx := newTestStore(t)
	acme, acmeAdmin := newTestCompany(t, ctx, s, "Acme", "acme-admin")
	globex, globexAdmin := newTestCompany(t, ctx, s, "Globex", "globex-admin")

	_, err := s.AddEmployee(ctx, acme.ID, acmeAdmin.ID, EmployeeInput{
		FirstName: "Ann", LastName: "Lee", HourlyRate: 25, Login: "ann", Password: "pw123456",
	})
	require.NoError(t, err)
	_, err = s.AddEmployee(ctx, globex.ID, globexAdmin.ID, EmployeeInput{
		FirstName: "Gus", LastName: "Orr", HourlyRate: 25, Login: "gus", Password: "pw123456",
	})
	require.NoError(t, err)

	list, err := s.CompanyEmployees(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, acme.ID, list[0].CompanyID)
}
