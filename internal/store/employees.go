package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type EmployeeInput struct {
	FirstName  string
	LastName   string
	HourlyRate float64
	Login      string
	Password   string
}

// EmployeePatch carries a shallow-merge update: nil fields are left as-is.
type EmployeePatch struct {
	FirstName  *string
	LastName   *string
	HourlyRate *float64
	Login      *string
	Password   *string
}

func (s *Store) AddEmployee(ctx context.Context, companyID, userID string, in EmployeeInput) (*models.Employee, error) {
	employees, err := readCollection[models.Employee](ctx, s.backend, colEmployees)
	if err != nil {
		return nil, err
	}

	for _, e := range employees {
		if e.Login == in.Login {
			return nil, ErrDuplicateLogin
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	employee := models.Employee{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		HourlyRate:   in.HourlyRate,
		Login:        in.Login,
		PasswordHash: string(hash),
		CompanyID:    companyID,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    userID,
	}

	employees = append(employees, employee)
	if err := writeCollection(ctx, s.backend, colEmployees, employees); err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionCreate, "employee", employee.ID, map[string]any{
		"employee_name": employee.FullName(),
	}); err != nil {
		return nil, err
	}

	employee = employee.Sanitized()
	return &employee, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, userID, employeeID string, patch EmployeePatch) (*models.Employee, error) {
	employees, err := readCollection[models.Employee](ctx, s.backend, colEmployees)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range employees {
		if e.ID == employeeID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrEmployeeNotFound
	}

	// Login change re-checks uniqueness against all other employees.
	if patch.Login != nil && *patch.Login != employees[idx].Login {
		for _, e := range employees {
			if e.ID != employeeID && e.Login == *patch.Login {
				return nil, ErrDuplicateLogin
			}
		}
	}

	employee := employees[idx]
	if patch.FirstName != nil {
		employee.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		employee.LastName = *patch.LastName
	}
	if patch.HourlyRate != nil {
		employee.HourlyRate = *patch.HourlyRate
	}
	if patch.Login != nil {
		employee.Login = *patch.Login
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		employee.PasswordHash = string(hash)
	}

	now := time.Now().UTC()
	employee.UpdatedAt = &now
	employee.UpdatedBy = userID

	employees[idx] = employee
	if err := writeCollection(ctx, s.backend, colEmployees, employees); err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionUpdate, "employee", employeeID, map[string]any{
		"employee_name": employee.FullName(),
	}); err != nil {
		return nil, err
	}

	employee = employee.Sanitized()
	return &employee, nil
}

func (s *Store) CompanyEmployees(ctx context.Context, companyID string) ([]models.Employee, error) {
	employees, err := readCollection[models.Employee](ctx, s.backend, colEmployees)
	if err != nil {
		return nil, err
	}

	out := []models.Employee{}
	for _, e := range employees {
		if e.CompanyID == companyID {
			out = append(out, e.Sanitized())
		}
	}
	return out, nil
}
