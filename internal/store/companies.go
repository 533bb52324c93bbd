package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type CompanyInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type AdminInput struct {
	Name     string
	Login    string
	Password string
}

func (s *Store) AddCompany(ctx context.Context, in CompanyInput) (*models.Company, error) {
	companies, err := readCollection[models.Company](ctx, s.backend, colCompanies)
	if err != nil {
		return nil, err
	}

	company := models.Company{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: time.Now().UTC(),
	}

	companies = append(companies, company)
	if err := writeCollection(ctx, s.backend, colCompanies, companies); err != nil {
		return nil, err
	}

	return &company, nil
}

func (s *Store) Companies(ctx context.Context) ([]models.Company, error) {
	return readCollection[models.Company](ctx, s.backend, colCompanies)
}

// CompanyByID returns (nil, nil) when the id is unknown.
func (s *Store) CompanyByID(ctx context.Context, id string) (*models.Company, error) {
	companies, err := readCollection[models.Company](ctx, s.backend, colCompanies)
	if err != nil {
		return nil, err
	}

	for _, c := range companies {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

// AddCompanyAdmin creates an admin account for a company. Login uniqueness is
// checked against Users only (case-sensitive exact match); an employee may
// hold the same login.
func (s *Store) AddCompanyAdmin(ctx context.Context, companyID string, in AdminInput) (*models.User, error) {
	users, err := readCollection[models.User](ctx, s.backend, colUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Login == in.Login {
			return nil, ErrDuplicateLogin
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := models.User{
		ID:           uuid.NewString(),
		Login:        in.Login,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         models.RoleAdmin,
		CompanyID:    companyID,
		CreatedAt:    time.Now().UTC(),
	}

	users = append(users, admin)
	if err := writeCollection(ctx, s.backend, colUsers, users); err != nil {
		return nil, err
	}

	admin = admin.Sanitized()
	return &admin, nil
}

func (s *Store) CompanyAdmins(ctx context.Context, companyID string) ([]models.User, error) {
	users, err := readCollection[models.User](ctx, s.backend, colUsers)
	if err != nil {
		return nil, err
	}

	admins := []models.User{}
	for _, u := range users {
		if u.Role == models.RoleAdmin && u.CompanyID == companyID {
			admins = append(admins, u.Sanitized())
		}
	}
	return admins, nil
}
