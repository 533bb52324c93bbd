package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

const superAdminLogin = "superadmin"

// EnsureSuperAdmin seeds the bootstrap superadmin account. Idempotent — safe
// to call on every process start.
func (s *Store) EnsureSuperAdmin(ctx context.Context, password string) error {
	users, err := readCollection[models.User](ctx, s.backend, colUsers)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Login == superAdminLogin {
			return nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash superadmin password: %w", err)
	}

	users = append(users, models.User{
		ID:           uuid.NewString(),
		Login:        superAdminLogin,
		PasswordHash: string(hash),
		Name:         "Super Admin",
		Role:         models.RoleSuperAdmin,
		CreatedAt:    time.Now().UTC(),
	})

	return writeCollection(ctx, s.backend, colUsers, users)
}

// Authenticate checks login/password against the Users collection only.
// Employee credentials are stored but are not a console login surface.
func (s *Store) Authenticate(ctx context.Context, login, password string) (*models.Session, error) {
	users, err := readCollection[models.User](ctx, s.backend, colUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Login != login {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return &models.Session{
			ID:        u.ID,
			Login:     u.Login,
			Role:      u.Role,
			Name:      u.Name,
			CompanyID: u.CompanyID,
		}, nil
	}

	return nil, ErrInvalidCredentials
}

// UserByID returns the sanitized account, or ErrUserNotFound.
func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := readCollection[models.User](ctx, s.backend, colUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.ID == id {
			u = u.Sanitized()
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// SetCurrentUser persists the currentUser singleton session record.
func (s *Store) SetCurrentUser(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.backend.Set(ctx, keyCurrentUser, raw)
}

// CurrentUser returns the persisted session, or nil when nobody is logged in.
func (s *Store) CurrentUser(ctx context.Context) (*models.Session, error) {
	raw, err := s.backend.Get(ctx, keyCurrentUser)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *Store) ClearCurrentUser(ctx context.Context) error {
	return s.backend.Delete(ctx, keyCurrentUser)
}

// Theme returns the stored UI theme preference, defaulting to "light".
func (s *Store) Theme(ctx context.Context) (string, error) {
	raw, err := s.backend.Get(ctx, keyTheme)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "light", nil
	}

	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil {
		return "", fmt.Errorf("decode theme: %w", err)
	}
	return theme, nil
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	raw, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return s.backend.Set(ctx, keyTheme, raw)
}
