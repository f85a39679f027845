package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/controlcar/backend/internal/auth"
	"github.com/controlcar/backend/internal/domain"
	"github.com/controlcar/backend/internal/repo"
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 8

// UserService implements registration and login.
type UserService struct {
	users repo.UserRepo
	auth  *auth.Service
}

// NewUserService constructs a UserService backed by the provided repo and
// auth service.
func NewUserService(users repo.UserRepo, a *auth.Service) *UserService {
	return &UserService{users: users, auth: a}
}

// Register validates the input, hashes the password, and persists the user.
// An empty role defaults to operator.
// Returns domain.ErrValidation for invalid input and repo.ErrDuplicateEmail
// when the email is taken.
func (s *UserService) Register(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return domain.User{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}
	if role == "" {
		role = domain.RoleOperator
	}
	if !role.Valid() {
		return domain.User{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}

	created, err := s.users.Create(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}
	return created, nil
}

// Login verifies the credentials and returns a signed token plus the user.
// Unknown email and wrong password both return auth.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.User{}, auth.ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("service.UserService.Login: %w", err)
	}

	if !s.auth.CheckPassword(password, user.PasswordHash) {
		return "", domain.User{}, auth.ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("service.UserService.Login: %w", err)
	}
	return token, user, nil
}
