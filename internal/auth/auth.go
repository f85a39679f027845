// Package auth provides password hashing and JWT issuing/verification for the
// Control Car API. It knows nothing about HTTP or storage — the middleware and
// user service compose it.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/controlcar/backend/internal/domain"
)

var (
	// ErrInvalidToken is returned when a token fails signature or claim checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrInvalidCredentials is returned on a failed login. The same error is
	// used for unknown email and wrong password so callers cannot probe for
	// registered addresses.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Claims is the verified identity carried by a valid token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   domain.Role
}

// Service signs and verifies HS256 tokens and hashes passwords with bcrypt.
type Service struct {
	secret   []byte
	tokenExp time.Duration
}

// NewService constructs an auth Service. secret must be non-empty; tokenExp
// is how long issued tokens stay valid.
func NewService(secret string, tokenExp time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("auth.NewService: secret must not be empty")
	}
	return &Service{secret: []byte(secret), tokenExp: tokenExp}, nil
}

// HashPassword hashes a password using bcrypt at the default cost.
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth.Service.HashPassword: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func (s *Service) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken issues a signed JWT for the user.
func (s *Service) GenerateToken(u domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"role":  string(u.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenExp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Service.GenerateToken: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies a token (with or without a "Bearer " prefix) and
// returns its claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
func (s *Service) ValidateToken(tokenString string) (Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}
	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return Claims{UserID: userID, Email: email, Role: domain.Role(role)}, nil
}
