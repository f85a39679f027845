package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role restricts what a user may do. Admins manage vehicles; operators
// register fuel loads and services for vehicles they drive.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleOperator
}

// User is an account that can authenticate against the API.
// PasswordHash is a bcrypt hash and is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
