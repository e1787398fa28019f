package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is the closed set of user roles. Routes are gated against these
// values, so an unknown role is rejected at registration time rather than
// silently stored.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUserType1 Role = "userType1"
	RoleUserType2 Role = "userType2"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUserType1, RoleUserType2:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrUsernameTaken      = errors.New("user already exists with this username")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User models an authenticated actor in the system. The password hash never
// leaves the process: it is excluded from every JSON rendering.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
