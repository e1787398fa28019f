package ports

import (
	"context"

	"github.com/sitewise/mis-backend/internal/core/domain"
)

// RegisterInput carries the registration payload after transport-level
// validation (lengths, email shape) has already passed.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService implements registration, login and token issuance.
type AuthService interface {
	// Register persists a new user and returns it with a fresh token.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and returns the user with a fresh token.
	// Unknown email and wrong password both fail with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
