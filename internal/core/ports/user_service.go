package ports

import (
	"context"

	"github.com/sitewise/mis-backend/internal/core/domain"
)

// UpdateUserInput is a presence-based partial update: nil leaves the stored
// value unchanged, a non-nil pointer overwrites it.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Role     *string
}

// UserService implements the admin-only user management operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
