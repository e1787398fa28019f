package ports

import (
	"context"

	"github.com/sitewise/mis-backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
//
// Create relies on unique indexes over email and username: a duplicate
// insert must surface as domain.ErrEmailTaken or domain.ErrUsernameTaken,
// never as a pre-check race.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// ProfileCache invalidates cached user profiles after admin mutations so a
// deleted or re-roled user does not stay authorized for a full cache TTL.
type ProfileCache interface {
	Invalidate(ctx context.Context, userID string) error
}
