package ports

import (
	"context"

	"github.com/sitewise/mis-backend/internal/core/domain"
)

// ActivityRepository defines persistence operations for project activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.ProjectActivity) (*domain.ProjectActivity, error)
	FindByID(ctx context.Context, id string) (*domain.ProjectActivity, error)
	// FindAllByUser returns the activities owned by userID, newest first.
	FindAllByUser(ctx context.Context, userID string) ([]*domain.ProjectActivity, error)
	Update(ctx context.Context, activity *domain.ProjectActivity) (*domain.ProjectActivity, error)
	Delete(ctx context.Context, id string) error
}
