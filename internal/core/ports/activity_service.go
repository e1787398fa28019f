package ports

import (
	"context"

	"github.com/sitewise/mis-backend/internal/core/domain"
)

// CreateActivityInput carries the payload for a new project activity.
// The owner is always the authenticated caller, never part of the payload.
type CreateActivityInput struct {
	ActivityName string
	Description  string
	Status       string
	Project      string
	Location     string
}

// UpdateActivityInput is a presence-based partial update; nil fields are
// left unchanged.
type UpdateActivityInput struct {
	ActivityName *string
	Description  *string
	Status       *string
	Project      *string
	Location     *string
}

// ActivityService implements project-activity use-cases. Every operation on
// a single activity enforces ownership: a caller who is not the owner gets
// domain.ErrForbidden even when the activity exists.
type ActivityService interface {
	ListActivities(ctx context.Context, ownerID string) ([]*domain.ProjectActivity, error)
	GetActivity(ctx context.Context, ownerID, id string) (*domain.ProjectActivity, error)
	CreateActivity(ctx context.Context, ownerID string, input CreateActivityInput) (*domain.ProjectActivity, error)
	UpdateActivity(ctx context.Context, ownerID, id string, input UpdateActivityInput) (*domain.ProjectActivity, error)
	DeleteActivity(ctx context.Context, ownerID, id string) error
}
