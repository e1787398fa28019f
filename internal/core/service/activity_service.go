package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitewise/mis-backend/internal/api/metrics"
	"github.com/sitewise/mis-backend/internal/core/domain"
	"github.com/sitewise/mis-backend/internal/core/ports"
)

// ActivityService implements project-activity use-cases with ownership
// enforcement on every single-record operation.
type ActivityService struct {
	activities ports.ActivityRepository
	logger     zerolog.Logger
}

func NewActivityService(activities ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{activities: activities, logger: logger}
}

func (s *ActivityService) ListActivities(ctx context.Context, ownerID string) ([]*domain.ProjectActivity, error) {
	return s.activities.FindAllByUser(ctx, ownerID)
}

func (s *ActivityService) GetActivity(ctx context.Context, ownerID, id string) (*domain.ProjectActivity, error) {
	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !activity.OwnedBy(ownerID) {
		return nil, domain.ErrForbidden
	}
	return activity, nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, ownerID string, input ports.CreateActivityInput) (*domain.ProjectActivity, error) {
	status := domain.StatusPending
	if input.Status != "" {
		parsed, err := domain.ParseActivityStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	now := time.Now().UTC()
	activity := &domain.ProjectActivity{
		UserID:       ownerID,
		ActivityName: input.ActivityName,
		Description:  input.Description,
		Status:       status,
		Project:      input.Project,
		Location:     input.Location,
		Date:         now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.activities.Create(ctx, activity)
	if err != nil {
		return nil, err
	}

	metrics.ActivityOpsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("activity_id", created.ID).Str("user_id", ownerID).Msg("activity created")
	return created, nil
}

// UpdateActivity merges the supplied fields into the stored record after the
// ownership check. Absent (nil) fields are left untouched.
func (s *ActivityService) UpdateActivity(ctx context.Context, ownerID, id string, input ports.UpdateActivityInput) (*domain.ProjectActivity, error) {
	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !activity.OwnedBy(ownerID) {
		return nil, domain.ErrForbidden
	}

	if input.ActivityName != nil {
		activity.ActivityName = *input.ActivityName
	}
	if input.Description != nil {
		activity.Description = *input.Description
	}
	if input.Status != nil {
		status, err := domain.ParseActivityStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		activity.Status = status
	}
	if input.Project != nil {
		activity.Project = *input.Project
	}
	if input.Location != nil {
		activity.Location = *input.Location
	}
	activity.UpdatedAt = time.Now().UTC()

	updated, err := s.activities.Update(ctx, activity)
	if err != nil {
		return nil, err
	}

	metrics.ActivityOpsTotal.WithLabelValues("update").Inc()
	return updated, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, ownerID, id string) error {
	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !activity.OwnedBy(ownerID) {
		return domain.ErrForbidden
	}

	if err := s.activities.Delete(ctx, activity.ID); err != nil {
		return err
	}

	metrics.ActivityOpsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("activity_id", id).Str("user_id", ownerID).Msg("activity deleted")
	return nil
}
