package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitewise/mis-backend/internal/core/domain"
	"github.com/sitewise/mis-backend/internal/core/ports"
)

// UserService implements the admin-only user management operations.
type UserService struct {
	users  ports.UserRepository
	cache  ports.ProfileCache
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, cache ports.ProfileCache, logger zerolog.Logger) *UserService {
	return &UserService{users: users, cache: cache, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateUser merges the supplied fields into the stored record. Absent
// (nil) fields are left untouched.
func (s *UserService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// invalidate drops the cached profile; a cache failure is logged but never
// fails the mutation, the entry expires on its own TTL.
func (s *UserService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("profile cache invalidation failed")
	}
}
