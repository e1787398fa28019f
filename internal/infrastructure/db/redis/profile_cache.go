package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sitewise/mis-backend/internal/api/metrics"
	"github.com/sitewise/mis-backend/internal/core/domain"
	"github.com/sitewise/mis-backend/internal/core/ports"
)

const defaultProfileTTL = time.Minute

// cachedProfile is the serialized form stored in Redis. The password hash
// is deliberately not part of it; the cache only serves identity/role
// resolution for the auth middleware.
type cachedProfile struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

// ProfileCache resolves token subjects to user records through Redis with a
// MongoDB fallback. Cache failures degrade to a straight repository read, so
// a Redis outage never breaks authentication.
// Key format: profile:<user_id>
type ProfileCache struct {
	client *redis.Client
	users  ports.UserRepository
	ttl    time.Duration
	log    zerolog.Logger
}

func NewProfileCache(client *redis.Client, users ports.UserRepository, ttl time.Duration, log zerolog.Logger) *ProfileCache {
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	return &ProfileCache{client: client, users: users, ttl: ttl, log: log}
}

// Resolve returns the user for the given id, serving from cache when
// possible. A user that no longer exists yields domain.ErrUserNotFound.
func (c *ProfileCache) Resolve(ctx context.Context, userID string) (*domain.User, error) {
	payload, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err == nil {
		var p cachedProfile
		if jsonErr := json.Unmarshal(payload, &p); jsonErr == nil {
			metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
			return &domain.User{ID: p.ID, Username: p.Username, Email: p.Email, Role: p.Role}, nil
		}
	} else if err != redis.Nil {
		c.log.Warn().Err(err).Msg("profile cache read failed, falling back to store")
	}

	metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()

	user, err := c.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, user); err != nil {
		c.log.Warn().Err(err).Str("user_id", userID).Msg("profile cache write failed")
	}
	return user, nil
}

// Invalidate drops the cached profile after an admin mutation.
func (c *ProfileCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *ProfileCache) store(ctx context.Context, user *domain.User) error {
	payload, err := json.Marshal(cachedProfile{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(user.ID), payload, c.ttl).Err()
}

func (c *ProfileCache) key(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}
