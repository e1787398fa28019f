package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitewise/mis-backend/internal/core/domain"
	"github.com/sitewise/mis-backend/internal/core/ports"
)

type stubProfileCache struct {
	invalidated []string
}

func (c *stubProfileCache) Invalidate(_ context.Context, userID string) error {
	c.invalidated = append(c.invalidated, userID)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username, email, role string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.Role(role),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_UpdateUser_Partial(t *testing.T) {
	repo := newStubUserRepo()
	cache := &stubProfileCache{}
	svc := NewUserService(repo, cache, zerolog.Nop())

	user := seedUser(t, repo, "gina", "g@x.com", "userType1")

	role := "userType2"
	updated, err := svc.UpdateUser(context.Background(), user.ID, ports.UpdateUserInput{Role: &role})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Role != domain.RoleUserType2 {
		t.Fatalf("role not updated: %s", updated.Role)
	}
	if updated.Username != "gina" || updated.Email != "g@x.com" {
		t.Fatalf("absent fields must stay unchanged: %+v", updated)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != user.ID {
		t.Fatalf("expected cache invalidation for %s, got %v", user.ID, cache.invalidated)
	}
}

func TestUserService_UpdateUser_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubProfileCache{}, zerolog.Nop())

	user := seedUser(t, repo, "hank", "h@x.com", "admin")

	role := "root"
	if _, err := svc.UpdateUser(context.Background(), user.ID, ports.UpdateUserInput{Role: &role}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubProfileCache{}, zerolog.Nop())

	name := "nobody"
	if _, err := svc.UpdateUser(context.Background(), "missing", ports.UpdateUserInput{Username: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	cache := &stubProfileCache{}
	svc := NewUserService(repo, cache, zerolog.Nop())

	user := seedUser(t, repo, "iris", "i@x.com", "userType2")

	if err := svc.DeleteUser(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected cache invalidation, got %v", cache.invalidated)
	}

	if err := svc.DeleteUser(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubProfileCache{}, zerolog.Nop())

	seedUser(t, repo, "jane", "j@x.com", "admin")
	seedUser(t, repo, "kate", "k@x.com", "userType1")

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
