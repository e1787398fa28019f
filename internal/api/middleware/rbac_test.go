package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sitewise/mis-backend/internal/core/domain"
)

func rbacContext(e *echo.Echo, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(userContextKey, user)
	}
	return c, rec
}

func TestRequireRoles_Allowed(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, &domain.User{ID: "u1", Role: domain.RoleAdmin})

	called := false
	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, &domain.User{ID: "u1", Role: domain.RoleUserType1})

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoles_MultipleRoles(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, &domain.User{ID: "u1", Role: domain.RoleUserType2})

	handler := RequireRoles(domain.RoleAdmin, domain.RoleUserType1, domain.RoleUserType2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// RequireRoles without a preceding Protect must reject, not panic.
func TestRequireRoles_NoUser(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, nil)

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
