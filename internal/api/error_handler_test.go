package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sitewise/mis-backend/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "user already exists with this email"},
		{"username taken", domain.ErrUsernameTaken, http.StatusBadRequest, "user already exists with this username"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "not authorized"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, "inventory item not found"},
		{"activity not found", domain.ErrActivityNotFound, http.StatusNotFound, "activity not found"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "something broke"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := renderError(t, tc.err)
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("find activity"), domain.ErrActivityNotFound)
	rec := renderError(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_ValidationError(t *testing.T) {
	ve := &domain.ValidationError{Fields: []domain.FieldError{
		{Field: "email", Message: "email must be a valid email"},
		{Field: "password", Message: "password is required"},
	}}
	rec := renderError(t, ve)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors []domain.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Errors) != 2 || resp.Errors[0].Field != "email" {
		t.Fatalf("unexpected errors payload: %+v", resp.Errors)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "invalid payload" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}
