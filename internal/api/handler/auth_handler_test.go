package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sitewise/mis-backend/internal/api"
	"github.com/sitewise/mis-backend/internal/api/handler"
	"github.com/sitewise/mis-backend/internal/api/middleware"
	"github.com/sitewise/mis-backend/internal/core/domain"
	"github.com/sitewise/mis-backend/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, string, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func doJSON(e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, string, error) {
			if input.Username != "alice123" || input.Role != "userType2" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{
				ID:       "user-1",
				Username: input.Username,
				Email:    input.Email,
				Role:     domain.RoleUserType2,
			}, "token123", nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec, c := doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"alice123","email":"a@x.com","password":"secret1","role":"userType2"}`)

	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice123" || user["role"] != "userType2" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password must never appear in responses")
	}
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	h := handler.NewAuthHandler(stub)

	// Short username, malformed email, short password, missing role.
	rec, c := doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"al","email":"not-an-email","password":"pw"}`)

	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Errors) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %+v", len(resp.Errors), resp.Errors)
	}
	fields := make(map[string]bool)
	for _, fe := range resp.Errors {
		fields[fe.Field] = true
	}
	for _, want := range []string{"username", "email", "password", "role"} {
		if !fields[want] {
			t.Fatalf("missing field error for %q: %+v", want, resp.Errors)
		}
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, string, error) {
			return nil, "", domain.ErrEmailTaken
		},
	}
	h := handler.NewAuthHandler(stub)

	rec, c := doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"bob123","email":"b@x.com","password":"secret1","role":"admin"}`)

	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*domain.User, string, error) {
			if email != "a@x.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "user-1", Username: "alice123", Role: domain.RoleUserType2}, "token456", nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec, c := doJSON(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token456" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	h := handler.NewAuthHandler(stub)

	rec, c := doJSON(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"wrong"}`)

	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid email or password") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

type staticResolver struct {
	user *domain.User
}

func (r *staticResolver) Resolve(_ context.Context, userID string) (*domain.User, error) {
	if r.user != nil && r.user.ID == userID {
		return r.user, nil
	}
	return nil, domain.ErrUserNotFound
}

// Me runs behind Protect; exercise the pair end to end.
func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	h := handler.NewAuthHandler(&stubAuthService{})
	resolver := &staticResolver{user: &domain.User{ID: "user-1", Username: "alice123", Role: domain.RoleAdmin}}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	protected := middleware.Protect("secret", resolver)(h.Me)
	if err := protected(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "user-1" || resp["username"] != "alice123" {
		t.Fatalf("unexpected profile: %+v", resp)
	}
}
