package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/ecommerce-api/internal/core/domain"
	"github.com/shopstack/ecommerce-api/internal/core/ports"
)

// stubAuthService scripts the responses of ports.AuthService.
type stubAuthService struct {
	token string
	user  *domain.User
	err   error

	lastRegister ports.RegisterInput
	lastEmail    string
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	s.lastRegister = in
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	s.lastEmail = email
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) GetUser(_ context.Context, email string) (*domain.User, error) {
	s.lastEmail = email
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func newHandlerTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != code {
		t.Fatalf("expected status %d, got %d", code, httpErr.Code)
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{
		token: "jwt-token",
		user:  &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"s3cret","firstName":"Alice","lastName":"Smith"}`
	c, rec := newHandlerTestContext(http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "jwt-token" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
	if resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("expected user in response, got %+v", resp.User)
	}

	if svc.lastRegister.Email != "alice@example.com" || svc.lastRegister.FirstName != "Alice" {
		t.Fatalf("unexpected input passed to service: %+v", svc.lastRegister)
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid email", `{"email":"not-an-email","password":"s3cret","firstName":"Alice","lastName":"Smith"}`},
		{"short password", `{"email":"alice@example.com","password":"abc","firstName":"Alice","lastName":"Smith"}`},
		{"missing first name", `{"email":"alice@example.com","password":"s3cret","lastName":"Smith"}`},
		{"short last name", `{"email":"alice@example.com","password":"s3cret","firstName":"Alice","lastName":"S"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{})
			c, _ := newHandlerTestContext(http.MethodPost, "/api/auth/register", tt.body)

			assertHTTPError(t, h.Register(c), http.StatusBadRequest)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserExists})

	body := `{"email":"alice@example.com","password":"s3cret","firstName":"Alice","lastName":"Smith"}`
	c, _ := newHandlerTestContext(http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to pass through, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		token: "jwt-token",
		user:  &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"s3cret"}`
	c, rec := newHandlerTestContext(http.MethodPost, "/api/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastEmail != "alice@example.com" {
		t.Fatalf("unexpected email passed to service: %q", svc.lastEmail)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	body := `{"email":"alice@example.com","password":"wrong"}`
	c, _ := newHandlerTestContext(http.MethodPost, "/api/auth/login", body)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to pass through, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newHandlerTestContext(http.MethodPost, "/api/auth/login", `{"email":"alice@example.com"}`)

	assertHTTPError(t, h.Login(c), http.StatusBadRequest)
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{ID: "u1", Email: "alice@example.com", FirstName: "Alice"}}
	h := NewAuthHandler(svc)

	c, rec := newHandlerTestContext(http.MethodGet, "/api/auth/me", "")
	c.Set("email", "alice@example.com")
	c.Set("role", domain.RoleUser)

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastEmail != "alice@example.com" {
		t.Fatalf("unexpected email passed to service: %q", svc.lastEmail)
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("response leaks password hash: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newHandlerTestContext(http.MethodGet, "/api/auth/me", "")

	assertHTTPError(t, h.Me(c), http.StatusUnauthorized)
}
