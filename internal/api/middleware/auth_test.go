package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/shopstack/ecommerce-api/internal/core/domain"
	"github.com/shopstack/ecommerce-api/internal/core/service"
)

const testSecret = "test-secret"

func newAuthTestContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	token, err := tokens.Issue("user-1", "alice@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	c, rec, _ := newAuthTestContext(t, "Bearer "+token)

	handler := Auth(tokens)(okHandler)
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if got, _ := c.Get("user_id").(string); got != "user-1" {
		t.Fatalf("expected user_id user-1, got %q", got)
	}
	if got, _ := c.Get("email").(string); got != "alice@example.com" {
		t.Fatalf("expected email claim, got %q", got)
	}
	if got, _ := c.Get("role").(string); got != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %q", domain.RoleAdmin, got)
	}
}

func TestAuth_LowercaseScheme(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	token, err := tokens.Issue("user-1", "alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	c, rec, _ := newAuthTestContext(t, "bearer "+token)

	handler := Auth(tokens)(okHandler)
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_Rejections(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)

	// Well-signed but expired.
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		Email: "alice@example.com",
		Role:  domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	// Valid shape, wrong key.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"forged token", "Bearer " + forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, e := newAuthTestContext(t, tt.header)

			handler := Auth(tokens)(okHandler)
			err := handler(c)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			e.HTTPErrorHandler(err, c)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
