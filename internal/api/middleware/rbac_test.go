package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/ecommerce-api/internal/core/domain"
)

func newRBACTestContext(role string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}
	return c, rec, e
}

func TestRBAC_AllowsPermittedRole(t *testing.T) {
	c, rec, _ := newRBACTestContext(domain.RoleAdmin)

	handler := RBAC(domain.RoleAdmin)(okHandler)
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_ForbidsOtherRoles(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{"user role", domain.RoleUser},
		{"unknown role", "SUPPORT"},
		{"missing role", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, e := newRBACTestContext(tt.role)

			handler := RBAC(domain.RoleAdmin)(okHandler)
			err := handler(c)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			e.HTTPErrorHandler(err, c)
			if rec.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", rec.Code)
			}
		})
	}
}

func TestRBAC_MultipleRoles(t *testing.T) {
	c, rec, _ := newRBACTestContext(domain.RoleUser)

	handler := RBAC(domain.RoleAdmin, domain.RoleUser)(okHandler)
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
