package ports

import (
	"context"

	"github.com/shopstack/ecommerce-api/internal/core/domain"
)

// RegisterInput carries the caller-supplied registration fields. Role is
// deliberately absent: new accounts always start as USER.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService implements registration, login and profile lookup.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, email string) (*domain.User, error)
}
