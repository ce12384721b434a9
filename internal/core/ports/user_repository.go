package ports

import (
	"context"

	"github.com/shopstack/ecommerce-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. The store enforces
// email uniqueness; Create returns domain.ErrUserExists on violation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
