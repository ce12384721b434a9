package ports

import (
	"context"

	"github.com/shopstack/ecommerce-api/internal/core/domain"
)

// ListProductsFilter carries pagination parameters for catalog listing.
type ListProductsFilter struct {
	Page  int // 1-based
	Limit int // rows per page, capped by the service
}

// ProductRepository defines persistence operations for catalog products.
// The store enforces SKU uniqueness; Create and Update return
// domain.ErrDuplicateSKU on violation.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	// ExistsBySKUExcluding reports whether another product (different id)
	// already uses the given SKU. Used by update validation.
	ExistsBySKUExcluding(ctx context.Context, sku, id string) (bool, error)
	// List returns a page of products and the total count.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	// UpdateStock sets the stock to newStock only if the stored value still
	// equals oldStock. Returns domain.ErrStockConflict when the guard fails
	// and domain.ErrProductNotFound when the product is gone.
	UpdateStock(ctx context.Context, id string, oldStock, newStock int) error
}
