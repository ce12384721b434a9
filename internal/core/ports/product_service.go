package ports

import (
	"context"

	"github.com/shopstack/ecommerce-api/internal/core/domain"
)

// ProductInput carries the fields for creating or updating a product.
type ProductInput struct {
	SKU         string
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	ImageURL    string
}

// ListProductsResult is returned by List.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines catalog CRUD use cases.
type ProductService interface {
	List(ctx context.Context, filter ListProductsFilter) (*ListProductsResult, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
