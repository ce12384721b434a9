package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopstack/ecommerce-api/internal/api/metrics"
	"github.com/shopstack/ecommerce-api/internal/core/domain"
	"github.com/shopstack/ecommerce-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProductCache abstracts the read cache in front of the product store
// (Redis). A nil-product, nil-error result means cache miss. Cache failures
// are never fatal to the request.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	Set(ctx context.Context, p *domain.Product) error
	Invalidate(ctx context.Context, id string) error
}

// ProductService implements catalog CRUD.
type ProductService struct {
	repo  ports.ProductRepository
	cache ProductCache
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ProductCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log}
}

// List returns one page of the catalog.
func (s *ProductService) List(ctx context.Context, filter ports.ListProductsFilter) (*ports.ListProductsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Get returns a single product, serving from the cache when possible.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("product_id", id).Msg("product cache read failed")
	} else if cached != nil {
		metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, p); err != nil {
		s.log.Warn().Err(err).Str("product_id", id).Msg("product cache write failed")
	}
	return p, nil
}

// Create inserts a new product after checking SKU uniqueness. The unique
// index on sku backs the pre-check against concurrent creations.
func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	taken, err := s.repo.ExistsBySKU(ctx, in.SKU)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if taken {
		return nil, domain.ErrDuplicateSKU
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:          uuid.NewString(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.log.Info().Str("product_id", p.ID).Str("sku", p.SKU).Msg("product created")

	return p, nil
}

// Update replaces the mutable fields of an existing product. The SKU check
// excludes the product itself so an unchanged SKU is not a collision.
func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsBySKUExcluding(ctx, in.SKU, id)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if taken {
		return nil, domain.ErrDuplicateSKU
	}

	p.SKU = in.SKU
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.Category = in.Category
	p.ImageURL = in.ImageURL
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("product_id", id).Msg("product cache invalidation failed")
	}

	return p, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("product_id", id).Msg("product cache invalidation failed")
	}

	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
