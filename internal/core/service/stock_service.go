package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopstack/ecommerce-api/internal/core/domain"
	"github.com/shopstack/ecommerce-api/internal/core/ports"
)

// stockRetries bounds the optimistic-concurrency retry loop. Two concurrent
// mutations on the same product serialize through the conditional update in
// the store; the loser re-reads and tries again.
const stockRetries = 3

// StockService applies stock mutations. Each successful persist is followed
// by exactly one published StockChangedEvent; a failed persist publishes
// nothing, and a failed publish never rolls the mutation back.
type StockService struct {
	repo  ports.ProductRepository
	cache ProductCache
	bus   ports.EventPublisher
	log   zerolog.Logger
}

func NewStockService(repo ports.ProductRepository, cache ProductCache, bus ports.EventPublisher, log zerolog.Logger) *StockService {
	return &StockService{repo: repo, cache: cache, bus: bus, log: log}
}

// SetStock sets the product's stock to an absolute value.
func (s *StockService) SetStock(ctx context.Context, productID string, newStock int, reason domain.StockChangeReason) (*domain.Product, error) {
	if newStock < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.mutate(ctx, productID, reason, func(int) (int, error) {
		return newStock, nil
	})
}

// Increase adds quantity to the current stock.
func (s *StockService) Increase(ctx context.Context, productID string, quantity int) (*domain.Product, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.mutate(ctx, productID, domain.ReasonInventory, func(current int) (int, error) {
		return current + quantity, nil
	})
}

// Decrease subtracts quantity from the current stock, failing when the
// product does not hold enough.
func (s *StockService) Decrease(ctx context.Context, productID string, quantity int) (*domain.Product, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.mutate(ctx, productID, domain.ReasonInventory, func(current int) (int, error) {
		if current < quantity {
			return 0, domain.ErrInsufficientStock
		}
		return current - quantity, nil
	})
}

// mutate runs the read-compute-write cycle. The compute callback sees the
// freshly read stock on every attempt, so relative changes survive the
// retry after a concurrent writer wins the first round.
func (s *StockService) mutate(ctx context.Context, productID string, reason domain.StockChangeReason, compute func(current int) (int, error)) (*domain.Product, error) {
	for attempt := 0; attempt < stockRetries; attempt++ {
		p, err := s.repo.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}

		newStock, err := compute(p.Stock)
		if err != nil {
			return nil, err
		}

		if err := s.repo.UpdateStock(ctx, productID, p.Stock, newStock); err != nil {
			if errors.Is(err, domain.ErrStockConflict) {
				continue
			}
			return nil, fmt.Errorf("set stock: %w", err)
		}

		oldStock := p.Stock
		p.Stock = newStock
		p.UpdatedAt = time.Now().UTC()

		if err := s.cache.Invalidate(ctx, productID); err != nil {
			s.log.Warn().Err(err).Str("product_id", productID).Msg("product cache invalidation failed")
		}

		// Publish only after the write committed. Delivery is best-effort:
		// the stock change is durable regardless of what happens here.
		s.bus.Publish(domain.StockChangedEvent{
			ProductID:   p.ID,
			SKU:         p.SKU,
			ProductName: p.Name,
			OldStock:    oldStock,
			NewStock:    newStock,
			Reason:      reason,
			Timestamp:   time.Now().UTC(),
		})

		s.log.Info().
			Str("product_id", p.ID).
			Int("old_stock", oldStock).
			Int("new_stock", newStock).
			Str("reason", string(reason)).
			Msg("stock updated")

		return p, nil
	}

	return nil, domain.ErrStockConflict
}
