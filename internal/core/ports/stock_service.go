package ports

import (
	"context"

	"github.com/shopstack/ecommerce-api/internal/core/domain"
)

// EventPublisher is the single entry point for emitting domain events.
// Publish is fire-and-forget: delivery is best-effort and never blocks the
// publisher.
type EventPublisher interface {
	Publish(event domain.StockChangedEvent)
}

// StockService applies stock mutations and pairs each successful persist
// with exactly one published StockChangedEvent.
type StockService interface {
	SetStock(ctx context.Context, productID string, newStock int, reason domain.StockChangeReason) (*domain.Product, error)
	Increase(ctx context.Context, productID string, quantity int) (*domain.Product, error)
	Decrease(ctx context.Context, productID string, quantity int) (*domain.Product, error)
}
