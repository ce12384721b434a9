package event

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopstack/ecommerce-api/internal/api/metrics"
	"github.com/shopstack/ecommerce-api/internal/core/domain"
)

const subscriberBuffer = 256

// Handler consumes a single stock change event.
type Handler func(ctx context.Context, e domain.StockChangedEvent)

type subscriber struct {
	name string
	ch   chan domain.StockChangedEvent
	fn   Handler
}

// Bus is the in-process event channel. Each subscriber gets its own buffered
// channel drained by a dedicated goroutine, so one slow subscriber cannot
// stall the others or the publisher. Publish never blocks: when a buffer is
// full the event is dropped for that subscriber and counted.
type Bus struct {
	subs []*subscriber
	log  zerolog.Logger
}

func NewBus(log zerolog.Logger) *Bus {
	return &Bus{log: log}
}

// Subscribe registers a named handler. Must be called before Start.
func (b *Bus) Subscribe(name string, fn Handler) {
	b.subs = append(b.subs, &subscriber{
		name: name,
		ch:   make(chan domain.StockChangedEvent, subscriberBuffer),
		fn:   fn,
	})
}

// Start launches one worker goroutine per subscriber. Workers stop when ctx
// is cancelled.
func (b *Bus) Start(ctx context.Context) {
	for _, sub := range b.subs {
		go b.runWorker(ctx, sub)
	}
}

// Publish fans the event out to every subscriber, fire-and-forget.
func (b *Bus) Publish(e domain.StockChangedEvent) {
	for _, sub := range b.subs {
		select {
		case sub.ch <- e:
		default:
			metrics.StockEventsDroppedTotal.Inc()
			b.log.Warn().
				Str("subscriber", sub.name).
				Str("product_id", e.ProductID).
				Msg("subscriber buffer full, event dropped")
		}
	}
}

func (b *Bus) runWorker(ctx context.Context, sub *subscriber) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-sub.ch:
			if !ok {
				return
			}
			sub.fn(ctx, e)
		}
	}
}
