package event

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopstack/ecommerce-api/internal/api/metrics"
	"github.com/shopstack/ecommerce-api/internal/core/domain"
)

// NewAuditLogger returns a handler that records every stock change in the
// structured log, forming the audit trail.
func NewAuditLogger(log zerolog.Logger) Handler {
	return func(_ context.Context, e domain.StockChangedEvent) {
		log.Info().
			Str("product_id", e.ProductID).
			Str("sku", e.SKU).
			Int("old_stock", e.OldStock).
			Int("new_stock", e.NewStock).
			Int("delta", e.Delta()).
			Str("reason", string(e.Reason)).
			Time("at", e.Timestamp).
			Msg("stock changed")
	}
}

// NewMetricsRecorder returns a handler that feeds the stock change counters.
func NewMetricsRecorder() Handler {
	return func(_ context.Context, e domain.StockChangedEvent) {
		metrics.StockChangesTotal.WithLabelValues(string(e.Reason)).Inc()
	}
}

// NewLowStockWarner returns a handler that warns when a product's stock
// drops to or below the given threshold.
func NewLowStockWarner(log zerolog.Logger, threshold int) Handler {
	return func(_ context.Context, e domain.StockChangedEvent) {
		if e.NewStock <= threshold && e.NewStock < e.OldStock {
			log.Warn().
				Str("product_id", e.ProductID).
				Str("sku", e.SKU).
				Int("stock", e.NewStock).
				Int("threshold", threshold).
				Msg("product stock low")
		}
	}
}
