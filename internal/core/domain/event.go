package domain

import "time"

// StockChangeReason classifies why a product's stock changed.
type StockChangeReason string

const (
	ReasonOrder     StockChangeReason = "ORDER"
	ReasonReturn    StockChangeReason = "RETURN"
	ReasonInventory StockChangeReason = "INVENTORY"
	ReasonSupplier  StockChangeReason = "SUPPLIER"
)

// Valid reports whether r is one of the known reasons.
func (r StockChangeReason) Valid() bool {
	switch r {
	case ReasonOrder, ReasonReturn, ReasonInventory, ReasonSupplier:
		return true
	}
	return false
}

// StockChangedEvent is emitted exactly once per successful stock mutation,
// after the new value has been persisted.
type StockChangedEvent struct {
	ProductID   string            `json:"productId"`
	SKU         string            `json:"sku"`
	ProductName string            `json:"productName"`
	OldStock    int               `json:"oldStock"`
	NewStock    int               `json:"newStock"`
	Reason      StockChangeReason `json:"reason"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Delta returns the signed stock difference carried by the event.
func (e StockChangedEvent) Delta() int {
	return e.NewStock - e.OldStock
}
