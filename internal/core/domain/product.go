package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateSKU = errors.New("product sku already exists")
var ErrInvalidQuantity = errors.New("quantity must not be negative")
var ErrInsufficientStock = errors.New("not enough stock available")

// ErrStockConflict signals a lost-update race on the stock field: the value
// read before the write no longer matches what is stored. Callers retry.
var ErrStockConflict = errors.New("concurrent stock modification")

// Product is the catalog aggregate. SKU is unique across the catalog and
// stock is never negative; both invariants are backed by the store.
type Product struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
