package handler

import "github.com/shopstack/ecommerce-api/internal/core/domain"

// productRequest is shared by create and update. Price and Stock are
// pointers so that an explicit 0 passes "required" while an absent field
// does not.
type productRequest struct {
	SKU         string   `json:"sku"         validate:"required,min=3,max=50"`
	Name        string   `json:"name"        validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"max=1000"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Stock       *int     `json:"stock"       validate:"required,gte=0"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
}

type setStockRequest struct {
	Stock  *int   `json:"stock"  validate:"required,gte=0"`
	Reason string `json:"reason" validate:"required,oneof=ORDER RETURN INVENTORY SUPPLIER"`
}

// stockQuantityRequest leaves the sign check to the service so a negative
// quantity surfaces as the invalid-quantity error rather than a generic
// validation failure.
type stockQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type listProductsResponse struct {
	Data       []*domain.Product  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
