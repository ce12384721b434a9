package handler

import "github.com/shopstack/ecommerce-api/internal/core/domain"

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName"  validate:"required,min=2,max=50"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse carries the issued token and the public user summary. The
// password hash is excluded by the domain.User JSON contract.
type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
