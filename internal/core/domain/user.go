package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials covers both unknown email and wrong password so the
// two cases stay indistinguishable to callers (no account enumeration).
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is the single failure returned by token verification,
// regardless of whether the token was malformed, tampered with, or expired.
var ErrInvalidToken = errors.New("invalid token")

// User models a registered account. PasswordHash never leaves the
// persistence boundary: it is excluded from JSON serialization.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
