package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock indicates a reservation asked for more units than are in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidArgument indicates malformed or out-of-range input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCartNotFound indicates the customer has no shopping cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrEmptyCart indicates checkout was attempted on a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
)
