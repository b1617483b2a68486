package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart indicates a checkout was attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidTransition indicates a checkout action not allowed in the
	// session's current state.
	ErrInvalidTransition = errors.New("invalid checkout transition")
	// ErrInsufficientPayment indicates a cash confirm below the total while
	// the strict cash check is enabled.
	ErrInsufficientPayment = errors.New("insufficient payment")
)
