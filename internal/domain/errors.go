package domain

import "errors"

var (
	// ErrValidation indicates structurally invalid input: empty or blank
	// fields, disallowed characters, malformed card numbers, empty lists.
	// It is always raised before any state mutation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState indicates an order transition attempted from a
	// terminal state.
	ErrInvalidState = errors.New("invalid state transition")
)
