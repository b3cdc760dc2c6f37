package state

import "errors"

var (
	// ErrNotFound is returned when an operation references an activity ID
	// absent from the registry.
	ErrNotFound = errors.New("activity not found")

	// ErrValidation is returned when caller-supplied activity fields fail
	// boundary constraints (empty name, unknown unit, negative goal).
	ErrValidation = errors.New("invalid activity fields")
)
