package store

import "errors"

var (
	// ErrNotFound is returned when no record with the requested id exists
	// in the caller's collection.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned when a create/update payload is missing
	// required fields or carries malformed values.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when an operation violates a business rule,
	// e.g. deleting the default payment method.
	ErrConflict = errors.New("conflict")
)
