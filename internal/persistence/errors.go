package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrConstraintViolation is returned when a record violates a storage
	// constraint, such as a duplicate identifier or a dangling room reference.
	ErrConstraintViolation = errors.New("persistence: constraint violation")
)
