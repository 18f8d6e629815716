package engine

import "errors"

var (
	// ErrConflict indicates a check found at least one conflict.
	ErrConflict = errors.New("conflict detected")

	// ErrValidation indicates malformed input rejected before evaluation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a stored report was not found.
	ErrNotFound = errors.New("not found")
)
