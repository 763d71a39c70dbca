package domain

import "errors"

var (
	// ErrValidation indicates a required field is missing or empty.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateKey indicates an id, name or email is already taken.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound indicates the referenced profile, post or comment does not exist.
	ErrNotFound = errors.New("not found")
)
