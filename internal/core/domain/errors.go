package domain

import "errors"

// Infrastructure errors - used across all layers. Validation and policy
// outcomes are never reported through these; they travel in IdentityResult.
var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness constraint was violated
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the input is malformed or missing
	ErrInvalidInput = errors.New("invalid input")
)
