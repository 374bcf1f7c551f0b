package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
