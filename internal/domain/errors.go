package domain

import "errors"

// Every error returned by the core wraps one of these two kinds.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)
