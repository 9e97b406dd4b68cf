package uikit

import "errors"

var (
	// ErrInvalidConfig indicates a Config value that cannot be used.
	ErrInvalidConfig = errors.New("uikit.invalid_config")

	// ErrClosed indicates the Kit was closed.
	ErrClosed = errors.New("uikit.closed")
)
