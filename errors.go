package rawpaint

import "errors"

// Errors returned by canvas I/O.
var (
	// ErrEmptyCanvas is returned when an operation needs at least one sample.
	ErrEmptyCanvas = errors.New("rawpaint: empty canvas")
)
