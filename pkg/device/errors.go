package device

import "errors"

var (
	// ErrValidation indicates malformed settings, rejected before any
	// backend was touched.
	ErrValidation = errors.New("validation error")

	// ErrUnavailable indicates the vendor software or hardware is absent.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrTimeout indicates an external call exceeded its bound. Treated
	// identically to ErrUnavailable for that one call.
	ErrTimeout = errors.New("operation timed out")

	// ErrNotFound indicates an unknown device key within a backend.
	ErrNotFound = errors.New("device not found")
)
