package gpu

import "errors"

// Errors returned by pipeline and session operations.
var (
	// ErrNoDevice is returned when an operation needs a GPU device
	// and none has been acquired or provided.
	ErrNoDevice = errors.New("harbor: no GPU device")

	// ErrInvalidScreenSize is returned when the globals buffer would
	// be written with a non-positive dimension. The vertex stages
	// divide by the screen size without checking, so the write is the
	// last place this can be caught.
	ErrInvalidScreenSize = errors.New("harbor: screen size must be positive")

	// ErrNoGeometry is returned when a draw is recorded with no
	// vertices or instances.
	ErrNoGeometry = errors.New("harbor: no geometry to render")
)
