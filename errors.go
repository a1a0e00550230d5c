package cubik

import "errors"

// Sentinel errors for the cubik package.
var (
	// Move validation errors
	ErrInvalidMove     = errors.New("cubik: invalid move")
	ErrInvalidNotation = errors.New("cubik: invalid move notation")

	// Engine errors
	ErrBusy    = errors.New("cubik: engine busy")
	ErrBadSize = errors.New("cubik: cube size must be at least 2")

	// Serialization errors
	ErrBadSnapshot = errors.New("cubik: malformed snapshot")
)
