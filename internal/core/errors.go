package core

import "errors"

var (
	// ErrInvalidDimension reports a non-positive row or column count.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds reports a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidRate reports a non-positive cycles-per-second value.
	ErrInvalidRate = errors.New("invalid tick rate")
)
