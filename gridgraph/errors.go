package gridgraph

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive grid width or height.
	ErrInvalidDimension = errors.New("gridgraph: width and height must be positive")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrNoPath indicates no clearance path exists between two points.
	ErrNoPath = errors.New("gridgraph: no path between points")
)
