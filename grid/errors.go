// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be > 0")

	// ErrAllocation indicates the cell buffer could not be allocated.
	// It is a resource-exhaustion condition and is fatal for a simulation run.
	ErrAllocation = errors.New("grid: cannot allocate cell buffer")

	// ErrDimensionMismatch indicates two grids of different shape were combined.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)
