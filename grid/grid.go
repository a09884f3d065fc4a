// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// New allocates a width×height grid with every cell set to 0.0.
// Stage 1 (Validate): width and height must be positive.
// Stage 2 (Budget): width*height must not overflow nor exceed the cell limit.
// Stage 3 (Allocate): one zeroed []float64 of width*height cells.
// The runtime cannot report an out-of-memory condition as an error, so the
// cell limit is the only guard; see DefaultMaxCells.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if err := Reserve(width, height, 1, opts...); err != nil {
		return nil, err
	}
	cells := make([]float64, width*height)

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// Reserve checks, without allocating, that count grids of width×height fit
// the cell limit together. Callers that need several buffers of the same
// shape call it once before the first New.
// Complexity: O(1).
func Reserve(width, height, count int, opts ...Option) error {
	if width <= 0 || height <= 0 || count <= 0 {
		return ErrInvalidDimensions
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if height > o.maxCells/width || width*height > o.maxCells/count {
		return fmt.Errorf("%w: %d×%d cells ×%d exceeds limit %d",
			ErrAllocation, width, height, count, o.maxCells)
	}

	return nil
}

// Len returns the number of cells, Width*Height.
func (g *Grid) Len() int {
	return len(g.Cells)
}

// Index maps (x,y) to its row-major offset y*Width + x.
// Every access to Cells goes through this formula.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major offset back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At returns the temperature at (x,y). It does not bounds-check beyond the
// slice itself; use InBounds when the coordinate is untrusted.
func (g *Grid) At(x, y int) float64 {
	return g.Cells[g.Index(x, y)]
}

// Set stores v at (x,y). Same bounds contract as At.
func (g *Grid) Set(x, y int, v float64) {
	g.Cells[g.Index(x, y)] = v
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsInterior reports whether (x,y) is a mutable cell, i.e. not on the boundary.
func (g *Grid) IsInterior(x, y int) bool {
	return x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1
}

// SameShape reports whether g and other have identical dimensions.
func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && g.Width == other.Width && g.Height == other.Height
}

// CopyFrom overwrites every cell of g with the matching cell of src.
// Returns ErrDimensionMismatch if the shapes differ.
// Complexity: O(W×H).
func (g *Grid) CopyFrom(src *Grid) error {
	if !g.SameShape(src) {
		return ErrDimensionMismatch
	}
	copy(g.Cells, src.Cells)

	return nil
}

// Clone returns a deep copy of g.
// Complexity: O(W×H) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([]float64, len(g.Cells))
	copy(cells, g.Cells)

	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Equal reports whether g and other have the same shape and bit-identical cells.
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameShape(other) {
		return false
	}
	for i, v := range g.Cells {
		if math.Float64bits(v) != math.Float64bits(other.Cells[i]) {
			return false
		}
	}

	return true
}

// MinMax returns the smallest and largest finite temperature in the grid.
// NaN and ±Inf cells are skipped; a grid without finite cells yields (0, 0).
// Complexity: O(W×H).
func (g *Grid) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Cells {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}

	return lo, hi
}
