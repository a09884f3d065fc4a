// SPDX-License-Identifier: MIT

package grid

import (
	"math"
	"runtime/debug"
)

// Fixed boundary and initial temperatures.
const (
	// TopTemperature is stamped onto row y=0 (except its corners).
	TopTemperature = 20.0
	// EdgeTemperature is stamped onto the bottom row and both side columns.
	EdgeTemperature = -273.15
	// InteriorTemperature is the starting value of every interior cell.
	InteriorTemperature = 0.0
)

// CellBytes is the storage size of one cell.
const CellBytes = 8

// DefaultMaxCells bounds the cells New and Reserve accept without
// WithMaxCells: 1<<28 cells, 2 GiB of float64. A soft memory limit
// (GOMEMLIMIT or debug.SetMemoryLimit) below that lowers the bound to
// limit/CellBytes.
const DefaultMaxCells = 1 << 28

const panicMaxCellsInvalid = "grid: WithMaxCells: limit must be > 0"

// Grid is a W×H temperature field stored row-major in Cells.
// Cells has length Width*Height; cell (x,y) is Cells[y*Width+x].
type Grid struct {
	Width, Height int
	Cells         []float64
}

// Option configures New.
type Option func(*options)

type options struct {
	maxCells int
}

func defaultOptions() options {
	limit := int64(DefaultMaxCells)
	if mem := debug.SetMemoryLimit(-1); mem < math.MaxInt64 {
		limit = min(limit, mem/CellBytes)
	}

	return options{maxCells: int(max(1, limit))}
}

// WithMaxCells replaces the default cell limit, up or down. Requests above
// it fail with ErrAllocation. Panics if limit ≤ 0.
func WithMaxCells(limit int) Option {
	if limit <= 0 {
		panic(panicMaxCellsInvalid)
	}
	return func(o *options) {
		o.maxCells = limit
	}
}
