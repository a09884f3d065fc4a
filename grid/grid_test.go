// Package grid_test verifies allocation, indexing and boundary stamping.
package grid_test

import (
	"math"
	"runtime/debug"
	"testing"

	"github.com/katalvlaran/heatflow/grid"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New
//----------------------------------------------------------------------------//

// TestNew_InvalidDimensions ensures New rejects non-positive shapes.
func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 4},
		{"ZeroHeight", 4, 0},
		{"NegativeWidth", -1, 4},
		{"NegativeHeight", 4, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.w, tc.h)
			require.ErrorIs(t, err, grid.ErrInvalidDimensions)
			require.Nil(t, g)
		})
	}
}

// TestNew_Allocation covers the resource-exhaustion path.
func TestNew_Allocation(t *testing.T) {
	_, err := grid.New(10, 10, grid.WithMaxCells(99))
	require.ErrorIs(t, err, grid.ErrAllocation) // one cell over the limit

	g, err := grid.New(10, 10, grid.WithMaxCells(100))
	require.NoError(t, err)
	require.Equal(t, 100, g.Len())

	_, err = grid.New(math.MaxInt/2, 4) // width*height overflows int
	require.ErrorIs(t, err, grid.ErrAllocation)
}

// TestNew_DefaultLimit rejects a shape beyond DefaultMaxCells without
// touching memory, and lets WithMaxCells raise the bound.
func TestNew_DefaultLimit(t *testing.T) {
	_, err := grid.New(1<<15, 1<<14) // 2× DefaultMaxCells
	require.ErrorIs(t, err, grid.ErrAllocation)

	_, err = grid.New(1_000_000, 1_000_000)
	require.ErrorIs(t, err, grid.ErrAllocation)

	require.NoError(t, grid.Reserve(1<<15, 1<<14, 1, grid.WithMaxCells(1<<29)))
}

// TestNew_MemoryLimit lowers the default bound to the soft memory limit.
func TestNew_MemoryLimit(t *testing.T) {
	prev := debug.SetMemoryLimit(64 << 20) // 8 Mi cells
	t.Cleanup(func() { debug.SetMemoryLimit(prev) })

	require.NoError(t, grid.Reserve(2048, 4096, 1))
	require.ErrorIs(t, grid.Reserve(4096, 4096, 1), grid.ErrAllocation)
}

// TestReserve checks that several grids are budgeted together.
func TestReserve(t *testing.T) {
	require.NoError(t, grid.Reserve(10, 10, 2, grid.WithMaxCells(200)))
	require.ErrorIs(t, grid.Reserve(10, 10, 2, grid.WithMaxCells(199)), grid.ErrAllocation)
	require.NoError(t, grid.Reserve(10, 10, 1, grid.WithMaxCells(199)))

	require.ErrorIs(t, grid.Reserve(0, 10, 2), grid.ErrInvalidDimensions)
	require.ErrorIs(t, grid.Reserve(10, 10, 0), grid.ErrInvalidDimensions)
	require.ErrorIs(t, grid.Reserve(math.MaxInt/2, 4, 2), grid.ErrAllocation)
}

// TestWithMaxCells_Panics guards the option constructor.
func TestWithMaxCells_Panics(t *testing.T) {
	require.Panics(t, func() { grid.WithMaxCells(0) })
}

// TestNew_Zeroed checks shape and zero initialisation.
func TestNew_Zeroed(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)
	require.Len(t, g.Cells, 6)
	for _, v := range g.Cells {
		require.Zero(t, v)
	}
}

//----------------------------------------------------------------------------//
// Indexing
//----------------------------------------------------------------------------//

// TestIndexCoordinate verifies the row-major formula and its inverse.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.New(5, 3)
	require.NoError(t, err)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			require.Equal(t, y*5+x, idx)
			cx, cy := g.Coordinate(idx)
			require.Equal(t, x, cx)
			require.Equal(t, y, cy)
		}
	}

	g.Set(4, 2, 1.5)
	require.Equal(t, 1.5, g.Cells[14])
	require.Equal(t, 1.5, g.At(4, 2))
}

// TestInBoundsInterior checks the two coordinate predicates on a 4×3 grid.
func TestInBoundsInterior(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)

	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(3, 2))
	require.False(t, g.InBounds(4, 0))
	require.False(t, g.InBounds(0, -1))

	require.True(t, g.IsInterior(1, 1))
	require.True(t, g.IsInterior(2, 1))
	require.False(t, g.IsInterior(0, 1))
	require.False(t, g.IsInterior(3, 1))
	require.False(t, g.IsInterior(1, 0))
	require.False(t, g.IsInterior(1, 2))
}

//----------------------------------------------------------------------------//
// Snapshots
//----------------------------------------------------------------------------//

// TestCopyFrom verifies full snapshots and shape checking.
func TestCopyFrom(t *testing.T) {
	src, err := grid.New(4, 4)
	require.NoError(t, err)
	src.Initialize()
	src.Set(1, 1, 42)

	dst, err := grid.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, dst.CopyFrom(src))
	require.True(t, dst.Equal(src))

	// mutation of the source must not leak into the snapshot
	src.Set(2, 2, -1)
	require.False(t, dst.Equal(src))

	other, err := grid.New(4, 5)
	require.NoError(t, err)
	require.ErrorIs(t, other.CopyFrom(src), grid.ErrDimensionMismatch)
}

// TestClone ensures Clone is a deep copy.
func TestClone(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	g.Initialize()

	c := g.Clone()
	require.True(t, c.Equal(g))
	c.Set(1, 1, 7)
	require.Zero(t, g.At(1, 1))
}

// TestMinMax checks extremes after boundary initialisation.
func TestMinMax(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	g.Initialize()

	lo, hi := g.MinMax()
	require.Equal(t, grid.EdgeTemperature, lo)
	require.Equal(t, grid.TopTemperature, hi)
}

// TestMinMax_NonFinite ignores NaN and ±Inf cells.
func TestMinMax_NonFinite(t *testing.T) {
	g, err := grid.New(4, 1)
	require.NoError(t, err)
	copy(g.Cells, []float64{math.NaN(), -2, math.Inf(1), 5})

	lo, hi := g.MinMax()
	require.Equal(t, -2.0, lo)
	require.Equal(t, 5.0, hi)

	copy(g.Cells, []float64{math.NaN(), math.Inf(-1), math.Inf(1), math.NaN()})
	lo, hi = g.MinMax()
	require.Zero(t, lo)
	require.Zero(t, hi)
}
