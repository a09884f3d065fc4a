// SPDX-License-Identifier: MIT

package stencil

import "github.com/katalvlaran/heatflow/grid"

// Evaluate returns the next value of interior cell (x,y):
//
//	alpha * (g[x,y] + g[x-1,y] + g[x+1,y] + g[x,y-1] + g[x,y+1])
//
// The caller guarantees 1 ≤ x ≤ W-2 and 1 ≤ y ≤ H-2; anything else is a
// contract violation and may read the wrong cell or panic.
// Complexity: O(1).
func Evaluate(g *grid.Grid, x, y int, alpha float64) float64 {
	c := g.Cells
	return alpha * (c[g.Index(x, y)] +
		c[g.Index(x-1, y)] +
		c[g.Index(x+1, y)] +
		c[g.Index(x, y-1)] +
		c[g.Index(x, y+1)])
}

// Selected reports whether interior cell (x,y) belongs to the colour updated
// by a sweep with the given offset: (x+offset) mod 2 == (y-1) mod 2.
func Selected(x, y, offset int) bool {
	return (x+parity(offset))%2 == (y-1)%2
}

// FirstRow returns the first row of column x updated by a sweep with the
// given offset. Later rows follow in steps of 2.
func FirstRow(x, offset int) int {
	return 1 + (x+parity(offset))%2
}

// parity reduces any offset, negative included, to 0 or 1.
func parity(offset int) int {
	return offset & 1
}

// sweepColumns applies the stencil to the selected cells of columns [lo, hi).
// It is the whole sweep when run single-threaded and one worker's share otherwise.
func sweepColumns(g *grid.Grid, lo, hi, offset int, alpha float64) {
	bottom := g.Height - 1
	for x := lo; x < hi; x++ {
		for y := FirstRow(x, offset); y < bottom; y += 2 {
			g.Cells[g.Index(x, y)] = Evaluate(g, x, y, alpha)
		}
	}
}
