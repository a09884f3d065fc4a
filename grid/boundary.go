// SPDX-License-Identifier: MIT

package grid

// Initialize zeroes every cell and then writes the fixed boundary.
// It must run exactly once, before the first sweep.
// Complexity: O(W×H).
func (g *Grid) Initialize() {
	clear(g.Cells)
	g.WriteBoundary()
}

// WriteBoundary stamps the Dirichlet boundary in a fixed order:
//  1. rows: y=0 gets TopTemperature, y=H-1 gets EdgeTemperature;
//  2. columns: x=0 and x=W-1 get EdgeTemperature.
//
// Because columns are written last, all four corners end at EdgeTemperature.
// When H=1 the bottom-row write lands on the top row and wins.
// Complexity: O(W+H).
func (g *Grid) WriteBoundary() {
	for x := 0; x < g.Width; x++ {
		g.Cells[g.Index(x, 0)] = TopTemperature
		g.Cells[g.Index(x, g.Height-1)] = EdgeTemperature
	}
	for y := 0; y < g.Height; y++ {
		g.Cells[g.Index(0, y)] = EdgeTemperature
		g.Cells[g.Index(g.Width-1, y)] = EdgeTemperature
	}
}
