// Package grid owns the temperature field of a heat-diffusion run: a
// rectangular W×H lattice stored as one flat, row-major []float64.
//
// What:
//
//   - Grid holds Width, Height and Cells, where cell (x,y) lives at y*Width+x.
//   - New allocates a zeroed grid and refuses invalid or oversized shapes.
//   - Reserve checks that several grids of one shape fit the cell limit together.
//   - Initialize stamps the fixed Dirichlet boundary onto a zeroed field.
//   - CopyFrom takes the full snapshot used for convergence measurement.
//
// Boundary layout (written rows first, then columns, so corners end cold):
//
//	y=0     20.00   20.00   20.00   ...   (corners -273.15)
//	x=0   -273.15                         x=W-1 -273.15
//	y=H-1 -273.15 -273.15 -273.15   ...
//
// Complexity:
//
//   - New, Initialize, CopyFrom, Clone: O(W×H) time.
//   - Reserve, Index, Coordinate, At, Set: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//   - ErrAllocation: the buffer cannot be allocated (overflow or cell limit, checked before allocating).
//   - ErrDimensionMismatch: two grids of different shape were combined.
package grid
