// Package convergence measures how far a relaxation sweep moved the field.
//
// The delta between two snapshots is the mean absolute change over the whole
// grid, boundaries included:
//
//	delta = Σ |previous[i] − current[i]| / (W×H)
//
// Boundary cells and cells of the colour not touched by the last sweep
// contribute zero; the sum is still divided by all W×H cells, not by the
// number of cells the sweep updated.
//
// Monitor splits the flat buffer into contiguous per-worker ranges. Each
// worker writes its partial L1 distance into its own slot; the slots are
// summed once, after every worker returned. Floating-point addition is not
// associative, so results may differ from the serial sum in the last bits.
package convergence
