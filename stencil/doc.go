// Package stencil implements the five-point relaxation step and the red/black
// (checkerboard) scheduler that applies it in parallel without locks.
//
// What:
//
//   - Evaluate computes alpha·(c + left + right + up + down) for one interior cell.
//     The cell itself participates with the same weight as its neighbours; with
//     alpha = 0.2 this is the plain mean of the five-point stencil.
//   - Scheduler.Sweep updates, in place, exactly one colour of the interior:
//     cells with (x+offset) mod 2 == (y-1) mod 2. Calling it with offset 0 and
//     then 1 touches every interior cell exactly once.
//
// Why no locks:
//
//	Every neighbour of a cell of one colour has the other colour, which the
//	current sweep never writes. Workers own disjoint column ranges, so the
//	only cells a worker reads outside its range are cells nobody writes.
//
//	  x:  1 2 3 4          offset = 0
//	y=1   . R . R          R = updated this sweep
//	y=2   R . R .          . = read-only this sweep
//	y=3   . R . R
//
// Partitioning:
//
//   - PartitionBlocks (default): worker t owns columns [1+t·b, 1+(t+1)·b) with
//     b = (W-2)/workers; the last worker absorbs the remainder.
//   - PartitionDynamic: small column chunks are fed to a bounded pool so faster
//     workers pick up more chunks.
//
// Both are fork-join: Sweep returns only once every worker has finished.
//
// Complexity:
//
//   - Evaluate: O(1).
//   - Sweep:    O(W×H/2) work, O(W×H/(2·workers)) span.
package stencil
