// Package simulation drives a heat-diffusion run from allocation to report.
//
// What:
//
//   - Run allocates the current and previous grids, stamps the boundary and
//     iterates checkerboard sweeps until the mean absolute change drops below
//     the threshold or the step budget is spent.
//   - Result reports the iteration count, the last delta, the outcome and the
//     final field; an optional Exporter receives the field once, after the loop.
//
// State machine:
//
//	INIT ──► RUNNING ──► CONVERGED ──► DONE
//	              └────► EXHAUSTED ──► DONE
//
// Step n (starting at 0) snapshots current into previous, sweeps with
// offset n mod 2, then measures delta. A converging step breaks the loop
// before n is incremented, so the reported count is the index of that step.
// With a zero budget no sweep runs and the reported delta is 0.
//
// Concurrency:
//
//	The worker count is resolved once, at INIT, and handed to the scheduler
//	and the monitor. Each sweep and each reduction is a fork-join barrier;
//	the snapshot copy runs on the driver goroutine between them.
//
// Errors:
//
//   - grid.ErrInvalidDimensions: width or height ≤ 0.
//   - grid.ErrAllocation:        the grids could not be allocated.
//   - ErrInvalidSteps:           negative step budget.
//   - ErrExport:                 the Exporter failed; the Result is still returned.
package simulation
