// Package heatflow simulates steady-state heat diffusion on a rectangular
// plate with fixed edge temperatures.
//
// What is heatflow?
//
//	An explicit finite-difference relaxation that repeats red/black
//	(checkerboard) sweeps until the field stops moving or a step budget
//	runs out. Sweeps run on all cores without locks: one colour is updated
//	while the other is only read.
//
// Under the hood, everything is organised in small subpackages:
//
//	grid/         flat row-major temperature field, Dirichlet boundary
//	stencil/      five-point evaluator, checkerboard scheduler, column partitioning
//	convergence/  mean absolute change between snapshots, per-worker partial sums
//	simulation/   INIT → RUNNING → CONVERGED|EXHAUSTED → DONE driver
//	export/       BMP/PNG heat map, convergence chart, YAML run report
//	cmd/heatsim   command-line front end
//
// Quick ASCII picture of a 6×5 plate after initialisation:
//
//	-273  20  20  20  20 -273
//	-273   0   0   0   0 -273
//	-273   0   0   0   0 -273
//	-273   0   0   0   0 -273
//	-273 -273 -273 -273 -273 -273
//
// Command line:
//
//	heatsim <width> <height> <steps> [output-file]
//
//	$ heatsim 4 4 1
//	After 1 iterations, delta was 9.993125
package heatflow
