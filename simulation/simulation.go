package simulation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/heatflow/convergence"
	"github.com/katalvlaran/heatflow/grid"
	"github.com/katalvlaran/heatflow/stencil"
)

// driver carries one run through the state machine.
type driver struct {
	cfg     config
	state   State
	log     *slog.Logger
	workers int

	current, previous *grid.Grid
	sched             *stencil.Scheduler
	monitor           *convergence.Monitor
}

// Run simulates heat diffusion on a width×height grid for at most steps
// iterations. See the package documentation for the loop contract.
//
// On an export failure Run returns both the Result and an error wrapping
// ErrExport. Every other error is returned before the first sweep.
// Complexity: O(steps × W×H) time, O(W×H) memory.
func Run(width, height, steps int, opts ...Option) (*Result, error) {
	if steps < 0 {
		return nil, ErrInvalidSteps
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &driver{cfg: cfg, state: StateInit, log: cfg.logger}
	if err := d.init(width, height); err != nil {
		return nil, err
	}

	return d.run(steps)
}

// transition moves the driver to the next phase and logs the edge.
func (d *driver) transition(to State, attrs ...any) {
	d.log.Debug("state transition", append([]any{"from", d.state, "to", to}, attrs...)...)
	d.state = to
}

// init is the INIT phase: resolve workers, allocate both grids, stamp the boundary.
// Both grids are checked against the cell limit before either is allocated.
func (d *driver) init(width, height int) error {
	d.workers = d.cfg.resolveWorkers()

	if err := grid.Reserve(width, height, 2, d.cfg.gridOpts...); err != nil {
		return fmt.Errorf("simulation: reserve grids: %w", err)
	}
	cur, err := grid.New(width, height, d.cfg.gridOpts...)
	if err != nil {
		return fmt.Errorf("simulation: allocate current grid: %w", err)
	}
	prev, err := grid.New(width, height, d.cfg.gridOpts...)
	if err != nil {
		return fmt.Errorf("simulation: allocate previous grid: %w", err)
	}
	cur.Initialize()
	d.current, d.previous = cur, prev

	d.sched = stencil.NewScheduler(
		stencil.WithWorkers(d.workers),
		stencil.WithPartition(d.cfg.partition),
		stencil.WithAlpha(d.cfg.alpha),
	)
	d.monitor = convergence.NewMonitor(d.workers)

	d.log.Info("simulation initialised",
		"width", width, "height", height,
		"workers", d.workers, "partition", d.cfg.partition,
		"alpha", d.cfg.alpha, "threshold", d.cfg.threshold)

	return nil
}

// run executes RUNNING, the terminal outcome and DONE.
func (d *driver) run(steps int) (*Result, error) {
	d.transition(StateRunning, "budget", steps)
	start := time.Now()

	var history []float64
	delta := 0.0
	outcome := StateExhausted
	n := 0
	for ; n < steps; n++ {
		if err := d.previous.CopyFrom(d.current); err != nil {
			return nil, err
		}
		d.sched.Sweep(d.current, n%2)

		var err error
		if delta, err = d.monitor.Delta(d.current, d.previous); err != nil {
			return nil, err
		}
		if d.cfg.history {
			history = append(history, delta)
		}
		if convergence.Converged(delta, d.cfg.threshold) {
			outcome = StateConverged
			break
		}
	}
	elapsed := time.Since(start)
	d.transition(outcome, "steps", n, "delta", delta)

	res := &Result{
		Width:     d.current.Width,
		Height:    d.current.Height,
		Budget:    steps,
		Steps:     n,
		Delta:     delta,
		Outcome:   outcome,
		Workers:   d.workers,
		Partition: d.cfg.partition,
		Elapsed:   elapsed,
		History:   history,
		Grid:      d.current,
	}
	d.previous = nil
	d.transition(StateDone, "elapsed", elapsed)

	if d.cfg.exporter != nil {
		if err := d.cfg.exporter.Export(res.Grid); err != nil {
			d.log.Error("export failed", "err", err)
			return res, fmt.Errorf("%w: %w", ErrExport, err)
		}
		d.log.Info("grid exported")
	}

	return res, nil
}
