package simulation

import (
	"io"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/heatflow/convergence"
	"github.com/katalvlaran/heatflow/grid"
	"github.com/katalvlaran/heatflow/stencil"
)

const (
	panicWorkersInvalid   = "simulation: WithWorkers: workers must be > 0"
	panicThresholdInvalid = "simulation: WithThreshold: threshold must be finite and >= 0"
	panicAlphaInvalid     = "simulation: WithAlpha: alpha must be finite"
	panicPartitionInvalid = "simulation: WithPartition: unknown partition policy"
)

// Option configures Run.
type Option func(*config)

type config struct {
	workers   int // 0 ⇒ resolve from GOMAXPROCS at INIT
	partition stencil.Partition
	alpha     float64
	threshold float64
	gridOpts  []grid.Option
	history   bool
	logger    *slog.Logger
	exporter  Exporter
}

func defaultConfig() config {
	return config{
		partition: stencil.PartitionBlocks,
		alpha:     stencil.DefaultAlpha,
		threshold: convergence.DefaultThreshold,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// resolveWorkers fixes the worker count for the whole run.
func (c *config) resolveWorkers() int {
	if c.workers > 0 {
		return c.workers
	}
	return max(1, runtime.GOMAXPROCS(0))
}

// WithWorkers fixes the number of workers. Default: GOMAXPROCS at INIT.
// Panics if n ≤ 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}
	return func(c *config) { c.workers = n }
}

// WithPartition selects the sweep column partitioning policy.
// Panics on a value that is neither stencil.PartitionBlocks nor stencil.PartitionDynamic.
func WithPartition(p stencil.Partition) Option {
	if p != stencil.PartitionBlocks && p != stencil.PartitionDynamic {
		panic(panicPartitionInvalid)
	}
	return func(c *config) { c.partition = p }
}

// WithAlpha overrides the stencil weight (default stencil.DefaultAlpha).
// Panics on NaN or ±Inf.
func WithAlpha(alpha float64) Option {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		panic(panicAlphaInvalid)
	}
	return func(c *config) { c.alpha = alpha }
}

// WithThreshold overrides the convergence threshold
// (default convergence.DefaultThreshold). Panics on NaN, ±Inf or negatives.
func WithThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		panic(panicThresholdInvalid)
	}
	return func(c *config) { c.threshold = threshold }
}

// WithMaxCells replaces grid.DefaultMaxCells. The limit applies to the
// current and previous grids together; larger runs fail with grid.ErrAllocation.
func WithMaxCells(limit int) Option {
	opt := grid.WithMaxCells(limit)
	return func(c *config) { c.gridOpts = append(c.gridOpts, opt) }
}

// WithHistory records the delta of every executed step in Result.History.
func WithHistory() Option {
	return func(c *config) { c.history = true }
}

// WithLogger sets the structured logger. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithExporter hands the final grid to e once the run is DONE.
func WithExporter(e Exporter) Option {
	return func(c *config) { c.exporter = e }
}
