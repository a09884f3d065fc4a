package simulation

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/heatflow/grid"
	"github.com/katalvlaran/heatflow/stencil"
)

var (
	// ErrInvalidSteps indicates a negative step budget.
	ErrInvalidSteps = errors.New("simulation: steps must be >= 0")

	// ErrExport indicates the Exporter failed after the run completed.
	ErrExport = errors.New("simulation: export failed")
)

// State is a phase of the driver state machine.
type State uint8

// Driver phases, in the order a run visits them.
const (
	StateInit State = iota
	StateRunning
	StateConverged
	StateExhausted
	StateDone
)

// String returns the upper-case phase name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateRunning:
		return "RUNNING"
	case StateConverged:
		return "CONVERGED"
	case StateExhausted:
		return "EXHAUSTED"
	case StateDone:
		return "DONE"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Exporter receives the final grid once the run is DONE.
type Exporter interface {
	Export(g *grid.Grid) error
}

// ExporterFunc adapts a plain function to Exporter.
type ExporterFunc func(g *grid.Grid) error

// Export calls f(g).
func (f ExporterFunc) Export(g *grid.Grid) error { return f(g) }

// Result summarises a finished run.
type Result struct {
	Width, Height int
	// Budget is the requested step limit.
	Budget int
	// Steps is the reported iteration count (see package doc for the off-by-one rule).
	Steps int
	// Delta is the last measured mean absolute change, 0 if no step ran.
	Delta float64
	// Outcome is StateConverged or StateExhausted.
	Outcome   State
	Workers   int
	Partition stencil.Partition
	Elapsed   time.Duration
	// History holds the delta of every executed step when WithHistory is set.
	History []float64
	// Grid is the final temperature field.
	Grid *grid.Grid
}

// Converged reports whether the run stopped on the threshold.
func (r *Result) Converged() bool {
	return r.Outcome == StateConverged
}
