// SPDX-License-Identifier: MIT

package convergence

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/heatflow/grid"
)

// DefaultThreshold is the delta below which a run is considered converged.
const DefaultThreshold = 0.001

// minCellsPerWorker keeps tiny grids on the calling goroutine.
const minCellsPerWorker = 4096

// ErrDimensionMismatch indicates the two snapshots differ in shape.
var ErrDimensionMismatch = errors.New("convergence: snapshots differ in shape")

// Converged reports whether delta is strictly below threshold.
func Converged(delta, threshold float64) bool {
	return delta < threshold
}

// Delta computes the mean absolute change between current and previous on
// the calling goroutine.
// Complexity: O(W×H).
func Delta(current, previous *grid.Grid) (float64, error) {
	return NewMonitor(1).Delta(current, previous)
}

// Monitor computes deltas with a fixed number of workers.
type Monitor struct {
	workers  int
	partials []float64
}

// NewMonitor returns a Monitor using up to workers goroutines per reduction.
// Values below 1 are treated as 1.
func NewMonitor(workers int) *Monitor {
	workers = max(1, workers)
	return &Monitor{
		workers:  workers,
		partials: make([]float64, workers),
	}
}

// Workers returns the configured worker count.
func (m *Monitor) Workers() int { return m.workers }

// Delta returns Σ|previous−current| / (W×H).
// Stage 1 (Validate): both grids must share a shape.
// Stage 2 (Fan-out): each worker reduces one contiguous slice into its own slot.
// Stage 3 (Combine): after the barrier, slots are added exactly once.
// A Monitor must not be used by two goroutines at once.
// Complexity: O(W×H) work, O(W×H/workers) span.
func (m *Monitor) Delta(current, previous *grid.Grid) (float64, error) {
	if current == nil || !current.SameShape(previous) {
		return 0, ErrDimensionMismatch
	}
	n := current.Len()
	workers := min(m.workers, max(1, n/minCellsPerWorker))

	if workers == 1 {
		return floats.Distance(previous.Cells, current.Cells, 1) / float64(n), nil
	}

	partials := m.partials[:workers]
	chunk := n / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if w == workers-1 {
			hi = n
		}
		go func(w, lo, hi int) {
			defer wg.Done()
			partials[w] = floats.Distance(previous.Cells[lo:hi], current.Cells[lo:hi], 1)
		}(w, lo, hi)
	}
	wg.Wait()

	return floats.Sum(partials) / float64(n), nil
}
