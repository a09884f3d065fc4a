// SPDX-License-Identifier: MIT

package stencil

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heatflow/grid"
)

// chunksPerWorker controls the granularity of PartitionDynamic.
const chunksPerWorker = 4

// Scheduler applies checkerboard sweeps with a fixed worker count.
// The worker count is resolved once by the caller; Sweep never consults
// the runtime. A Scheduler holds no per-sweep state and may be reused.
type Scheduler struct {
	workers   int
	partition Partition
	alpha     float64
}

// NewScheduler builds a Scheduler. Defaults: one worker, PartitionBlocks,
// DefaultAlpha.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		workers:   1,
		partition: PartitionBlocks,
		alpha:     DefaultAlpha,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Workers returns the configured worker count.
func (s *Scheduler) Workers() int { return s.workers }

// Partition returns the configured partition policy.
func (s *Scheduler) Partition() Partition { return s.partition }

// Alpha returns the stencil weight.
func (s *Scheduler) Alpha() float64 { return s.alpha }

// Sweep updates, in place, every interior cell of g selected by offset
// (see Selected). Only offset's parity matters; callers alternate it
// between steps. Grids narrower or shorter than 3 have no interior and
// are left untouched.
//
// Sweep is a barrier: it returns after every worker has finished writing.
// Complexity: O(W×H/2).
func (s *Scheduler) Sweep(g *grid.Grid, offset int) {
	if g.Width < 3 || g.Height < 3 {
		return
	}
	offset = parity(offset)

	if s.workers == 1 {
		sweepColumns(g, 1, g.Width-1, offset, s.alpha)
		return
	}
	switch s.partition {
	case PartitionDynamic:
		s.sweepDynamic(g, offset)
	default:
		s.sweepBlocks(g, offset)
	}
}

// sweepBlocks runs one goroutine per contiguous column block.
func (s *Scheduler) sweepBlocks(g *grid.Grid, offset int) {
	ranges := ColumnRanges(g.Width, s.workers)
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		go func(r Range) {
			defer wg.Done()
			sweepColumns(g, r.Lo, r.Hi, offset, s.alpha)
		}(r)
	}
	wg.Wait()
}

// sweepDynamic feeds small column chunks to at most s.workers goroutines.
func (s *Scheduler) sweepDynamic(g *grid.Grid, offset int) {
	var eg errgroup.Group
	eg.SetLimit(s.workers)
	for _, r := range ColumnChunks(g.Width, s.workers*chunksPerWorker) {
		eg.Go(func() error {
			sweepColumns(g, r.Lo, r.Hi, offset, s.alpha)
			return nil
		})
	}
	_ = eg.Wait() // workers never fail
}

// ColumnRanges splits the interior columns [1, width-1) into at most workers
// contiguous, disjoint, non-empty ranges. Each range has (width-2)/workers
// columns except the last, which absorbs the remainder. Returns nil when the
// grid has no interior columns.
// Complexity: O(workers).
func ColumnRanges(width, workers int) []Range {
	interior := width - 2
	if interior <= 0 {
		return nil
	}
	workers = max(1, min(workers, interior))
	block := interior / workers

	ranges := make([]Range, workers)
	for t := 0; t < workers; t++ {
		lo := 1 + t*block
		hi := lo + block
		if t == workers-1 {
			hi = width - 1
		}
		ranges[t] = Range{Lo: lo, Hi: hi}
	}

	return ranges
}

// ColumnChunks splits the interior columns into roughly n equal contiguous
// chunks, spreading the remainder one column at a time over the leading
// chunks. Returns nil when the grid has no interior columns.
// Complexity: O(n).
func ColumnChunks(width, n int) []Range {
	interior := width - 2
	if interior <= 0 {
		return nil
	}
	n = max(1, min(n, interior))
	size, extra := interior/n, interior%n

	chunks := make([]Range, 0, n)
	lo := 1
	for i := 0; i < n; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}
		chunks = append(chunks, Range{Lo: lo, Hi: hi})
		lo = hi
	}

	return chunks
}
