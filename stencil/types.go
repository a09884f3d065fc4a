// SPDX-License-Identifier: MIT

package stencil

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultAlpha is the stencil weight used by the diffusion driver.
const DefaultAlpha = 0.2

// ErrUnknownPartition indicates an unrecognised partition policy name.
var ErrUnknownPartition = errors.New("stencil: unknown partition policy")

const (
	panicWorkersInvalid   = "stencil: WithWorkers: workers must be > 0"
	panicPartitionInvalid = "stencil: WithPartition: unknown partition policy"
	panicAlphaInvalid     = "stencil: WithAlpha: alpha must be finite"
)

// Partition selects how interior columns are distributed across workers.
type Partition uint8

const (
	// PartitionBlocks gives each worker one contiguous column block.
	PartitionBlocks Partition = iota
	// PartitionDynamic hands out small column chunks to a bounded worker pool.
	PartitionDynamic
)

// String returns the policy name as accepted by ParsePartition.
func (p Partition) String() string {
	switch p {
	case PartitionBlocks:
		return "blocks"
	case PartitionDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Partition(%d)", uint8(p))
	}
}

// ParsePartition maps "blocks" or "dynamic" (case-insensitive) to a Partition.
func ParsePartition(name string) (Partition, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blocks", "":
		return PartitionBlocks, nil
	case "dynamic":
		return PartitionDynamic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPartition, name)
	}
}

// Range is a half-open column interval [Lo, Hi) owned by one worker.
type Range struct {
	Lo, Hi int
}

// Len returns the number of columns in r.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithWorkers sets the number of concurrent workers. Panics if n ≤ 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}
	return func(s *Scheduler) {
		s.workers = n
	}
}

// WithPartition selects the column partitioning policy.
// Panics on a value that is neither PartitionBlocks nor PartitionDynamic.
func WithPartition(p Partition) Option {
	if p != PartitionBlocks && p != PartitionDynamic {
		panic(panicPartitionInvalid)
	}
	return func(s *Scheduler) {
		s.partition = p
	}
}

// WithAlpha overrides DefaultAlpha. Panics on NaN or ±Inf.
func WithAlpha(alpha float64) Option {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		panic(panicAlphaInvalid)
	}
	return func(s *Scheduler) {
		s.alpha = alpha
	}
}
