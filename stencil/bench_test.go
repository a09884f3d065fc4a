package stencil_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/heatflow/stencil"
)

// BenchmarkSweep compares partition policies on a 1024×1024 grid.
// Complexity: O(W×H/2) per iteration.
func BenchmarkSweep(b *testing.B) {
	const n = 1024
	workers := runtime.GOMAXPROCS(0)
	cases := []struct {
		name string
		s    *stencil.Scheduler
	}{
		{"serial", stencil.NewScheduler()},
		{fmt.Sprintf("blocks-%d", workers), stencil.NewScheduler(stencil.WithWorkers(workers))},
		{fmt.Sprintf("dynamic-%d", workers), stencil.NewScheduler(
			stencil.WithWorkers(workers), stencil.WithPartition(stencil.PartitionDynamic))},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			g := newInitialized(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tc.s.Sweep(g, i%2)
			}
		})
	}
}
