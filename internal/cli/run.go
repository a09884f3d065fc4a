// internal/cli/run.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/heatflow/export"
	"github.com/katalvlaran/heatflow/grid"
	"github.com/katalvlaran/heatflow/simulation"
)

// Run executes one heatsim invocation and returns the process exit status.
// argv includes the program name. Only the result line goes to stdout.
func Run(argv []string, getenv func(string) string, stdout, stderr io.Writer) int {
	prog := "heatsim"
	if len(argv) > 0 {
		prog = argv[0]
	}

	args, err := ParseArgs(argv)
	if err != nil {
		switch {
		case errors.Is(err, ErrSizes):
			fmt.Fprintln(stderr, "Sizes must be positive integers")
		case errors.Is(err, ErrSteps):
			fmt.Fprintln(stderr, "Steps must be non-negative")
		default:
			fmt.Fprintf(stderr, "Usage: %s <width> <height> <steps> [output-file]\n", prog)
		}
		return 1
	}
	env, err := LoadEnv(getenv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: env.LogLevel}))
	res, err := simulation.Run(args.Width, args.Height, args.Steps, options(args, env, logger)...)
	if res == nil {
		if errors.Is(err, grid.ErrAllocation) {
			fmt.Fprintf(stderr, "%s: out of memory: %v\n", prog, err)
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		}
		return 1
	}

	fmt.Fprintf(stdout, "After %d iterations, delta was %f\n", res.Steps, res.Delta)
	code := 0
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		code = 1
	}
	if env.ChartPath != "" {
		switch err := export.WriteConvergenceChart(env.ChartPath, res.History); {
		case errors.Is(err, export.ErrHistoryTooShort):
			logger.Warn("convergence chart skipped", "path", env.ChartPath, "steps", len(res.History))
		case err != nil:
			logger.Error("convergence chart not written", "path", env.ChartPath, "err", err)
			code = 1
		}
	}
	if env.ReportPath != "" {
		if err := export.WriteReport(env.ReportPath, export.NewReport(res, args.Output)); err != nil {
			logger.Error("report not written", "path", env.ReportPath, "err", err)
			code = 1
		}
	}

	return code
}

// options translates arguments and environment into driver options.
// The worker count is fixed here, once, for the whole run.
func options(args Args, env Env, logger *slog.Logger) []simulation.Option {
	opts := []simulation.Option{
		simulation.WithPartition(env.Partition),
		simulation.WithLogger(logger),
	}
	if env.Workers > 0 {
		opts = append(opts, simulation.WithWorkers(env.Workers))
	}
	if env.MaxCells > 0 {
		opts = append(opts, simulation.WithMaxCells(env.MaxCells))
	}
	if env.ChartPath != "" {
		opts = append(opts, simulation.WithHistory())
	}
	if args.Output != "" {
		opts = append(opts, simulation.WithExporter(export.ImageExporter{Path: args.Output}))
	}

	return opts
}
