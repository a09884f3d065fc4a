package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatflow/stencil"
)

// envMap returns a getenv backed by m.
func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// run invokes Run with captured streams.
func run(t *testing.T, env map[string]string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(append([]string{"heatsim"}, args...), envMap(env), &out, &errOut)

	return code, out.String(), errOut.String()
}

//----------------------------------------------------------------------------//
// Arguments
//----------------------------------------------------------------------------//

func TestParseArgs(t *testing.T) {
	a, err := ParseArgs([]string{"p", "10", "20", "0"})
	require.NoError(t, err)
	require.Equal(t, Args{Width: 10, Height: 20, Steps: 0}, a)

	a, err = ParseArgs([]string{"p", "3", "4", "5", "out.bmp"})
	require.NoError(t, err)
	require.Equal(t, "out.bmp", a.Output)

	cases := []struct {
		name string
		argv []string
		err  error
	}{
		{"TooFew", []string{"p", "1", "2"}, ErrUsage},
		{"TooMany", []string{"p", "1", "2", "3", "o", "x"}, ErrUsage},
		{"ZeroWidth", []string{"p", "0", "2", "3"}, ErrSizes},
		{"NegativeHeight", []string{"p", "2", "-2", "3"}, ErrSizes},
		{"NonNumericSize", []string{"p", "abc", "2", "3"}, ErrSizes},
		{"NegativeSteps", []string{"p", "2", "2", "-1"}, ErrSteps},
		{"NonNumericSteps", []string{"p", "2", "2", "many"}, ErrSteps},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(tc.argv)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	code, out, errOut := run(t, nil, "4", "4")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Equal(t, "Usage: heatsim <width> <height> <steps> [output-file]\n", errOut)

	code, out, errOut = run(t, nil, "0", "4", "1")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Equal(t, "Sizes must be positive integers\n", errOut)

	code, out, errOut = run(t, nil, "4", "4", "-3")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Equal(t, "Steps must be non-negative\n", errOut)
}

//----------------------------------------------------------------------------//
// Runs
//----------------------------------------------------------------------------//

func TestRun_Report(t *testing.T) {
	code, out, errOut := run(t, nil, "4", "4", "1")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "After 1 iterations, delta was 9.993125\n", out)
	require.Empty(t, errOut)

	code, out, _ = run(t, nil, "8", "8", "0")
	require.Equal(t, 0, code)
	require.Equal(t, "After 0 iterations, delta was 0.000000\n", out)

	code, out, _ = run(t, map[string]string{EnvWorkers: "3"}, "3", "3", "50")
	require.Equal(t, 0, code)
	require.Equal(t, "After 0 iterations, delta was 0.000000\n", out)
}

func TestRun_WritesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.bmp")
	code, out, errOut := run(t, nil, "16", "12", "20", path)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "After 20 iterations")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestRun_ExportFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "plate.png")
	code, out, errOut := run(t, nil, "5", "5", "2", path)
	require.Equal(t, 1, code)
	require.Contains(t, out, "After 2 iterations")
	require.Contains(t, errOut, "export failed")
}

func TestRun_ChartAndReport(t *testing.T) {
	dir := t.TempDir()
	env := map[string]string{
		EnvChart:     filepath.Join(dir, "chart.png"),
		EnvReport:    filepath.Join(dir, "run.yaml"),
		EnvPartition: "dynamic",
		EnvWorkers:   "2",
	}
	code, _, errOut := run(t, env, "10", "10", "25")
	require.Equal(t, 0, code, errOut)

	_, err := os.Stat(env[EnvChart])
	require.NoError(t, err)
	report, err := os.ReadFile(env[EnvReport])
	require.NoError(t, err)
	require.Contains(t, string(report), "iterations: 25")
	require.Contains(t, string(report), "partition: dynamic")
	require.Contains(t, string(report), "workers: 2")
}

func TestRun_ChartSkippedForShortRun(t *testing.T) {
	env := map[string]string{EnvChart: filepath.Join(t.TempDir(), "chart.png")}
	code, _, errOut := run(t, env, "3", "3", "10")
	require.Equal(t, 0, code)
	require.Contains(t, errOut, "convergence chart skipped")
}

func TestRun_AllocationLimit(t *testing.T) {
	code, out, errOut := run(t, map[string]string{EnvMaxCells: "100"}, "20", "20", "5")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "out of memory")

	for _, size := range []string{"1000000", "300000"} {
		code, out, errOut = run(t, nil, size, size, "1")
		require.Equal(t, 1, code, size)
		require.Empty(t, out)
		require.Contains(t, errOut, "out of memory")
	}
}

//----------------------------------------------------------------------------//
// Environment
//----------------------------------------------------------------------------//

func TestLoadEnv(t *testing.T) {
	env, err := LoadEnv(envMap(nil))
	require.NoError(t, err)
	require.Equal(t, Env{LogLevel: slog.LevelWarn}, env)

	env, err = LoadEnv(envMap(map[string]string{
		EnvWorkers:   "6",
		EnvPartition: "DYNAMIC",
		EnvLogLevel:  "debug",
		EnvMaxCells:  "1000",
	}))
	require.NoError(t, err)
	require.Equal(t, 6, env.Workers)
	require.Equal(t, stencil.PartitionDynamic, env.Partition)
	require.Equal(t, slog.LevelDebug, env.LogLevel)
	require.Equal(t, 1000, env.MaxCells)

	for _, bad := range []map[string]string{
		{EnvWorkers: "0"},
		{EnvWorkers: "lots"},
		{EnvMaxCells: "-5"},
		{EnvPartition: "striped"},
		{EnvLogLevel: "chatty"},
	} {
		_, err := LoadEnv(envMap(bad))
		require.ErrorIs(t, err, ErrConfig, "%v", bad)
	}
}

func TestRun_ConfigError(t *testing.T) {
	code, out, errOut := run(t, map[string]string{EnvWorkers: "-1"}, "4", "4", "1")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, errOut, EnvWorkers)
}
