// internal/cli/env.go
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/heatflow/stencil"
)

// Environment variables read once at start-up. There is no config file.
const (
	EnvWorkers   = "HEATSIM_WORKERS"
	EnvPartition = "HEATSIM_PARTITION"
	EnvLogLevel  = "HEATSIM_LOG_LEVEL"
	EnvMaxCells  = "HEATSIM_MAX_CELLS"
	EnvChart     = "HEATSIM_CHART"
	EnvReport    = "HEATSIM_REPORT"
)

// ErrConfig wraps every invalid environment value.
var ErrConfig = errors.New("cli: invalid configuration")

// Env is the resolved environment configuration.
type Env struct {
	// Workers is 0 when unset; the driver then uses GOMAXPROCS.
	Workers   int
	Partition stencil.Partition
	LogLevel  slog.Level
	// MaxCells is 0 when unset, leaving grid.DefaultMaxCells in force.
	MaxCells   int
	ChartPath  string
	ReportPath string
}

// LoadEnv reads the HEATSIM_* variables through getenv.
func LoadEnv(getenv func(string) string) (Env, error) {
	env := Env{LogLevel: slog.LevelWarn}
	var err error

	if env.Workers, err = positiveEnv(getenv, EnvWorkers); err != nil {
		return Env{}, err
	}
	if env.MaxCells, err = positiveEnv(getenv, EnvMaxCells); err != nil {
		return Env{}, err
	}
	if v := getenv(EnvPartition); v != "" {
		if env.Partition, err = stencil.ParsePartition(v); err != nil {
			return Env{}, fmt.Errorf("%w: %s: %w", ErrConfig, EnvPartition, err)
		}
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		if err := env.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Env{}, fmt.Errorf("%w: %s=%q", ErrConfig, EnvLogLevel, v)
		}
	}
	env.ChartPath = getenv(EnvChart)
	env.ReportPath = getenv(EnvReport)

	return env, nil
}

// positiveEnv parses an optional positive integer; unset yields 0.
func positiveEnv(getenv func(string) string, key string) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a positive integer", ErrConfig, key, v)
	}

	return n, nil
}
