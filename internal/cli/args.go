// internal/cli/args.go
package cli

import (
	"errors"
	"strconv"
	"strings"
)

// Positional argument errors. Run maps each to its user-facing message.
var (
	ErrUsage = errors.New("cli: expected <width> <height> <steps> [output-file]")
	ErrSizes = errors.New("cli: width and height must be positive integers")
	ErrSteps = errors.New("cli: steps must be a non-negative integer")
)

// Args are the validated positional arguments.
type Args struct {
	Width, Height int
	Steps         int
	// Output is the heat-map path, empty when no export was requested.
	Output string
}

// ParseArgs validates argv, which includes the program name at argv[0].
// Exactly 4 or 5 entries are accepted.
func ParseArgs(argv []string) (Args, error) {
	if len(argv) != 4 && len(argv) != 5 {
		return Args{}, ErrUsage
	}
	width, okW := positive(argv[1])
	height, okH := positive(argv[2])
	if !okW || !okH {
		return Args{}, ErrSizes
	}
	steps, err := strconv.Atoi(strings.TrimSpace(argv[3]))
	if err != nil || steps < 0 {
		return Args{}, ErrSteps
	}

	a := Args{Width: width, Height: height, Steps: steps}
	if len(argv) == 5 {
		a.Output = argv[4]
	}

	return a, nil
}

func positive(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n > 0
}
