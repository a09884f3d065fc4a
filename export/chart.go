package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrHistoryTooShort indicates fewer than two recorded steps; a line chart
// needs at least two points.
var ErrHistoryTooShort = errors.New("export: convergence chart needs at least 2 steps")

// Chart dimensions in pixels.
const (
	chartWidth  = 1024
	chartHeight = 512
)

// RenderConvergenceChart writes a PNG line chart of history (delta per step) to w.
func RenderConvergenceChart(w io.Writer, history []float64) error {
	if len(history) < 2 {
		return ErrHistoryTooShort
	}
	steps := make([]float64, len(history))
	for i := range steps {
		steps[i] = float64(i)
	}

	graph := chart.Chart{
		Title:  "Convergence",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:  "step",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "mean abs delta",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "delta",
				XValues: steps,
				YValues: history,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("export: render chart: %w", err)
	}

	return nil
}

// WriteConvergenceChart renders history into a PNG file at path.
func WriteConvergenceChart(path string, history []float64) (err error) {
	if path == "" {
		return ErrNoPath
	}
	if len(history) < 2 {
		return ErrHistoryTooShort
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close chart: %w", cerr)
		}
	}()

	return RenderConvergenceChart(f, history)
}
