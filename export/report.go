package export

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heatflow/simulation"
)

// Report is the YAML summary of one run.
type Report struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Budget     int     `yaml:"steps_requested"`
	Iterations int     `yaml:"iterations"`
	Delta      float64 `yaml:"delta"`
	Outcome    string  `yaml:"outcome"`
	Converged  bool    `yaml:"converged"`
	Workers    int     `yaml:"workers"`
	Partition  string  `yaml:"partition"`
	Elapsed    string  `yaml:"elapsed"`
	Image      string  `yaml:"image,omitempty"`
}

// NewReport summarises res. image is the exported heat-map path, if any.
func NewReport(res *simulation.Result, image string) Report {
	return Report{
		Width:      res.Width,
		Height:     res.Height,
		Budget:     res.Budget,
		Iterations: res.Steps,
		Delta:      res.Delta,
		Outcome:    res.Outcome.String(),
		Converged:  res.Converged(),
		Workers:    res.Workers,
		Partition:  res.Partition.String(),
		Elapsed:    res.Elapsed.String(),
		Image:      image,
	}
}

// EncodeReport writes rep to w as YAML.
func EncodeReport(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("export: encode report: %w", err)
	}

	return enc.Close()
}

// WriteReport writes rep to the file at path, creating or truncating it.
func WriteReport(path string, rep Report) (err error) {
	if path == "" {
		return ErrNoPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close report: %w", cerr)
		}
	}()

	return EncodeReport(f, rep)
}
