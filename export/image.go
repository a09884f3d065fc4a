package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/crazy3lf/colorconv"
	"golang.org/x/image/bmp"

	"github.com/katalvlaran/heatflow/grid"
)

var (
	// ErrNoPath indicates an empty output path.
	ErrNoPath = errors.New("export: output path is empty")
	// ErrNilGrid indicates a nil grid was handed to an exporter.
	ErrNilGrid = errors.New("export: grid is nil")
)

// Format is an image container.
type Format uint8

// Supported image formats.
const (
	FormatBMP Format = iota
	FormatPNG
)

// paletteSize is the number of precomputed ramp colours.
const paletteSize = 1024

// Hue endpoints of the ramp, in degrees.
const (
	coldHue = 240.0
	hotHue  = 0.0
)

// FormatForPath picks PNG for ".png" (any case) and BMP otherwise.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatBMP
}

// palette is the cold→hot colour table, built on first use.
var palette = sync.OnceValue(func() []color.NRGBA {
	table := make([]color.NRGBA, paletteSize)
	for i := range table {
		t := float64(i) / float64(paletteSize-1)
		hue := coldHue + (hotHue-coldHue)*t
		r, g, b, _ := colorconv.HSVToRGB(hue, 1, 1)
		table[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return table
})

// HeatColor maps v within [lo, hi] onto the ramp. Values outside the range
// are clamped; a flat range (lo == hi) and NaN map to the cold end.
func HeatColor(v, lo, hi float64) color.NRGBA {
	table := palette()
	if hi <= lo {
		return table[0]
	}
	t := (v - lo) / (hi - lo)
	if math.IsNaN(t) {
		return table[0]
	}
	t = min(1, max(0, t))

	return table[int(t*float64(paletteSize-1))]
}

// Render draws g as a Width×Height heat map.
// Complexity: O(W×H).
func Render(g *grid.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	lo, hi := g.MinMax()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetNRGBA(x, y, HeatColor(g.At(x, y), lo, hi))
		}
	}

	return img
}

// Encode renders g and writes it to w in format f.
func Encode(w io.Writer, g *grid.Grid, f Format) error {
	if g == nil {
		return ErrNilGrid
	}
	img := Render(g)
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	default:
		return bmp.Encode(w, img)
	}
}

// WriteImage renders g into the file at path, choosing the format from the
// extension (see FormatForPath). The file is created or truncated.
func WriteImage(path string, g *grid.Grid) (err error) {
	if path == "" {
		return ErrNoPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close image: %w", cerr)
		}
	}()
	if err := Encode(f, g, FormatForPath(path)); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}

	return nil
}

// ImageExporter writes the final grid to Path. It satisfies simulation.Exporter.
type ImageExporter struct {
	Path string
}

// Export writes g to e.Path.
func (e ImageExporter) Export(g *grid.Grid) error {
	return WriteImage(e.Path, g)
}
