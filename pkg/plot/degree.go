// Package plot renders degree-centrality curves.
//
// The plot is the classic log-log rank/score curve: nodes sorted by
// descending degree centrality on the X axis (rank, 1-based), score
// magnitude on the Y axis. On scale-free graphs it approximates a straight
// line.
package plot

import (
	"bytes"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lkirchner/graphlens/pkg/centrality"
	"github.com/lkirchner/graphlens/pkg/errors"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// DefaultFormat is PNG, which every image viewer handles.
const DefaultFormat = FormatPNG

const (
	width  = 6 * vg.Inch
	height = 4 * vg.Inch
)

// DegreeCurve builds the rank/score plot for the given scores. The scores
// are sorted internally, so callers may pass centrality.Degree output
// directly.
//
// Log axes cannot represent zero, so zero scores are clamped to half the
// smallest positive score. A graph with no edges at all has nothing to
// show on a log scale and falls back to linear axes.
func DegreeCurve(scores []centrality.Score) (*plot.Plot, error) {
	if len(scores) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no scores to plot")
	}
	sorted := centrality.Sorted(scores)

	floor := 0.0
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Value > 0 {
			floor = sorted[i].Value / 2
			break
		}
	}

	pts := make(plotter.XYs, len(sorted))
	for i, s := range sorted {
		v := s.Value
		if v <= 0 {
			v = floor
		}
		pts[i] = plotter.XY{X: float64(i + 1), Y: v}
	}

	p := plot.New()
	p.Title.Text = "Degree centrality"
	p.X.Label.Text = "rank"
	p.Y.Label.Text = "degree centrality"

	if floor > 0 {
		p.X.Scale = plot.LogScale{}
		p.Y.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build line plot")
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p, nil
}

// Render draws the plot for scores in the given format.
func Render(scores []centrality.Score, format string) ([]byte, error) {
	switch format {
	case FormatPNG, FormatSVG:
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unknown plot format %q (valid: png, svg)", format)
	}

	p, err := DegreeCurve(scores)
	if err != nil {
		return nil, err
	}

	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render plot")
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render plot")
	}
	return buf.Bytes(), nil
}

// WriteFile renders the plot in the given format and writes it to path.
func WriteFile(scores []centrality.Score, path, format string) error {
	data, err := Render(scores, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
