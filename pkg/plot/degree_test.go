package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lkirchner/graphlens/pkg/centrality"
	"github.com/lkirchner/graphlens/pkg/errors"
	"gonum.org/v1/plot"
)

func scores() []centrality.Score {
	return []centrality.Score{
		{Node: "a", Value: 0.1},
		{Node: "hub", Value: 1.0},
		{Node: "b", Value: 0.5},
		{Node: "c", Value: 0.25},
	}
}

func TestDegreeCurveLogAxes(t *testing.T) {
	p, err := DegreeCurve(scores())
	if err != nil {
		t.Fatalf("DegreeCurve: %v", err)
	}
	if _, ok := p.X.Scale.(plot.LogScale); !ok {
		t.Error("X axis should be log-scaled")
	}
	if _, ok := p.Y.Scale.(plot.LogScale); !ok {
		t.Error("Y axis should be log-scaled")
	}
}

func TestDegreeCurveAllZeroFallsBackToLinear(t *testing.T) {
	p, err := DegreeCurve([]centrality.Score{{Node: "a"}, {Node: "b"}})
	if err != nil {
		t.Fatalf("DegreeCurve: %v", err)
	}
	if _, ok := p.X.Scale.(plot.LogScale); ok {
		t.Error("all-zero scores cannot use a log axis")
	}
}

func TestDegreeCurveEmpty(t *testing.T) {
	_, err := DegreeCurve(nil)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := Render(scores(), FormatPNG)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("PNG output should be non-empty")
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output does not look like a PNG")
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := Render(scores(), FormatSVG)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output does not look like an SVG")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(scores(), "gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.png")
	if err := WriteFile(scores(), path, FormatPNG); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("plot file should be non-empty")
	}
}
