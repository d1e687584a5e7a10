package profile

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lkirchner/graphlens/pkg/errors"
	"github.com/lkirchner/graphlens/pkg/graph"
)

// triangle plus one isolate: 4 nodes, 3 edges, 2 components.
func testGraph() *graph.Graph {
	g := graph.New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("a", "c")
	g.AddNode("lonely")
	return g
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(testGraph())

	if s.Nodes != 4 || s.Edges != 3 {
		t.Errorf("got %d nodes %d edges, want 4 and 3", s.Nodes, s.Edges)
	}
	// density = 2*3/(4*3) = 0.5
	if math.Abs(s.Density-0.5) > 1e-12 {
		t.Errorf("Density = %g, want 0.5", s.Density)
	}
	if s.MinDegree != 0 || s.MaxDegree != 2 {
		t.Errorf("degree range = [%d,%d], want [0,2]", s.MinDegree, s.MaxDegree)
	}
	if math.Abs(s.MeanDegree-1.5) > 1e-12 {
		t.Errorf("MeanDegree = %g, want 1.5", s.MeanDegree)
	}
	if s.Components != 2 {
		t.Errorf("Components = %d, want 2", s.Components)
	}
	if s.LargestComponent != 3 {
		t.Errorf("LargestComponent = %d, want 3", s.LargestComponent)
	}
	if s.Isolates != 1 {
		t.Errorf("Isolates = %d, want 1", s.Isolates)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(graph.New())
	if s.Nodes != 0 || s.Edges != 0 || s.Components != 0 {
		t.Errorf("empty graph stats = %+v", s)
	}
}

func TestDegreeDistribution(t *testing.T) {
	dist := DegreeDistribution(testGraph())
	// degree 0 x1, degree 2 x3
	if len(dist) != 2 {
		t.Fatalf("distribution buckets = %d, want 2", len(dist))
	}
	if dist[0].Degree != 0 || dist[0].Count != 1 {
		t.Errorf("bucket 0 = %+v, want degree 0 count 1", dist[0])
	}
	if dist[1].Degree != 2 || dist[1].Count != 3 {
		t.Errorf("bucket 1 = %+v, want degree 2 count 3", dist[1])
	}
}

func TestAssortativityRegularGraph(t *testing.T) {
	// In a triangle all endpoint degrees are equal, so the correlation is
	// undefined (zero variance) and comes back NaN.
	g := graph.New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("a", "c")
	if r := Assortativity(g); !math.IsNaN(r) {
		t.Errorf("Assortativity of a regular graph = %g, want NaN", r)
	}
}

func TestAssortativityStar(t *testing.T) {
	// A star is maximally disassortative.
	g := graph.New()
	g.AddEdge("hub", "a")
	g.AddEdge("hub", "b")
	g.AddEdge("hub", "c")
	if r := Assortativity(g); r > -0.999 {
		t.Errorf("Assortativity of a star = %g, want ≈ -1", r)
	}
}

func TestRunMinimal(t *testing.T) {
	r, err := Run(testGraph(), "graph/graph.graphml", Options{Preset: PresetMinimal})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.ID == "" {
		t.Error("report should carry a run ID")
	}
	if r.DegreeDist != nil || r.Hubs != nil {
		t.Error("minimal preset should not compute distribution or hubs")
	}
	if r.HasSection("hubs") {
		t.Error("minimal preset should not expose the hubs section")
	}
}

func TestRunDefaultPresetWhenEmpty(t *testing.T) {
	r, err := Run(testGraph(), "in.graphml", Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Preset != PresetMinimal {
		t.Errorf("empty preset should default to minimal, got %s", r.Preset)
	}
}

func TestRunComplete(t *testing.T) {
	r, err := Run(testGraph(), "in.graphml", Options{
		Preset:   PresetComplete,
		Top:      2,
		GraphSVG: []byte("<svg><circle/></svg>"),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(r.Hubs) != 2 {
		t.Errorf("hub table size = %d, want 2", len(r.Hubs))
	}
	if !r.HasSection("assortativity") || !r.HasSection("drawing") {
		t.Error("complete preset should expose all sections")
	}

	var buf bytes.Buffer
	if err := r.WriteHTML(&buf); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "<svg><circle/></svg>") {
		t.Error("report should embed the drawing unescaped")
	}
	if !strings.Contains(html, "Assortativity") {
		t.Error("report should contain the assortativity row")
	}
}

func TestRunInvalidPreset(t *testing.T) {
	_, err := Run(testGraph(), "in.graphml", Options{Preset: "full"})
	if !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("error = %v, want INVALID_PRESET", err)
	}
}

func TestWriteHTMLFile(t *testing.T) {
	r, err := Run(testGraph(), "graph/graph.graphml", Options{Preset: PresetDefault})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "graph.html")
	if err := r.WriteHTMLFile(path); err != nil {
		t.Fatalf("WriteHTMLFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, want := range []string{"<td class=\"num\">4</td>", "<td class=\"num\">3</td>", "Degree distribution", "Top hubs"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(html, "Drawing") {
		t.Error("default preset should not include the drawing section")
	}
}
