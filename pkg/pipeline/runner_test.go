package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lkirchner/graphlens/pkg/cache"
	"github.com/lkirchner/graphlens/pkg/errors"
	"github.com/lkirchner/graphlens/pkg/render"
	"github.com/lkirchner/graphlens/pkg/store"
	"github.com/lkirchner/graphlens/pkg/viewer"
)

const testGraphML = `<?xml version="1.0"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <graph id="G" edgedefault="undirected">
    <node id="n0"/><node id="n1"/><node id="n2"/>
    <edge source="n0" target="n1"/>
    <edge source="n0" target="n2"/>
  </graph>
</graphml>`

// testInputs writes the conventional inputs into a temp dir and returns
// Options pointing at them.
func testInputs(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "graph"), 0755); err != nil {
		t.Fatal(err)
	}
	dot := filepath.Join(dir, "graph", "graph.dot")
	gml := filepath.Join(dir, "graph", "graph.graphml")
	if err := os.WriteFile(dot, []byte("graph G { n0 -- n1; n0 -- n2; }"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(gml, []byte(testGraphML), 0644); err != nil {
		t.Fatal(err)
	}
	return Options{
		DotPath:     dot,
		GraphMLPath: gml,
		PSPath:      filepath.Join(dir, "graph", "graph.ps"),
		ReportPath:  filepath.Join(dir, "graph.html"),
		PlotPath:    filepath.Join(dir, "graph.png"),
	}
}

// psWritingExecutor writes a fake PostScript artifact like circo would.
func psWritingExecutor() *render.MockExecutor {
	return &render.MockExecutor{
		OnRun: func(name string, args []string) error {
			if name != "circo" || len(args) != 4 {
				return nil
			}
			return os.WriteFile(args[3], []byte("%!PS-Adobe-3.0\n"), 0644)
		},
	}
}

func TestExecute(t *testing.T) {
	opts := testInputs(t)
	mock := psWritingExecutor()

	r := NewRunner(cache.NewNullCache(), nil, nil)
	r.SetExecutor(mock)
	defer r.Close()

	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Graph.NodeCount() != 3 || res.Graph.EdgeCount() != 2 {
		t.Errorf("got %d nodes %d edges, want 3 and 2", res.Graph.NodeCount(), res.Graph.EdgeCount())
	}
	if len(res.Scores) != 3 {
		t.Errorf("scores length = %d, want 3", len(res.Scores))
	}
	for i := 1; i < len(res.Scores); i++ {
		if res.Scores[i].Value > res.Scores[i-1].Value {
			t.Error("scores should be sorted descending")
		}
	}

	for _, path := range []string{opts.PSPath, opts.ReportPath, opts.PlotPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing artifact %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", path)
		}
	}

	// Only the layout engine ran; the viewer stayed closed.
	if len(mock.Calls) != 1 || mock.Calls[0][0] != "circo" {
		t.Errorf("process calls = %v, want a single circo invocation", mock.Calls)
	}
}

func TestExecuteMissingDot(t *testing.T) {
	opts := testInputs(t)
	if err := os.Remove(opts.DotPath); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil, nil)
	r.SetExecutor(&render.MockExecutor{})
	defer r.Close()

	_, err := r.Execute(context.Background(), opts)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("error = %v, want FILE_NOT_FOUND", err)
	}
	// The failing first step must not leave later artifacts behind.
	if _, err := os.Stat(opts.ReportPath); !os.IsNotExist(err) {
		t.Error("report should not exist after failed layout step")
	}
	if _, err := os.Stat(opts.PlotPath); !os.IsNotExist(err) {
		t.Error("plot should not exist after failed layout step")
	}
}

func TestExecuteInvalidEngine(t *testing.T) {
	opts := testInputs(t)
	opts.Engine = "escher"

	r := NewRunner(nil, nil, nil)
	defer r.Close()

	if _, err := r.Execute(context.Background(), opts); !errors.Is(err, errors.ErrCodeInvalidEngine) {
		t.Errorf("error = %v, want INVALID_ENGINE", err)
	}
}

func TestLayoutCaching(t *testing.T) {
	opts := testInputs(t)
	mock := psWritingExecutor()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	r.SetExecutor(mock)
	defer r.Close()

	ctx := context.Background()
	hit, err := r.Layout(ctx, opts)
	if err != nil {
		t.Fatalf("first Layout: %v", err)
	}
	if hit {
		t.Error("first render should be a cache miss")
	}

	hit, err = r.Layout(ctx, opts)
	if err != nil {
		t.Fatalf("second Layout: %v", err)
	}
	if !hit {
		t.Error("second render should be a cache hit")
	}
	if len(mock.Calls) != 1 {
		t.Errorf("layout engine ran %d times, want 1", len(mock.Calls))
	}
	if data, err := os.ReadFile(opts.PSPath); err != nil || len(data) == 0 {
		t.Error("cached artifact should be written to the output path")
	}
}

func TestProfileRecordsHistory(t *testing.T) {
	opts := testInputs(t)
	runs, err := store.NewFileStore(filepath.Join(t.TempDir(), "runs.json"))
	if err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, runs, nil)
	r.SetExecutor(&render.MockExecutor{})
	defer r.Close()

	ctx := context.Background()
	g, err := r.LoadGraph(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	report, err := r.Profile(ctx, g, opts)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}

	recorded, err := runs.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recorded) != 1 {
		t.Fatalf("history length = %d, want 1", len(recorded))
	}
	if recorded[0].ID != report.ID || recorded[0].Nodes != 3 || recorded[0].Edges != 2 {
		t.Errorf("recorded run = %+v", recorded[0])
	}
}

func TestOpenViewer(t *testing.T) {
	opts := testInputs(t)
	opts.OpenViewer = true

	mock := &render.MockExecutor{}
	r := NewRunner(nil, nil, nil)
	r.SetExecutor(mock)
	r.SetViewer(viewer.New("xdg-open", mock))
	defer r.Close()

	ctx := context.Background()
	g, err := r.LoadGraph(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Profile(ctx, g, opts); err != nil {
		t.Fatalf("Profile: %v", err)
	}

	found := false
	for _, call := range mock.Calls {
		if call[0] == "xdg-open" {
			found = true
		}
	}
	if !found {
		t.Error("viewer should have been invoked for the report")
	}
}
