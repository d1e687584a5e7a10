package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lkirchner/graphlens/pkg/cache"
	"github.com/lkirchner/graphlens/pkg/profile"
)

const testGraphML = `<?xml version="1.0"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <graph id="G" edgedefault="undirected">
    <node id="a"/><node id="b"/><node id="c"/>
    <edge source="a" target="b"/>
    <edge source="b" target="c"/>
  </graph>
</graphml>`

func testServer(t *testing.T, c cache.Cache) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.graphml")
	if err := os.WriteFile(path, []byte(testGraphML), 0644); err != nil {
		t.Fatal(err)
	}
	return New(Options{GraphMLPath: path, Preset: profile.PresetDefault, Cache: c})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, testServer(t, nil).Router(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestReport(t *testing.T) {
	rec := get(t, testServer(t, nil).Router(), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %s", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Graph profile") || !strings.Contains(body, "Top hubs") {
		t.Error("report body missing expected sections")
	}
}

func TestReportCached(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	srv := testServer(t, fc)
	router := srv.Router()

	first := get(t, router, "/")
	second := get(t, router, "/")
	if second.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", second.Code)
	}
	// Cached response is byte-identical, including the run id.
	if first.Body.String() != second.Body.String() {
		t.Error("second response should come from cache unchanged")
	}
}

func TestPlot(t *testing.T) {
	rec := get(t, testServer(t, nil).Router(), "/plot.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %s", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "\x89PNG") {
		t.Error("body does not look like a PNG")
	}
}

func TestStats(t *testing.T) {
	rec := get(t, testServer(t, nil).Router(), "/api/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var stats profile.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Nodes != 3 || stats.Edges != 2 {
		t.Errorf("stats = %+v, want 3 nodes 2 edges", stats)
	}
}

func TestMissingInput(t *testing.T) {
	srv := New(Options{GraphMLPath: filepath.Join(t.TempDir(), "absent.graphml")})
	rec := get(t, srv.Router(), "/api/stats")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
