package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Paths.Dot != "graph/graph.dot" {
		t.Errorf("Paths.Dot = %s", cfg.Paths.Dot)
	}
	if cfg.Paths.Report != "graph.html" {
		t.Errorf("Paths.Report = %s", cfg.Paths.Report)
	}
	if cfg.Layout.Engine != "circo" {
		t.Errorf("Layout.Engine = %s", cfg.Layout.Engine)
	}
	if cfg.Profile.Preset != "minimal" {
		t.Errorf("Profile.Preset = %s", cfg.Profile.Preset)
	}
	if !cfg.Viewer.Enabled {
		t.Error("viewer should be enabled by default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Error("missing file should leave defaults unchanged")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphlens.toml")
	doc := `
[layout]
engine = "dot"

[profile]
preset = "complete"
top = 25

[cache]
backend = "redis"
redis_addr = "cache.internal:6379"

[viewer]
enabled = false
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.Engine != "dot" {
		t.Errorf("Layout.Engine = %s, want dot", cfg.Layout.Engine)
	}
	if cfg.Profile.Preset != "complete" || cfg.Profile.Top != 25 {
		t.Errorf("Profile = %+v", cfg.Profile)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "cache.internal:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Viewer.Enabled {
		t.Error("viewer should be disabled by the file")
	}
	// Untouched sections keep defaults.
	if cfg.Paths.GraphML != "graph/graph.graphml" {
		t.Errorf("Paths.GraphML = %s", cfg.Paths.GraphML)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[layout\nengine="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML should be an error")
	}
}
