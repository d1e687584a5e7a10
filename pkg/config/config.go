// Package config loads optional TOML configuration for graphlens.
//
// The tool works without any configuration; a graphlens.toml in the working
// directory overrides the built-in defaults, and command-line flags override
// both. Example:
//
//	[paths]
//	dot = "graph/graph.dot"
//	graphml = "graph/graph.graphml"
//
//	[layout]
//	engine = "circo"
//
//	[profile]
//	preset = "minimal"
//	top = 10
//
//	[cache]
//	backend = "file"        # file, redis, none
//	redis_addr = "localhost:6379"
//
//	[store]
//	backend = "file"        # file, mongo
//	mongo_uri = "mongodb://localhost:27017"
//	mongo_db = "graphlens"
//
//	[viewer]
//	enabled = true
//	command = ""            # empty: platform default opener
//
//	[serve]
//	addr = ":8080"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lkirchner/graphlens/pkg/profile"
	"github.com/lkirchner/graphlens/pkg/render"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "graphlens.toml"

// Config is the full configuration tree.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Layout  Layout  `toml:"layout"`
	Profile Profile `toml:"profile"`
	Cache   Cache   `toml:"cache"`
	Store   Store   `toml:"store"`
	Viewer  Viewer  `toml:"viewer"`
	Serve   Serve   `toml:"serve"`
}

// Paths locates the input and output artifacts.
type Paths struct {
	Dot     string `toml:"dot"`
	GraphML string `toml:"graphml"`
	PS      string `toml:"ps"`
	Report  string `toml:"report"`
	Plot    string `toml:"plot"`
}

// Layout configures the layout step.
type Layout struct {
	Engine string `toml:"engine"`
}

// Profile configures the profiling step.
type Profile struct {
	Preset string `toml:"preset"`
	Top    int    `toml:"top"`
}

// Cache selects the artifact cache backend.
type Cache struct {
	Backend   string `toml:"backend"` // file, redis, none
	RedisAddr string `toml:"redis_addr"`
}

// Store selects the run-history backend.
type Store struct {
	Backend  string `toml:"backend"` // file, mongo
	MongoURI string `toml:"mongo_uri"`
	MongoDB  string `toml:"mongo_db"`
}

// Viewer configures opening artifacts after producing them.
type Viewer struct {
	Enabled bool   `toml:"enabled"`
	Command string `toml:"command"`
}

// Serve configures the HTTP server.
type Serve struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration. The fixed graph/ paths come
// from the conventional layout this tool is pointed at.
func Default() Config {
	return Config{
		Paths: Paths{
			Dot:     "graph/graph.dot",
			GraphML: "graph/graph.graphml",
			PS:      "graph/graph.ps",
			Report:  "graph.html",
			Plot:    "graph.png",
		},
		Layout:  Layout{Engine: render.DefaultEngine},
		Profile: Profile{Preset: profile.DefaultPreset, Top: profile.DefaultTopHubs},
		Cache:   Cache{Backend: "file", RedisAddr: "localhost:6379"},
		Store:   Store{Backend: "file", MongoURI: "mongodb://localhost:27017", MongoDB: "graphlens"},
		Viewer:  Viewer{Enabled: true},
		Serve:   Serve{Addr: ":8080"},
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error; the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
