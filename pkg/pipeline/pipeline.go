// Package pipeline orchestrates the four analysis steps.
//
// The steps mirror the conventional workflow for an exported graph:
//
//  1. Layout: render graph/graph.dot to PostScript via a Graphviz engine
//  2. Load: read graph/graph.graphml into memory, report counts
//  3. Profile: measure the graph, write an HTML report
//  4. Plot: degree centrality, sorted, log-log curve
//
// Each step can be run independently or as part of the complete pipeline via
// [Runner.Execute]. Execution is strictly sequential; every step blocks
// until its artifact is on disk. Centralizing this in one Runner keeps the
// CLI and the HTTP server consistent.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/lkirchner/graphlens/pkg/profile"
	"github.com/lkirchner/graphlens/pkg/render"
)

// Default artifact locations, the conventional layout produced by the
// upstream graph exporter.
const (
	DefaultDotPath     = "graph/graph.dot"
	DefaultGraphMLPath = "graph/graph.graphml"
	DefaultPSPath      = "graph/graph.ps"
	DefaultReportPath  = "graph.html"
	DefaultPlotPath    = "graph.png"
)

// DefaultCacheTTL bounds how long rendered artifacts stay cached.
const DefaultCacheTTL = 7 * 24 * time.Hour

// Options configures a pipeline run. Zero values mean defaults.
type Options struct {
	// Inputs
	DotPath     string
	GraphMLPath string

	// Outputs
	PSPath     string
	ReportPath string
	PlotPath   string

	// Step configuration
	Engine     string // graphviz layout engine
	Preset     string // profile preset
	Top        int    // hub table size
	PlotFormat string // png or svg

	// OpenViewer opens the report and plot with the platform viewer.
	OpenViewer bool

	// Logger receives progress output. Nil means the default logger.
	Logger *log.Logger
}

// SetDefaults fills unset fields with the conventional values.
func (o *Options) SetDefaults() {
	if o.DotPath == "" {
		o.DotPath = DefaultDotPath
	}
	if o.GraphMLPath == "" {
		o.GraphMLPath = DefaultGraphMLPath
	}
	if o.PSPath == "" {
		o.PSPath = DefaultPSPath
	}
	if o.ReportPath == "" {
		o.ReportPath = DefaultReportPath
	}
	if o.PlotPath == "" {
		o.PlotPath = DefaultPlotPath
	}
	if o.Engine == "" {
		o.Engine = render.DefaultEngine
	}
	if o.Preset == "" {
		o.Preset = profile.DefaultPreset
	}
	if o.Top <= 0 {
		o.Top = profile.DefaultTopHubs
	}
	if o.PlotFormat == "" {
		o.PlotFormat = "png"
	}
}

// Validate checks the option values that have a closed domain.
func (o *Options) Validate() error {
	if err := render.ValidateEngine(o.Engine); err != nil {
		return err
	}
	if err := profile.ValidatePreset(o.Preset); err != nil {
		return err
	}
	return nil
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}
