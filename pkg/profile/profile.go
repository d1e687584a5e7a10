// Package profile generates structural analysis reports for graphs.
//
// A profile run measures a graph according to a preset and produces a
// self-contained HTML report, the batch counterpart of poking at a graph in
// a notebook. Presets trade run time for depth:
//
//   - minimal: counts, density, degree summary, components
//   - default: minimal plus degree distribution and top hubs
//   - complete: default plus assortativity and an embedded drawing
package profile

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lkirchner/graphlens/pkg/centrality"
	"github.com/lkirchner/graphlens/pkg/errors"
	"github.com/lkirchner/graphlens/pkg/graph"
)

// Presets, in increasing order of depth.
const (
	PresetMinimal  = "minimal"
	PresetDefault  = "default"
	PresetComplete = "complete"
)

// DefaultPreset matches the cheapest preset; profiling is on the critical
// path of every pipeline run.
const DefaultPreset = PresetMinimal

// DefaultTopHubs is the default size of the hub table.
const DefaultTopHubs = 10

// ValidatePreset checks that name is a known preset.
func ValidatePreset(name string) error {
	switch name {
	case PresetMinimal, PresetDefault, PresetComplete:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidPreset,
		"unknown preset %q (valid: minimal, default, complete)", name)
}

// Options configures a profile run.
type Options struct {
	Preset string // minimal, default, or complete
	Top    int    // hub table size; 0 means DefaultTopHubs

	// GraphSVG, when non-empty, is embedded into complete reports.
	// Callers produce it with the embedded renderer.
	GraphSVG []byte
}

// Report is the result of a profile run.
type Report struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Input     string    `json:"input"`
	Preset    string    `json:"preset"`

	Stats      Stats              `json:"stats"`
	DegreeDist []DegreeBucket     `json:"degree_dist,omitempty"`
	Hubs       []centrality.Score `json:"hubs,omitempty"`

	graphSVG template.HTML
	hasAssrt bool
}

// Run profiles the graph according to opts. input names the source file and
// appears in the report header only.
func Run(g *graph.Graph, input string, opts Options) (*Report, error) {
	preset := opts.Preset
	if preset == "" {
		preset = DefaultPreset
	}
	if err := ValidatePreset(preset); err != nil {
		return nil, err
	}
	top := opts.Top
	if top <= 0 {
		top = DefaultTopHubs
	}

	r := &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Input:     input,
		Preset:    preset,
		Stats:     ComputeStats(g),
	}

	if preset == PresetDefault || preset == PresetComplete {
		r.DegreeDist = DegreeDistribution(g)
		hubs := centrality.Sorted(centrality.Degree(g))
		if len(hubs) > top {
			hubs = hubs[:top]
		}
		r.Hubs = hubs
	}

	if preset == PresetComplete {
		r.Stats.Assortativity = Assortativity(g)
		r.hasAssrt = true
		if len(opts.GraphSVG) > 0 {
			r.graphSVG = template.HTML(opts.GraphSVG) // #nosec G203 -- renderer output, not user input
		}
	}

	return r, nil
}

// WriteHTML renders the report as a standalone HTML document.
func (r *Report) WriteHTML(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}

// WriteHTMLFile writes the report to path, create-once semantics: an
// existing report at the same path is replaced.
func (r *Report) WriteHTMLFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.WriteHTML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// HasSection reports whether the preset includes the named report section.
// Used by the HTML template and the serve API.
func (r *Report) HasSection(name string) bool {
	switch name {
	case "distribution", "hubs":
		return r.Preset == PresetDefault || r.Preset == PresetComplete
	case "assortativity", "drawing":
		return r.Preset == PresetComplete
	}
	return false
}

// GraphSVG returns the embedded drawing, if any.
func (r *Report) GraphSVG() template.HTML { return r.graphSVG }

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(f float64) string { return fmt.Sprintf("%.2f%%", f*100) },
	"f4":  formatFloat,
}).Parse(reportHTML))
