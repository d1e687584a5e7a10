// Package cache provides artifact caching for the analysis pipeline.
//
// Rendering a large graph to PostScript or recomputing a profile report is
// slow; results only depend on the input file contents and the options used,
// so they are cached keyed by content hash. Backends: file (default), redis
// (shared deployments), and null (caching disabled).
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts distinguishes cached layout renderings.
type ArtifactKeyOpts struct {
	Engine string // graphviz layout engine (circo, dot, ...)
	Format string // output format (ps, svg, png)
}

// ReportKeyOpts distinguishes cached profile reports.
type ReportKeyOpts struct {
	Preset string // analysis preset (minimal, default, complete)
	Top    int    // hub table size
}

// PlotKeyOpts distinguishes cached degree plots.
type PlotKeyOpts struct {
	Format string // output format (png, svg)
}

// Keyer generates cache keys. Implementations must be deterministic:
// equal inputs produce equal keys.
type Keyer interface {
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
	ReportKey(inputHash string, opts ReportKeyOpts) string
	PlotKey(inputHash string, opts PlotKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered layout artifact.
func (k *DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}

// ReportKey generates a key for a profile report.
func (k *DefaultKeyer) ReportKey(inputHash string, opts ReportKeyOpts) string {
	return hashKey("report", inputHash, opts)
}

// PlotKey generates a key for a degree plot.
func (k *DefaultKeyer) PlotKey(inputHash string, opts PlotKeyOpts) string {
	return hashKey("plot", inputHash, opts)
}
