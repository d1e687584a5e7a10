package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lkirchner/graphlens/pkg/cache"
	"github.com/lkirchner/graphlens/pkg/centrality"
	"github.com/lkirchner/graphlens/pkg/graph"
	"github.com/lkirchner/graphlens/pkg/graphio"
	"github.com/lkirchner/graphlens/pkg/plot"
	"github.com/lkirchner/graphlens/pkg/profile"
	"github.com/lkirchner/graphlens/pkg/render"
	"github.com/lkirchner/graphlens/pkg/store"
	"github.com/lkirchner/graphlens/pkg/viewer"
)

// Result is the outcome of a full pipeline run.
type Result struct {
	Graph  *graph.Graph
	Report *profile.Report
	Scores []centrality.Score // sorted descending

	// LayoutCached and PlotCached report artifact cache hits.
	LayoutCached bool
	PlotCached   bool
}

// Runner executes pipeline steps with shared cache, history, and process
// plumbing. The zero dependencies are all optional: a nil cache disables
// caching, a nil store disables history, a nil logger uses the default.
type Runner struct {
	cache  cache.Cache
	keyer  cache.Keyer
	runs   store.Store
	exec   render.Executor
	viewer *viewer.Viewer
	logger *log.Logger
}

// NewRunner creates a pipeline runner.
func NewRunner(c cache.Cache, runs store.Store, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		cache:  c,
		keyer:  cache.NewDefaultKeyer(),
		runs:   runs,
		exec:   render.NewExecutor(),
		logger: logger,
	}
}

// SetExecutor replaces the process executor. Used by tests and by callers
// that need to sandbox external commands.
func (r *Runner) SetExecutor(e render.Executor) {
	r.exec = e
	r.viewer = nil
}

// SetViewer replaces the artifact viewer.
func (r *Runner) SetViewer(v *viewer.Viewer) { r.viewer = v }

// Close releases the cache and history backends.
func (r *Runner) Close() error {
	var first error
	if err := r.cache.Close(); err != nil {
		first = err
	}
	if r.runs != nil {
		if err := r.runs.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Layout renders the DOT input to PostScript. On a cache hit the stored
// artifact is written without spawning the layout engine. Returns whether
// the artifact came from cache.
func (r *Runner) Layout(ctx context.Context, opts Options) (bool, error) {
	opts.SetDefaults()
	if err := render.ValidateEngine(opts.Engine); err != nil {
		return false, err
	}

	key := r.artifactKey(opts.DotPath, opts.Engine)
	if key != "" {
		if data, hit, cerr := r.cache.Get(ctx, key); cerr == nil && hit {
			if err := writeArtifact(opts.PSPath, data); err != nil {
				return false, err
			}
			r.logger.Debug("layout artifact from cache", "path", opts.PSPath)
			return true, nil
		}
	}

	renderer, err := render.NewExternalRenderer(opts.Engine, r.exec)
	if err != nil {
		return false, err
	}
	if err := ensureDir(opts.PSPath); err != nil {
		return false, err
	}
	r.logger.Debug("rendering layout", "engine", opts.Engine, "input", opts.DotPath)
	if err := renderer.RenderPS(ctx, opts.DotPath, opts.PSPath); err != nil {
		return false, err
	}

	if key != "" {
		if data, rerr := os.ReadFile(opts.PSPath); rerr == nil {
			if cerr := r.cache.Set(ctx, key, data, DefaultCacheTTL); cerr != nil {
				r.logger.Debug("cache write failed", "err", cerr)
			}
		}
	}
	return false, nil
}

// LoadGraph reads the GraphML input into memory.
func (r *Runner) LoadGraph(ctx context.Context, opts Options) (*graph.Graph, error) {
	opts.SetDefaults()
	g, err := graphio.ReadGraphMLFile(opts.GraphMLPath)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

// Profile measures the graph, writes the HTML report, and records the run
// in history. The complete preset additionally embeds a drawing rendered
// in-process from the DOT input when it is available.
func (r *Runner) Profile(ctx context.Context, g *graph.Graph, opts Options) (*profile.Report, error) {
	opts.SetDefaults()

	popts := profile.Options{Preset: opts.Preset, Top: opts.Top}
	if opts.Preset == profile.PresetComplete {
		if svg := r.renderDrawing(ctx, opts); svg != nil {
			popts.GraphSVG = svg
		}
	}

	report, err := profile.Run(g, opts.GraphMLPath, popts)
	if err != nil {
		return nil, err
	}
	if err := ensureDir(opts.ReportPath); err != nil {
		return nil, err
	}
	if err := report.WriteHTMLFile(opts.ReportPath); err != nil {
		return nil, err
	}
	r.logger.Debug("report written", "path", opts.ReportPath, "run", report.ID)

	if r.runs != nil {
		rec := store.Run{
			ID:         report.ID,
			Input:      opts.GraphMLPath,
			Preset:     report.Preset,
			Nodes:      g.NodeCount(),
			Edges:      g.EdgeCount(),
			ReportPath: opts.ReportPath,
			CreatedAt:  report.CreatedAt,
		}
		if err := r.runs.Record(ctx, rec); err != nil {
			r.logger.Warn("recording run history failed", "err", err)
		}
	}

	if opts.OpenViewer {
		r.open(ctx, opts, opts.ReportPath)
	}
	return report, nil
}

// Plot computes degree centrality, writes the log-log curve, and returns
// the sorted scores. Returns whether the plot image came from cache.
func (r *Runner) Plot(ctx context.Context, g *graph.Graph, opts Options) ([]centrality.Score, bool, error) {
	opts.SetDefaults()

	scores := centrality.Sorted(centrality.Degree(g))

	cached := false
	key := r.plotKey(opts.GraphMLPath, opts.PlotFormat)
	if key != "" {
		if data, hit, cerr := r.cache.Get(ctx, key); cerr == nil && hit {
			if err := writeArtifact(opts.PlotPath, data); err != nil {
				return nil, false, err
			}
			cached = true
		}
	}
	if !cached {
		if err := ensureDir(opts.PlotPath); err != nil {
			return nil, false, err
		}
		if err := plot.WriteFile(scores, opts.PlotPath, opts.PlotFormat); err != nil {
			return nil, false, err
		}
		if key != "" {
			if data, rerr := os.ReadFile(opts.PlotPath); rerr == nil {
				if cerr := r.cache.Set(ctx, key, data, DefaultCacheTTL); cerr != nil {
					r.logger.Debug("cache write failed", "err", cerr)
				}
			}
		}
	}
	r.logger.Debug("plot written", "path", opts.PlotPath, "cached", cached)

	if opts.OpenViewer {
		r.open(ctx, opts, opts.PlotPath)
	}
	return scores, cached, nil
}

// Execute runs the four steps in order and returns the combined result.
// The first failing step aborts the run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}

	layoutCached, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, err
	}
	res.LayoutCached = layoutCached

	g, err := r.LoadGraph(ctx, opts)
	if err != nil {
		return nil, err
	}
	res.Graph = g

	report, err := r.Profile(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	res.Report = report

	scores, plotCached, err := r.Plot(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	res.Scores = scores
	res.PlotCached = plotCached

	return res, nil
}

// renderDrawing renders the DOT input to SVG in-process for embedding into
// complete reports. Failures are soft: reports work without a drawing.
func (r *Runner) renderDrawing(ctx context.Context, opts Options) []byte {
	if _, err := os.Stat(opts.DotPath); err != nil {
		return nil
	}
	er, err := render.NewEmbeddedRenderer(opts.Engine)
	if err != nil {
		return nil
	}
	dot, err := os.ReadFile(opts.DotPath)
	if err != nil {
		return nil
	}
	svg, err := er.Render(ctx, dot, render.FormatSVG)
	if err != nil {
		r.logger.Debug("embedded drawing failed", "err", err)
		return nil
	}
	return svg
}

// open launches the viewer for an artifact. Viewer failures are warnings;
// the artifact is already on disk.
func (r *Runner) open(ctx context.Context, opts Options, path string) {
	v := r.viewer
	if v == nil {
		v = viewer.New("", r.exec)
	}
	if err := v.Open(ctx, path); err != nil {
		r.logger.Warn("could not open viewer", "path", path, "err", err)
	}
}

// artifactKey derives the layout cache key from the DOT file contents.
// Unreadable input returns an empty key: the renderer will produce the
// proper error.
func (r *Runner) artifactKey(dotPath, engine string) string {
	h, err := cache.HashFile(dotPath)
	if err != nil {
		return ""
	}
	return r.keyer.ArtifactKey(h, cache.ArtifactKeyOpts{Engine: engine, Format: render.FormatPS})
}

// plotKey derives the plot cache key from the GraphML file contents.
func (r *Runner) plotKey(graphmlPath, format string) string {
	h, err := cache.HashFile(graphmlPath)
	if err != nil {
		return ""
	}
	return r.keyer.PlotKey(h, cache.PlotKeyOpts{Format: format})
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

func writeArtifact(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
