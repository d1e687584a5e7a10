// Package server exposes the analysis results over HTTP for environments
// without a desktop viewer. All endpoints are read-only; artifacts are
// generated on demand from the configured inputs and cached by content
// hash, so edits to the input files show up on the next request.
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lkirchner/graphlens/pkg/cache"
	"github.com/lkirchner/graphlens/pkg/centrality"
	"github.com/lkirchner/graphlens/pkg/errors"
	"github.com/lkirchner/graphlens/pkg/graphio"
	"github.com/lkirchner/graphlens/pkg/plot"
	"github.com/lkirchner/graphlens/pkg/profile"
)

const cacheTTL = time.Hour

// Options configures the server.
type Options struct {
	GraphMLPath string
	Preset      string
	Top         int

	// Cache is optional; nil disables response caching.
	Cache  cache.Cache
	Logger *log.Logger
}

// Server serves the profile report, the degree plot, and raw stats.
type Server struct {
	opts   Options
	keyer  cache.Keyer
	logger *log.Logger
}

// New creates a server. Unset options fall back to the usual defaults.
func New(opts Options) *Server {
	if opts.GraphMLPath == "" {
		opts.GraphMLPath = "graph/graph.graphml"
	}
	if opts.Preset == "" {
		opts.Preset = profile.DefaultPreset
	}
	if opts.Top <= 0 {
		opts.Top = profile.DefaultTopHubs
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Server{
		opts: opts,
		// Scoped so served responses never collide with pipeline artifacts
		// in a shared cache.
		keyer:  cache.NewScopedKeyer(cache.NewDefaultKeyer(), "serve:"),
		logger: opts.Logger,
	}
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleReport)
	r.Get("/plot.png", s.handlePlot)
	r.Get("/api/stats", s.handleStats)
	r.Get("/healthz", s.handleHealth)
	return r
}

// ListenAndServe blocks serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("serving analysis results", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	key := ""
	if h, err := cache.HashFile(s.opts.GraphMLPath); err == nil {
		key = s.keyer.ReportKey(h, cache.ReportKeyOpts{Preset: s.opts.Preset, Top: s.opts.Top})
		if data, hit, err := s.opts.Cache.Get(r.Context(), key); err == nil && hit {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(data)
			return
		}
	}

	g, err := graphio.ReadGraphMLFile(s.opts.GraphMLPath)
	if err != nil {
		s.writeError(w, err)
		return
	}
	report, err := profile.Run(g, s.opts.GraphMLPath, profile.Options{Preset: s.opts.Preset, Top: s.opts.Top})
	if err != nil {
		s.writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteHTML(&buf); err != nil {
		s.writeError(w, err)
		return
	}
	if key != "" {
		if err := s.opts.Cache.Set(r.Context(), key, buf.Bytes(), cacheTTL); err != nil {
			s.logger.Debug("report cache write failed", "err", err)
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	key := ""
	if h, err := cache.HashFile(s.opts.GraphMLPath); err == nil {
		key = s.keyer.PlotKey(h, cache.PlotKeyOpts{Format: plot.FormatPNG})
		if data, hit, err := s.opts.Cache.Get(r.Context(), key); err == nil && hit {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(data)
			return
		}
	}

	g, err := graphio.ReadGraphMLFile(s.opts.GraphMLPath)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, err := plot.Render(centrality.Degree(g), plot.FormatPNG)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if key != "" {
		if err := s.opts.Cache.Set(r.Context(), key, data, cacheTTL); err != nil {
			s.logger.Debug("plot cache write failed", "err", err)
		}
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	g, err := graphio.ReadGraphMLFile(s.opts.GraphMLPath)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(profile.ComputeStats(g))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// writeError maps structured error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeFileNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeMalformedGraph, errors.ErrCodeInvalidPreset, errors.ErrCodeInvalidInput:
		status = http.StatusUnprocessableEntity
	}
	s.logger.Error("request failed", "err", err)
	http.Error(w, errors.UserMessage(err), status)
}

