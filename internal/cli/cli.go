// Package cli implements the graphlens command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lkirchner/graphlens/pkg/buildinfo"
	"github.com/lkirchner/graphlens/pkg/cache"
	"github.com/lkirchner/graphlens/pkg/config"
	"github.com/lkirchner/graphlens/pkg/pipeline"
	"github.com/lkirchner/graphlens/pkg/render"
	"github.com/lkirchner/graphlens/pkg/store"
	"github.com/lkirchner/graphlens/pkg/viewer"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "graphlens"

	// historyFile is the run-history file name under the data directory.
	historyFile = "runs.json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "graphlens",
		Short: "Graphlens inspects exported graphs",
		Long: `Graphlens turns an exported graph description into pictures and numbers:
a PostScript rendering of the DOT file, structural statistics and an HTML
profile report for the GraphML file, and a log-log degree-centrality plot.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultFile, "configuration file")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.profileCommand())
	root.AddCommand(c.plotCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.topCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file named by --config. A missing file
// yields the defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner wired up from the configuration.
func (c *CLI) newRunner(cmd *cobra.Command, cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	cch, err := c.newCache(cmd, cfg, noCache)
	if err != nil {
		return nil, err
	}
	runs, err := c.newStore(cmd, cfg)
	if err != nil {
		_ = cch.Close()
		return nil, err
	}
	runner := pipeline.NewRunner(cch, runs, c.Logger)
	if cfg.Viewer.Command != "" {
		runner.SetViewer(viewer.New(cfg.Viewer.Command, render.NewExecutor()))
	}
	return runner, nil
}

func (c *CLI) newCache(cmd *cobra.Command, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Backend == "none" {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.Backend == "redis" {
		return cache.NewRedisCache(cmd.Context(), cfg.Cache.RedisAddr, appName+":")
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func (c *CLI) newStore(cmd *cobra.Command, cfg config.Config) (store.Store, error) {
	if cfg.Store.Backend == "mongo" {
		return store.NewMongoStore(cmd.Context(), cfg.Store.MongoURI, cfg.Store.MongoDB)
	}
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	return store.NewFileStore(filepath.Join(dir, historyFile))
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphlens/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// dataDir returns the data directory using XDG standard (~/.local/share/graphlens/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// optionsFromConfig seeds pipeline options from the configuration file.
func optionsFromConfig(cfg config.Config) pipeline.Options {
	return pipeline.Options{
		DotPath:     cfg.Paths.Dot,
		GraphMLPath: cfg.Paths.GraphML,
		PSPath:      cfg.Paths.PS,
		ReportPath:  cfg.Paths.Report,
		PlotPath:    cfg.Paths.Plot,
		Engine:      cfg.Layout.Engine,
		Preset:      cfg.Profile.Preset,
		Top:         cfg.Profile.Top,
		OpenViewer:  cfg.Viewer.Enabled,
	}
}
