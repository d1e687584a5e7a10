package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lkirchner/graphlens/internal/server"
	"github.com/lkirchner/graphlens/pkg/profile"
)

// serveCommand creates the serve command for the HTTP report server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		preset  string
		top     int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [graph.graphml]",
		Short: "Serve the profile report over HTTP",
		Long: `Serve the profile report over HTTP.

Routes:

  /           the HTML profile report
  /plot.png   the degree-centrality plot
  /api/stats  structural statistics as JSON
  /healthz    liveness probe

Responses are regenerated when the GraphML file changes; unchanged
content is served from the cache.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			graphml := cfg.Paths.GraphML
			if len(args) > 0 {
				graphml = args[0]
			}
			if addr == "" {
				addr = cfg.Serve.Addr
			}
			if preset == "" {
				preset = cfg.Profile.Preset
			}
			if top <= 0 {
				top = cfg.Profile.Top
			}
			if err := profile.ValidatePreset(preset); err != nil {
				return err
			}

			cch, err := c.newCache(cmd, cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}
			defer cch.Close()

			srv := server.New(server.Options{
				GraphMLPath: graphml,
				Preset:      preset,
				Top:         top,
				Cache:       cch,
				Logger:      c.Logger,
			})

			printInfo("Serving %s", graphml)
			printDetail("http://localhost%s/", addr)
			c.Logger.Info("listening", "addr", addr)
			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default :8080)")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "report preset: minimal (default), default, complete")
	cmd.Flags().IntVar(&top, "top", 0, "number of hub nodes in the hub table")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response caching")

	return cmd
}
