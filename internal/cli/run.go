package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lkirchner/graphlens/pkg/profile"
	"github.com/lkirchner/graphlens/pkg/render"
)

// runCommand creates the run command for the full analysis pipeline.
func (c *CLI) runCommand() *cobra.Command {
	var (
		engine  string
		preset  string
		top     int
		noOpen  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full analysis pipeline",
		Long: `Run the full analysis pipeline:

  1. Render graph/graph.dot to graph/graph.ps with the layout engine.
  2. Load graph/graph.graphml and report node and edge counts.
  3. Generate the HTML profile report and open it in the viewer.
  4. Plot degree centrality on log-log axes.

Paths, engine, and preset come from graphlens.toml and can be overridden
with flags. A failed step aborts the remaining ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := optionsFromConfig(cfg)
			if engine != "" {
				opts.Engine = engine
			}
			if preset != "" {
				opts.Preset = preset
			}
			if top > 0 {
				opts.Top = top
			}
			if noOpen {
				opts.OpenViewer = false
			}
			opts.SetDefaults()
			if err := render.ValidateEngine(opts.Engine); err != nil {
				return err
			}
			if err := profile.ValidatePreset(opts.Preset); err != nil {
				return err
			}

			runner, err := c.newRunner(cmd, cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			opts.Logger = c.Logger

			prog := newProgress(c.Logger)
			res, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			prog.done("Pipeline finished")

			printSuccess("Analyzed %s", opts.GraphMLPath)
			printGraphSummary(res.Graph.NodeCount(), res.Graph.EdgeCount())
			printArtifact(opts.PSPath, res.LayoutCached)
			printArtifact(opts.ReportPath, false)
			printArtifact(opts.PlotPath, res.PlotCached)
			printNewline()
			printNextStep("Browse the hubs interactively", "graphlens top")
			return nil
		},
	}

	cmd.Flags().StringVarP(&engine, "engine", "e", "", "layout engine: circo (default), dot, neato, fdp, twopi")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "report preset: minimal (default), default, complete")
	cmd.Flags().IntVar(&top, "top", 0, "number of hub nodes in the hub table")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open artifacts with the platform viewer")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
