package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lkirchner/graphlens/pkg/profile"
)

// profileCommand creates the profile command for generating an HTML report.
func (c *CLI) profileCommand() *cobra.Command {
	var (
		preset  string
		top     int
		output  string
		noOpen  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "profile [graph.graphml]",
		Short: "Generate an HTML profile report",
		Long: `Generate an HTML profile report for a GraphML file.

Presets control how much the report contains:

  minimal   overview statistics only (default)
  default   adds the degree distribution and hub table
  complete  adds degree assortativity and an embedded graph drawing

Each run is recorded in the history; see 'graphlens history'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := optionsFromConfig(cfg)
			if len(args) > 0 {
				opts.GraphMLPath = args[0]
			}
			if preset != "" {
				opts.Preset = preset
			}
			if top > 0 {
				opts.Top = top
			}
			if output != "" {
				opts.ReportPath = output
			}
			if noOpen {
				opts.OpenViewer = false
			}
			opts.SetDefaults()
			if err := profile.ValidatePreset(opts.Preset); err != nil {
				return err
			}

			runner, err := c.newRunner(cmd, cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			opts.Logger = c.Logger

			g, err := runner.LoadGraph(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printGraphSummary(g.NodeCount(), g.EdgeCount())

			prog := newProgress(c.Logger)
			report, err := runner.Profile(cmd.Context(), g, opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Profiled %d nodes with preset %q", g.NodeCount(), opts.Preset))

			printSuccess("Report written")
			printFile(opts.ReportPath)
			printDetail("Run ID: %s", report.ID)
			printNewline()
			printNextStep("Plot the degree centrality curve", "graphlens plot")
			return nil
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "", "report preset: minimal (default), default, complete")
	cmd.Flags().IntVar(&top, "top", 0, "number of hub nodes in the hub table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output HTML file")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open the report with the platform viewer")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
