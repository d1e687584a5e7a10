package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// plotCommand creates the plot command for the degree-centrality curve.
func (c *CLI) plotCommand() *cobra.Command {
	var (
		format  string
		output  string
		noOpen  bool
		noCache bool
		show    int
	)

	cmd := &cobra.Command{
		Use:   "plot [graph.graphml]",
		Short: "Plot degree centrality on log-log axes",
		Long: `Plot the degree-centrality curve of a GraphML file.

Centrality scores are sorted in descending order and drawn against their
rank on logarithmic axes, which makes heavy-tailed degree distributions
show up as a straight line.`,
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
			if format != "" {
				opts.PlotFormat = format
			}
			if output != "" {
				opts.PlotPath = output
			}
			if noOpen {
				opts.OpenViewer = false
			}
			opts.SetDefaults()

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

			scores, cached, err := runner.Plot(cmd.Context(), g, opts)
			if err != nil {
				return err
			}
			printSuccess("Plotted %d scores", len(scores))
			printArtifact(opts.PlotPath, cached)

			if show > 0 {
				printNewline()
				for i, s := range scores {
					if i >= show {
						break
					}
					printDetail("%2d. %-30s %.4f", i+1, s.Node, s.Value)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "image format: png (default), svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image file")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open the plot with the platform viewer")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&show, "show", 0, "also print the top N scores")

	return cmd
}
