package cli

import (
	"github.com/spf13/cobra"

	"github.com/lkirchner/graphlens/pkg/graphio"
)

// convertCommand creates the convert command for turning a GraphML file into
// DOT, the input format the layout engines consume.
func (c *CLI) convertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert [graph.graphml]",
		Short: "Convert a GraphML file to DOT",
		Long: `Convert a GraphML file to graphviz DOT format.

This bridges the two input files: any GraphML graph can be converted and
then laid out with 'graphlens layout'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			input := cfg.Paths.GraphML
			if len(args) > 0 {
				input = args[0]
			}
			if output == "" {
				output = cfg.Paths.Dot
			}

			g, err := graphio.ReadGraphMLFile(input)
			if err != nil {
				return err
			}
			if err := graphio.WriteDOTFile(output, g); err != nil {
				return err
			}

			printSuccess("Converted %s", input)
			printGraphSummary(g.NodeCount(), g.EdgeCount())
			printFile(output)
			printNewline()
			printNextStep("Lay out the converted graph", "graphlens layout "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output DOT file")

	return cmd
}
