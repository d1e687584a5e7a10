package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lkirchner/graphlens/pkg/graphio"
	"github.com/lkirchner/graphlens/pkg/profile"
)

// statsCommand creates the stats command for printing graph statistics.
func (c *CLI) statsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [graph.graphml]",
		Short: "Print node and edge counts for a GraphML file",
		Long: `Print node and edge counts for a GraphML file.

With --json, the full structural statistics (density, degree summary,
connected components, isolates) are written to stdout as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			path := cfg.Paths.GraphML
			if len(args) > 0 {
				path = args[0]
			}

			g, err := graphio.ReadGraphMLFile(path)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(profile.ComputeStats(g))
			}

			printKeyValue("Nodes", fmt.Sprintf("%d", g.NodeCount()))
			printKeyValue("Edges", fmt.Sprintf("%d", g.EdgeCount()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit full statistics as JSON")

	return cmd
}
