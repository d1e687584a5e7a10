package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// historyCommand creates the history command for listing recorded profile runs.
func (c *CLI) historyCommand() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded profile runs",
		Long: `List recorded profile runs, newest first.

Every 'profile' and 'run' invocation records the run ID, input file,
preset, and graph size. Pass a run ID to show a single run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runs, err := c.newStore(cmd, cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer runs.Close()

			if len(args) == 1 {
				run, err := runs.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(os.Stdout)
					enc.SetIndent("", "  ")
					return enc.Encode(run)
				}
				printKeyValue("ID", run.ID)
				printKeyValue("Input", run.Input)
				printKeyValue("Preset", run.Preset)
				printKeyValue("Nodes", fmt.Sprintf("%d", run.Nodes))
				printKeyValue("Edges", fmt.Sprintf("%d", run.Edges))
				printKeyValue("Report", run.ReportPath)
				printKeyValue("Created", run.CreatedAt.Format(time.RFC3339))
				return nil
			}

			list, err := runs.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}
			if len(list) == 0 {
				printInfo("No runs recorded yet")
				return nil
			}
			for _, run := range list {
				printInfo("%s  %s", run.CreatedAt.Format("2006-01-02 15:04"), run.Input)
				printDetail("%s · %s · %d nodes · %d edges", run.ID, run.Preset, run.Nodes, run.Edges)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit runs as JSON")

	return cmd
}
