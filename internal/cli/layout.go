package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lkirchner/graphlens/pkg/render"
)

// layoutCommand creates the layout command for rendering a DOT file to
// PostScript with an external graphviz engine.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		engine  string
		format  string
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.dot]",
		Short: "Render a DOT file to PostScript",
		Long: `Render a DOT file to PostScript using a graphviz layout engine.

PostScript output needs the engine binary (circo by default) installed
and on PATH; --format svg or png renders in-process without external
tooling. Rendered PostScript is cached by input content, so repeated
runs on an unchanged graph skip the engine entirely.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := optionsFromConfig(cfg)
			opts.OpenViewer = false
			if len(args) > 0 {
				opts.DotPath = args[0]
			}
			if engine != "" {
				opts.Engine = engine
			}
			if output != "" {
				opts.PSPath = output
			}
			opts.SetDefaults()
			if err := render.ValidateEngine(opts.Engine); err != nil {
				return err
			}
			if format == "" {
				format = render.DefaultFormat
			}
			if err := render.ValidateFormat(format); err != nil {
				return err
			}

			// SVG and PNG render in-process; only PostScript needs the
			// external engine binary.
			if format != render.FormatPS {
				out := output
				if out == "" {
					out = strings.TrimSuffix(opts.PSPath, ".ps") + "." + format
				}
				er, err := render.NewEmbeddedRenderer(opts.Engine)
				if err != nil {
					return err
				}
				if err := er.RenderFile(cmd.Context(), opts.DotPath, out, format); err != nil {
					return err
				}
				printSuccess("Rendered %s", opts.DotPath)
				printFile(out)
				return nil
			}

			runner, err := c.newRunner(cmd, cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			opts.Logger = c.Logger

			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Laying out with %s...", opts.Engine))
			spinner.Start()
			cached, err := runner.Layout(cmd.Context(), opts)
			if err != nil {
				spinner.StopWithError("Layout failed")
				return err
			}
			spinner.StopWithSuccess(fmt.Sprintf("Rendered %s", opts.DotPath))
			printArtifact(opts.PSPath, cached)
			printNewline()
			printNextStep("Inspect the graph structure", "graphlens stats")
			return nil
		},
	}

	cmd.Flags().StringVarP(&engine, "engine", "e", "", "layout engine: circo (default), dot, neato, fdp, twopi")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: ps (default), svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}
