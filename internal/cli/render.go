package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/probemap/pkg/errors"
	"github.com/matzehuels/probemap/pkg/pipeline"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

// renderFlags holds the render command's flags that are not pipeline options.
type renderFlags struct {
	formats string
	output  string
	noCache bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render the agency/company diagram",
		Long: `Render the agency/company diagram.

The dataset is a TOML, YAML or JSON file (see 'probemap export'). Without an
argument the built-in dataset is drawn.

Images named in the dataset are looked up relative to --assets; missing
images are skipped. The font falls back to a bundled one if the requested
font cannot be found.

Formats:
  svg    vector image with embedded images and font
  png    raster image
  pdf    requires rsvg-convert (librsvg)
  json   computed layout
  dot    Graphviz source of a plain node-link view
  graph  that node-link view rendered as SVG`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(flags.formats)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if flags.output == "-" && len(opts.Formats) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "stdout output takes a single format")
			}
			opts.Source = datasetArg(args)
			return c.runRender(cmd.Context(), opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames, ", ")+" (comma-separated, default svg)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even if cached")

	cmd.Flags().StringVar(&opts.Theme, "theme", "", "colour theme: "+strings.Join(theme.Names(), ", ")+" (default from dataset, else "+pipeline.DefaultTheme+")")
	cmd.Flags().StringVar(&opts.Title, "title", "", "diagram title")
	cmd.Flags().StringVar(&opts.AssetDir, "assets", "", "directory holding seal and logo images (default: working directory)")
	cmd.Flags().StringVar(&opts.Font, "font", "", "font file name or path (default from dataset, else "+pipeline.DefaultFont+")")
	cmd.Flags().Float64Var(&opts.Width, "width", pipeline.DefaultWidth, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", pipeline.DefaultHeight, "canvas height in pixels")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// addLayoutFlags registers the geometry flags shared by render, layout and show.
func addLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "vertical distance between agencies (default 2)")
	cmd.Flags().Float64Var(&opts.FanStep, "fan-step", 0, "midpoint drop per additional edge into a company (default 0.3)")
}

// runRender executes the pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, flags renderFlags) error {
	logger := loggerFromContext(ctx)
	runner, err := newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = logger
	prog := newProgress(logger)

	spin := newSpinner(ctx, os.Stderr, "Rendering diagram...")
	spin.start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spin.fail("Render failed")
		return err
	}
	spin.stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Source,
		output:    flags.output,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(paths)))
	if flags.output == "-" {
		return nil
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats, result.CacheInfo.RenderHit)
	if result.Font != nil && result.Font.Fallback {
		printWarning("font %s not found, used %s", result.Font.Requested, result.Font.Family)
	}
	return nil
}
