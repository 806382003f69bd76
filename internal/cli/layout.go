package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/probemap/pkg/pipeline"
)

// layoutCommand creates the layout command for writing the computed layout.
func (c *CLI) layoutCommand() *cobra.Command {
	var output string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [dataset]",
		Short: "Write the computed layout as JSON",
		Long: `Write the computed layout as JSON.

The layout holds every node position, image extent, label and edge curve in
plot coordinates, plus the aggregate counts and company ranking. It is the
same document 'render -f json' produces, without the theme colours.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = datasetArg(args)
			return c.runLayout(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <input>.layout.json)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "diagram title")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runLayout loads the dataset, computes the layout, and writes it.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string) error {
	opts.Logger = loggerFromContext(ctx)
	runner := pipeline.NewRunner(nil, nil, opts.Logger)
	defer runner.Close()

	result, err := runner.Prepare(ctx, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	data, err := json.MarshalIndent(result.Layout, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	data = append(data, '\n')

	path := output
	if path == "" {
		path = basePath("", opts.Source) + ".layout.json"
	}
	if err := writeFile(path, data); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if path == "-" {
		return nil
	}

	printSuccess("Layout complete")
	printFile(path)
	printStats(result.Stats, false)
	printNewline()
	printNextStep("Render", strings.TrimSpace("probemap render "+opts.Source))
	return nil
}
