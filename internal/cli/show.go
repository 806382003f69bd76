package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/probemap/pkg/pipeline"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

// showCommand creates the interactive viewer command.
func (c *CLI) showCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "show [dataset]",
		Short: "Browse the diagram interactively in the terminal",
		Long: `Browse the diagram interactively in the terminal.

The viewer lists the companies in ranking order. Moving the cursor shows the
agencies investigating the selected company, coloured like their edges in the
rendered diagram. Tab switches to the agency column.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = datasetArg(args)
			return c.runShow(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Theme, "theme", "", "colour theme for agency names")
	cmd.Flags().StringVar(&opts.Title, "title", "", "diagram title")
	addLayoutFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runShow(ctx context.Context, opts pipeline.Options) error {
	opts.Logger = loggerFromContext(ctx)
	runner := pipeline.NewRunner(nil, nil, opts.Logger)
	defer runner.Close()

	result, err := runner.Prepare(ctx, opts)
	if err != nil {
		return err
	}

	name := opts.Theme
	if name == "" {
		name = result.Dataset.Style.Theme
	}
	t, err := theme.Get(name)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewShowModel(result.Dataset, result.Layout, t), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
