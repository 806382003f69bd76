package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/probemap/pkg/aggregate"
	"github.com/matzehuels/probemap/pkg/dataset"
	"github.com/matzehuels/probemap/pkg/pipeline"
)

// countsCommand creates the counts command.
func (c *CLI) countsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "counts [dataset]",
		Short: "Print how many agencies investigate each company",
		Long: `Print how many agencies investigate each company.

Companies are listed in ranking order, most investigated first, which is
also their top-to-bottom order in the rendered diagram.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCounts(cmd.Context(), datasetArg(args), plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "tab-separated output without borders")

	return cmd
}

// countRow is one line of the counts table.
type countRow struct {
	Rank          int
	Company       string
	Count         int
	Caption       string
	Investigators []string
}

// countRows builds the table rows for a dataset in ranking order.
func countRows(ds *dataset.Dataset, ranking []string, counts aggregate.Counts) []countRow {
	rows := make([]countRow, 0, len(ranking))
	for i, name := range ranking {
		var who []string
		for _, agency := range aggregate.Investigators(ds, name) {
			a, _ := ds.Agency(agency)
			who = append(who, a.Label())
		}
		n := counts.Of(name)
		rows = append(rows, countRow{
			Rank:          i + 1,
			Company:       name,
			Count:         n,
			Caption:       aggregate.Caption(n),
			Investigators: who,
		})
	}
	return rows
}

func (c *CLI) runCounts(ctx context.Context, source string, plain bool) error {
	logger := loggerFromContext(ctx)
	runner := pipeline.NewRunner(nil, nil, logger)
	defer runner.Close()

	result, err := runner.Prepare(ctx, pipeline.Options{Source: source, Logger: logger})
	if err != nil {
		return err
	}

	rows := countRows(result.Dataset, result.Layout.Ranking, result.Counts)
	if plain {
		fmt.Print(plainCounts(rows))
		return nil
	}
	fmt.Println(countsTable(rows))
	printDetail("%d relations across %d agencies", result.Counts.Total(), len(result.Dataset.Agencies))
	return nil
}

// plainCounts formats rows as tab-separated lines.
func plainCounts(rows []countRow) string {
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%d\t%s\t%d\t%s\n", r.Rank, r.Company, r.Count, strings.Join(r.Investigators, ","))
	}
	return b.String()
}

// countsTable renders rows as a bordered lipgloss table.
func countsTable(rows []countRow) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.Itoa(r.Rank),
			r.Company,
			strconv.Itoa(r.Count),
			r.Caption,
			strings.Join(r.Investigators, ", "),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Company", "Count", "Caption", "Investigated by").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return StyleNumber
			case col == 4:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}
