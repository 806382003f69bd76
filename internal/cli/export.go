package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/probemap/pkg/dataset"
)

// exportCommand creates the command that writes the built-in dataset.
func (c *CLI) exportCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in dataset as an editable file",
		Long: `Write the built-in dataset as an editable file.

The format follows the output extension (.toml, .yaml, .yml, .json) unless
--format is given. Without --output the dataset is printed to stdout as TOML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "dataset format: toml, yaml, json")

	return cmd
}

// exportFormat picks the dataset format from the flag or the output path.
func exportFormat(output, format string) (string, error) {
	if format != "" {
		return format, nil
	}
	if output == "" || output == "-" {
		return dataset.FormatTOML, nil
	}
	return dataset.FormatFromPath(output)
}

func runExport(output, format string) error {
	f, err := exportFormat(output, format)
	if err != nil {
		return err
	}
	data, err := dataset.Marshal(dataset.Default(), f)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if output == "" {
		output = "-"
	}
	if err := writeFile(output, data); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	if output != "-" {
		printSuccess("Exported built-in dataset")
		printFile(output)
		printNextStep("Render it", "probemap render "+output)
	}
	return nil
}
