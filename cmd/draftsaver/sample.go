package main

import (
	"fmt"
	"os"

	"github.com/nao1215/draftsaver/internal/model"
	"github.com/nao1215/draftsaver/internal/report"
	"github.com/spf13/cobra"
)

// defaultSampleFile is the default path of the exported sample input.
const defaultSampleFile = "sample.json"

// NewSampleCmd creates the sample command.
func NewSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the built-in sample drafts as an input file",
		Long: `Sample writes the drafts used when draftsaver runs without an input file
to a JSON file. Edit it and pass it back to draftsaver to save your own drafts.

Examples:
  # Create sample.json in current directory
  draftsaver sample

  # Choose the file name; it also becomes the label of the output files
  draftsaver sample -o campaign.json
  draftsaver campaign.json`,
		Args: cobra.NoArgs,
		RunE: runSampleCmd,
	}

	cmd.Flags().StringP("output", "o", defaultSampleFile,
		"Output file path for the sample drafts")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing file")

	return cmd
}

// runSampleCmd executes the sample command.
func runSampleCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	factory := report.NewJSONWriterFactory(report.WithPrettyPrint())
	if _, err := report.WriteFile(outputPath, model.SampleRecordSet(), factory); err != nil {
		return fmt.Errorf("failed to write sample drafts: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created sample drafts: %s\n", outputPath)
	return nil
}
