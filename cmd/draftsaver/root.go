package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nao1215/draftsaver/internal/config"
	"github.com/spf13/cobra"
)

// reportedError marks an error whose message has already been printed to
// the user. Execute exits with a failure status without printing it again.
type reportedError struct {
	err error
}

// Error implements error.
func (e *reportedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error.
func (e *reportedError) Unwrap() error {
	return e.err
}

// NewRootCmd creates the root command for draftsaver.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draftsaver [input-file]",
		Short: "Save social media post drafts as Markdown and TSV",
		Long: `draftsaver converts post drafts for 𝕏 and Threads, plus satire image
prompts, into two files in the output directory:

  YYYYMMDD_<label>.md   a readable document, one section per platform
  YYYYMMDD_<label>.tsv  a table, one row per draft

The label is the input file name without its extension. The input file is
JSON or YAML with the optional keys x_posts, threads_posts and satire_images.
Without an input file, built-in sample drafts are saved.

Examples:
  # Save the sample drafts to ./03_OUTPUT
  draftsaver

  # Save drafts from a file with English headings
  draftsaver -l en campaign.json

  # Write to another directory
  draftsaver -o ~/drafts campaign.yaml`,
		Version:       getVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSaveCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log output as JSON")
	cmd.PersistentFlags().String("log-file", "", "Write log output to a rotating file instead of stderr")

	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Directory the Markdown and TSV files are written to (created if missing)")
	cmd.Flags().StringP("lang", "l", config.DefaultLanguage,
		"Language of headings and messages (ja, en)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .draftsaver in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewSampleCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
