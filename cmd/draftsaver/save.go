package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goerrors "github.com/go-errors/errors"
	"github.com/nao1215/draftsaver/internal/config"
	"github.com/nao1215/draftsaver/internal/label"
	"github.com/nao1215/draftsaver/internal/loader"
	"github.com/nao1215/draftsaver/internal/log"
	"github.com/nao1215/draftsaver/internal/model"
	"github.com/nao1215/draftsaver/internal/pipeline"
	"github.com/spf13/cobra"
)

// rule is the separator line around the banner and the completion message.
var rule = strings.Repeat("=", 60)

// runSaveCmd executes the root command.
func runSaveCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logOut := cmd.ErrOrStderr()
	if cfg.LogFile != "" {
		logFile := log.NewRotatingFile(cfg.LogFile)
		defer logFile.Close()
		logOut = logFile
	}
	logger := setupLogger(logOut, cfg)

	// Ctrl-C stops the save between steps.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runSave(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger, time.Now)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on the logging settings.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.JSONLog {
		return log.NewJSONLogger(w, cfg.Verbose)
	}
	return log.NewLogger(w, cfg.Verbose)
}

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags, in that order of precedence.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.JSONLog, err = cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently keep defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	// Only flags the user set override the file.
	if cmd.Flags().Changed("log-file") {
		if cfg.LogFile, err = cmd.Flags().GetString("log-file"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output-dir") {
		if cfg.OutputDir, err = cmd.Flags().GetString("output-dir"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("lang") {
		if cfg.Language, err = cmd.Flags().GetString("lang"); err != nil {
			return nil, err
		}
	}

	if len(args) == 0 {
		cfg.UseSample = true
	} else {
		cfg.InputPath = args[0]
	}

	return cfg, nil
}

// runSave loads the drafts, writes both files and reports the outcome.
// Errors that were already reported on stderr are returned as *reportedError.
func runSave(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, logger *slog.Logger, now func() time.Time) error {
	labels, err := cfg.Labels()
	if err != nil {
		return err
	}

	out := newConsole(stdout)
	errOut := newConsole(stderr)

	out.println(rule)
	out.heading(labels.Banner)
	out.println(rule)
	out.println()

	if cfg.UseSample {
		out.warn(labels.SampleNotice)
		out.println()
	}

	result, err := loader.Load(
		loader.Source{Path: cfg.InputPath, UseSample: cfg.UseSample},
		loader.WithLogger(logger),
	)
	if errors.Is(err, loader.ErrNotFound) {
		errOut.fail(fmt.Sprintf(labels.NotFound, cfg.InputPath))
		return &reportedError{err: err}
	}
	if err != nil {
		return reportFailure(errOut, labels, nil, err)
	}

	job := model.NewSaveJob(result.Records, result.Label, cfg.OutputDir, now())
	logger.Info("saving drafts",
		"label", job.Label,
		"outputDir", job.OutputDir,
		"groups", len(job.Records.Groups()),
	)
	if job.Records.IsEmpty() {
		logger.Warn("input has no draft groups", "label", job.Label)
	}

	p := pipeline.DefaultPipeline(
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipeline.WithPipelineLabels(labels),
		pipeline.WithPipelineStdout(stdout),
		pipeline.WithPipelineClock(now),
		pipeline.WithPipelineLogger(logger),
	)
	if err := p.Execute(ctx, job); err != nil {
		return reportFailure(errOut, labels, job, err)
	}

	out.println()
	out.println(rule)
	out.success(labels.Completed)
	out.println(rule)
	out.printf(labels.DocumentPathLine, job.DocumentPath)
	out.printf(labels.TablePathLine, job.TablePath)

	return nil
}

// reportFailure prints the error line, notes a document that was already
// written, and prints the stack trace. job may be nil when the failure
// happened before any file was written.
func reportFailure(errOut *console, labels *label.Set, job *model.SaveJob, err error) error {
	errOut.fail(fmt.Sprintf(labels.Failure, err))
	if job != nil && job.DocumentWritten() {
		errOut.warn(fmt.Sprintf(labels.PartialDocument, job.DocumentPath))
	}

	trace := pipeline.StackTrace(err)
	if trace == "" {
		trace = goerrors.Wrap(err, 1).ErrorStack()
	}
	fmt.Fprint(errOut.out, trace)

	return &reportedError{err: err}
}
