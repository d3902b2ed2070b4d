package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/draftsaver/internal/label"
	"github.com/nao1215/draftsaver/internal/model"
	"github.com/nao1215/draftsaver/internal/report"
)

// DefaultDirPerm is the permission used when creating the output directory.
const DefaultDirPerm os.FileMode = 0750

// EnsureDirStep creates the job's output directory if it is missing.
// An existing directory is left untouched.
type EnsureDirStep struct {
	perm   os.FileMode
	logger *slog.Logger
}

// NewEnsureDirStep creates a step that creates directories with perm.
func NewEnsureDirStep(perm os.FileMode, logger *slog.Logger) *EnsureDirStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnsureDirStep{perm: perm, logger: logger}
}

// Name returns the step name.
func (s *EnsureDirStep) Name() string {
	return model.StepEnsureOutputDir
}

// Do executes the directory step.
func (s *EnsureDirStep) Do(_ context.Context, job *model.SaveJob) error {
	if err := os.MkdirAll(job.OutputDir, s.perm); err != nil {
		return writeFailure(s.Name(), job.OutputDir, err)
	}
	s.logger.Debug("output directory ready", "dir", job.OutputDir)
	return nil
}

// FileNamesStep fills in the job's output paths from its label and clock.
type FileNamesStep struct{}

// NewFileNamesStep creates a filename step.
func NewFileNamesStep() *FileNamesStep {
	return &FileNamesStep{}
}

// Name returns the step name.
func (s *FileNamesStep) Name() string {
	return model.StepFileNames
}

// Do executes the filename step.
func (s *FileNamesStep) Do(_ context.Context, job *model.SaveJob) error {
	document, table := report.FileNames(job.Label, job.Now)
	job.DocumentPath = filepath.Join(job.OutputDir, document)
	job.TablePath = filepath.Join(job.OutputDir, table)
	return nil
}

// WriteStep renders the job's records with one report format and saves
// them to a file, then prints a confirmation line.
type WriteStep struct {
	name    string
	factory report.WriterFactory
	path    func(job *model.SaveJob) string
	confirm string
	stdout  io.Writer
	logger  *slog.Logger
}

// NewDocumentStep creates the step that writes the Markdown document.
func NewDocumentStep(cfg *DefaultPipelineConfig) *WriteStep {
	return &WriteStep{
		name:    model.StepWriteDocument,
		factory: report.NewMarkdownWriterFactory(cfg.reportOptions()...),
		path:    func(job *model.SaveJob) string { return job.DocumentPath },
		confirm: cfg.Labels.DocumentSaved,
		stdout:  cfg.Stdout,
		logger:  cfg.logger(),
	}
}

// NewTableStep creates the step that writes the TSV table.
func NewTableStep(cfg *DefaultPipelineConfig) *WriteStep {
	return &WriteStep{
		name:    model.StepWriteTable,
		factory: report.NewTSVWriterFactory(cfg.reportOptions()...),
		path:    func(job *model.SaveJob) string { return job.TablePath },
		confirm: cfg.Labels.TableSaved,
		stdout:  cfg.Stdout,
		logger:  cfg.logger(),
	}
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return s.name
}

// Do executes the write step.
func (s *WriteStep) Do(_ context.Context, job *model.SaveJob) error {
	path := s.path(job)
	if path == "" {
		return writeFailure(s.Name(), "(unnamed)", fmt.Errorf("output path not set"))
	}

	n, err := report.WriteFile(path, job.Records, s.factory)
	if err != nil {
		return writeFailure(s.Name(), path, err)
	}

	s.logger.Debug("file written", "path", path, "bytes", n)
	fmt.Fprintf(s.stdout, s.confirm+"\n", path)
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// Labels selects headings, field names and confirmation lines.
	Labels *label.Set

	// Stdout receives the confirmation line after each file is written.
	Stdout io.Writer

	// Clock stamps the document's generation time.
	Clock func() time.Time

	// DirPerm is the permission for a newly created output directory.
	DirPerm os.FileMode

	// Logger is used by steps for debug output.
	Logger *slog.Logger
}

// reportOptions returns the writer options derived from the config.
func (c *DefaultPipelineConfig) reportOptions() []report.Option {
	return []report.Option{
		report.WithLabels(c.Labels),
		report.WithClock(c.Clock),
	}
}

// logger returns the configured logger or slog.Default().
func (c *DefaultPipelineConfig) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineLabels sets the label set.
func WithPipelineLabels(labels *label.Set) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		if labels != nil {
			c.Labels = labels
		}
	}
}

// WithPipelineStdout sets the destination of confirmation lines.
func WithPipelineStdout(w io.Writer) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		if w != nil {
			c.Stdout = w
		}
	}
}

// WithPipelineClock sets the clock used for the document timestamp.
func WithPipelineClock(now func() time.Time) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		if now != nil {
			c.Clock = now
		}
	}
}

// WithPipelineDirPerm sets the permission for a new output directory.
func WithPipelineDirPerm(perm os.FileMode) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.DirPerm = perm
	}
}

// WithPipelineLogger sets the logger used by the steps.
func WithPipelineLogger(logger *slog.Logger) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Logger = logger
	}
}

// DefaultPipeline creates a pipeline with the save steps in their required
// order: directory, filenames, document, table.
//
// The first parameter accepts pipeline options (WithLogger, etc).
// The variadic parameter accepts step config options (WithPipelineLabels, etc).
func DefaultPipeline(pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{
		Labels:  label.Default(),
		Stdout:  os.Stdout,
		Clock:   time.Now,
		DirPerm: DefaultDirPerm,
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	p.AddSteps(
		NewEnsureDirStep(cfg.DirPerm, cfg.logger()),
		NewFileNamesStep(),
		NewDocumentStep(cfg),
		NewTableStep(cfg),
	)

	return p
}
