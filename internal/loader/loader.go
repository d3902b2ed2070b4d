package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/draftsaver/internal/model"
)

// Source selects where the drafts come from.
// Exactly one of Path or UseSample should be set; UseSample wins if both are.
type Source struct {
	// Path is the input file to parse.
	Path string

	// UseSample requests the built-in sample drafts.
	UseSample bool
}

// Result is the outcome of a successful Load.
type Result struct {
	// Records holds the parsed drafts.
	Records *model.RecordSet

	// Label is the content label for output filenames: the input file's
	// base name without its extension, or model.SampleLabel.
	Label string
}

// Loader reads drafts from a Source.
type Loader struct {
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Load is a convenience wrapper around New(opts...).Load(src).
func Load(src Source, opts ...Option) (*Result, error) {
	return New(opts...).Load(src)
}

// Load returns the drafts selected by src.
func (l *Loader) Load(src Source) (*Result, error) {
	if src.UseSample {
		l.logger.Debug("using sample drafts", "label", model.SampleLabel)
		return &Result{
			Records: model.SampleRecordSet(),
			Label:   model.SampleLabel,
		}, nil
	}

	if src.Path == "" {
		return nil, ErrNoSource
	}

	records, err := l.loadFile(src.Path)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Records: records,
		Label:   LabelFromPath(src.Path),
	}

	l.logger.Debug("loaded drafts",
		"path", src.Path,
		"label", result.Label,
		model.GroupXPosts.String(), records.Len(model.GroupXPosts),
		model.GroupThreadsPosts.String(), records.Len(model.GroupThreadsPosts),
		model.GroupSatireImages.String(), records.Len(model.GroupSatireImages),
	)
	l.logRecords(records)

	return result, nil
}

// logRecords logs each record at debug level. Long text is condensed by
// the logger's handler.
func (l *Loader) logRecords(records *model.RecordSet) {
	for _, platform := range model.Platforms() {
		posts, _ := records.Posts(platform)
		for i, post := range posts {
			l.logger.Debug("loaded post",
				"group", platform.GroupKey().String(),
				"index", i+1,
				"content", post.Content,
			)
		}
	}
	images, _ := records.SatireImages()
	for i, image := range images {
		l.logger.Debug("loaded satire image",
			"index", i+1,
			"title", image.Title,
			"prompt", image.Prompt,
		)
	}
}

// loadFile reads and parses the input file at path.
func (l *Loader) loadFile(path string) (*model.RecordSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat input file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrMalformed, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	parse := Parse
	if isJSON(path) {
		parse = ParseJSON
	}

	records, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// isJSON reports whether path has a .json extension.
func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// LabelFromPath derives the content label from an input path: the base name
// with its final extension removed. A name that is only an extension, such
// as ".drafts", is kept whole.
func LabelFromPath(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
