package config

import (
	"errors"

	"github.com/nao1215/draftsaver/internal/label"
)

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is().
var (
	// ErrEmptyOutputDir is returned when the output directory is empty.
	ErrEmptyOutputDir = errors.New("invalid output directory: must not be empty")

	// ErrConflictingSources is returned when both an input file and sample
	// data are requested.
	ErrConflictingSources = errors.New("conflicting sources: an input file and sample data cannot be used together")

	// ErrNoSource is returned when neither an input file nor sample data is
	// requested.
	ErrNoSource = errors.New("no source specified: provide an input file or use sample data")

	// ErrUnsupportedLanguage is returned when Language matches no label set.
	ErrUnsupportedLanguage = label.ErrUnsupportedLanguage
)
