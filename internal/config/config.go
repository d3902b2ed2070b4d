package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/draftsaver/internal/label"
)

// Default configuration values.
const (
	// DefaultOutputDir is the directory output files are written to,
	// relative to the working directory.
	DefaultOutputDir = "03_OUTPUT"

	// DefaultLanguage selects the Japanese label set.
	DefaultLanguage = "ja"

	// AppName is the application name used for XDG directory paths.
	AppName = "draftsaver"
)

// Config holds all configuration options for a draftsaver run.
// It is populated from defaults, the configuration file, and CLI flags, in
// that order of increasing precedence, and passed through the application
// rather than kept in global state.
type Config struct {
	// OutputDir is the directory the Markdown and TSV files are written to.
	// It is created if it does not exist.
	OutputDir string

	// Language is the BCP 47 tag that selects the label set, e.g. "ja" or "en".
	Language string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONLog writes log records as JSON instead of text.
	JSONLog bool

	// LogFile, when set, sends log records to a rotating file instead of
	// standard error.
	LogFile string

	// ConfigFilePath is the explicitly requested configuration file.
	// If empty, the file is searched for; see FindConfigFile.
	ConfigFilePath string

	// InputPath is the drafts file to read. Empty when UseSample is set.
	InputPath string

	// UseSample selects the built-in sample drafts instead of an input file.
	UseSample bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Language:  DefaultLanguage,
	}
}

// ApplyFile copies the values set in f onto c.
// Empty fields in f leave c unchanged.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if f.Language != "" {
		c.Language = f.Language
	}
	if f.LogFile != "" {
		c.LogFile = f.LogFile
	}
}

// Labels returns the label set selected by Language.
func (c *Config) Labels() (*label.Set, error) {
	return label.ForLanguage(c.Language)
}

// XDGConfigDir returns the XDG config directory for draftsaver.
// On Linux: ~/.config/draftsaver
// On macOS: ~/Library/Application Support/draftsaver
// On Windows: %APPDATA%\draftsaver
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the configuration file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return ErrEmptyOutputDir
	}

	if c.UseSample && c.InputPath != "" {
		return ErrConflictingSources
	}

	if !c.UseSample && c.InputPath == "" {
		return ErrNoSource
	}

	if _, err := c.Labels(); err != nil {
		return err
	}

	return nil
}
