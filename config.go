package norgfmt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the per-project configuration file the CLI discovers by
// walking up from the working directory.
const ConfigFileName = ".norgfmt.toml"

// DefaultLineLength is the paragraph wrap width used when nothing overrides it.
const DefaultLineLength = 80

// Config holds the formatter options. It is read-only for the duration of a
// render; formatters never mutate it.
type Config struct {
	// LineLength is the maximum paragraph line width.
	LineLength int
	// NewlineAfterHeadings adds an extra newline after a heading title to
	// separate the content.
	NewlineAfterHeadings bool
	// IndentHeadings re-indents nested headings under their parent instead of
	// keeping heading titles at column zero.
	IndentHeadings bool
}

// DefaultConfig returns the canonical defaults.
func DefaultConfig() Config {
	return Config{LineLength: DefaultLineLength}
}

// Option configures formatting behavior.
type Option func(*Config)

// WithLineLength sets the maximum paragraph line width. Non-positive values
// are ignored.
func WithLineLength(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.LineLength = n
		}
	}
}

// WithNewlineAfterHeadings enables or disables the blank line after heading
// titles.
func WithNewlineAfterHeadings(enabled bool) Option {
	return func(cfg *Config) {
		cfg.NewlineAfterHeadings = enabled
	}
}

// WithIndentHeadings enables or disables re-indentation of nested headings.
func WithIndentHeadings(enabled bool) Option {
	return func(cfg *Config) {
		cfg.IndentHeadings = enabled
	}
}

// WithConfig replaces the whole configuration at once.
func WithConfig(cfg Config) Option {
	return func(dst *Config) {
		*dst = cfg
	}
}

type fileConfig struct {
	LineLength           int  `toml:"line_length"`
	NewlineAfterHeadings bool `toml:"newline_after_headings"`
	IndentHeadings       bool `toml:"indent_headings"`
}

// LoadConfigFile reads a .norgfmt.toml file. Options absent from the file
// keep their defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	fc := fileConfig{LineLength: cfg.LineLength}
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load %s: unknown key %q", path, undecoded[0].String())
	}
	if fc.LineLength <= 0 {
		return cfg, fmt.Errorf("load %s: line_length must be positive", path)
	}
	cfg.LineLength = fc.LineLength
	cfg.NewlineAfterHeadings = fc.NewlineAfterHeadings
	cfg.IndentHeadings = fc.IndentHeadings
	return cfg, nil
}

// FindConfigFile walks up from startDir looking for a .norgfmt.toml file.
func FindConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
