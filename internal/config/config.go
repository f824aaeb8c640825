// Package config holds runtime configuration for edict.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Validation errors.
var (
	// ErrInvalidMaxEntries indicates a non-positive history bound.
	ErrInvalidMaxEntries = errors.New("config: history max-entries must be positive")

	// ErrInvalidLogLevel indicates an unrecognized log level.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrJournalPathEmpty indicates journaling is enabled without a path.
	ErrJournalPathEmpty = errors.New("config: journal enabled but path is empty")
)

// Config is the resolved runtime configuration.
type Config struct {
	// Prompt is printed before each input line when stdin is a terminal.
	Prompt string `yaml:"prompt"`

	// Color enables ANSI color in notifications and diagnostics.
	Color bool `yaml:"color"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log-level"`

	// History configures the in-memory undo stack.
	History History `yaml:"history"`

	// Journal configures the persistent command journal.
	Journal Journal `yaml:"journal"`
}

// History configures the undo stack.
type History struct {
	// MaxEntries bounds the undo stack; oldest entries are evicted.
	MaxEntries int `yaml:"max-entries"`
}

// Journal configures the persistent command journal.
type Journal struct {
	// Enabled turns journaling on. Off by default.
	Enabled bool `yaml:"enabled"`

	// Path is the journal database file.
	Path string `yaml:"path"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Prompt:   "edict> ",
		Color:    true,
		LogLevel: "info",
		History: History{
			MaxEntries: 100,
		},
		Journal: Journal{
			Enabled: false,
			Path:    defaultJournalPath(),
		},
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxEntries, c.History.MaxEntries)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return ErrJournalPathEmpty
	}
	return nil
}

// defaultJournalPath returns the journal location under the user config
// directory, or a relative fallback when that cannot be determined.
func defaultJournalPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "edict-journal.db"
	}
	return filepath.Join(dir, "edict", "journal.db")
}
