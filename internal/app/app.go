// Package app wires the editor, history and dispatcher together and
// runs the interactive loop.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/edictdev/edict/internal/config"
	"github.com/edictdev/edict/internal/dispatcher"
	"github.com/edictdev/edict/internal/editor"
	"github.com/edictdev/edict/internal/history"
)

// Options configures the application at startup.
type Options struct {
	// ConfigPath is the configuration file, empty for defaults.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// NoColor disables ANSI color regardless of configuration.
	NoColor bool

	// JournalPath enables the persistent command journal at the given
	// path when non-empty.
	JournalPath string

	// In, Out and ErrOut default to the standard streams.
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Fs is the document filesystem. Defaults to an in-memory store.
	Fs afero.Fs
}

// Application owns the editor, history and dispatcher for one session.
type Application struct {
	cfg    config.Config
	logger *Logger

	editor     *editor.Editor
	stack      *history.Stack
	journal    *history.Journal
	dispatcher *dispatcher.Dispatcher

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	shutdownOnce sync.Once
	shutdown     bool
}

// New creates an application from the given options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.NoColor {
		cfg.Color = false
	}
	if opts.JournalPath != "" {
		cfg.Journal.Enabled = true
		cfg.Journal.Path = opts.JournalPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewMemMapFs()
	}

	logger := NewLogger(ParseLogLevel(cfg.LogLevel), errOut)

	ed := editor.New(fs, editor.NewNotifier(out, cfg.Color))
	stack := history.NewStack(cfg.History.MaxEntries)
	disp := dispatcher.New(ed, stack)

	a := &Application{
		cfg:        cfg,
		logger:     logger,
		editor:     ed,
		stack:      stack,
		dispatcher: disp,
		in:         in,
		out:        out,
		errOut:     errOut,
	}

	if cfg.Journal.Enabled {
		if err := a.openJournal(cfg.Journal.Path); err != nil {
			return nil, err
		}
	}

	logger.WithComponent("app").Debug("initialized with %d commands", disp.Registry().Count())
	return a, nil
}

// openJournal opens the persistent command journal and attaches it to
// the dispatcher.
func (a *Application) openJournal(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("app: create journal directory: %w", err)
		}
	}
	j, err := history.OpenJournal(path)
	if err != nil {
		return err
	}
	a.journal = j
	a.dispatcher.SetJournal(j)
	a.logger.WithComponent("journal").Debug("journaling to %s", path)
	return nil
}

// Editor returns the editor.
func (a *Application) Editor() *editor.Editor {
	return a.editor
}

// History returns the undo stack.
func (a *Application) History() *history.Stack {
	return a.stack
}

// Journal returns the command journal, nil when journaling is disabled.
func (a *Application) Journal() *history.Journal {
	return a.journal
}

// Dispatcher returns the command dispatcher.
func (a *Application) Dispatcher() *dispatcher.Dispatcher {
	return a.dispatcher
}

// Logger returns the application logger.
func (a *Application) Logger() *Logger {
	return a.logger
}

// Config returns the resolved configuration.
func (a *Application) Config() config.Config {
	return a.cfg
}

// Shutdown releases resources. Safe to call more than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.shutdown = true
		if a.journal != nil {
			if err := a.journal.Close(); err != nil {
				a.logger.WithComponent("journal").Error("close: %v", err)
			}
		}
	})
}
