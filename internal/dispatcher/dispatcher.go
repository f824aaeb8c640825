package dispatcher

import (
	"fmt"
	"strings"

	"github.com/edictdev/edict/internal/command"
	"github.com/edictdev/edict/internal/editor"
	"github.com/edictdev/edict/internal/history"
)

// Status indicates the outcome of a dispatch.
type Status uint8

const (
	// StatusOK indicates the command executed and was recorded.
	StatusOK Status = iota
	// StatusNoop indicates the input produced no command (blank line).
	StatusNoop
	// StatusError indicates the input was rejected or execution failed.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoop:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of dispatching one input line.
type Result struct {
	// Status indicates the result status.
	Status Status

	// Command is the executed command, nil unless one was constructed.
	Command command.Command

	// Message is diagnostic text for display, empty on success.
	Message string

	// Err is the underlying error, nil on success.
	Err error
}

// Journal is the subset of the history journal the dispatcher uses.
type Journal interface {
	Append(line string) (int, error)
}

// Dispatcher turns input lines into commands, executes them and
// records the executed ones.
type Dispatcher struct {
	registry *Registry
	editor   *editor.Editor
	stack    *history.Stack
	journal  Journal
	metrics  *Metrics
}

// New creates a dispatcher with the built-in editor commands registered.
func New(ed *editor.Editor, stack *history.Stack) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		editor:   ed,
		stack:    stack,
		metrics:  NewMetrics(),
	}
	registerBuiltins(d.registry)
	return d
}

// SetJournal sets an optional persistent command journal.
// Journal failures never fail a dispatch.
func (d *Dispatcher) SetJournal(j Journal) {
	d.journal = j
}

// Registry returns the command registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the dispatch metrics collector.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch parses one input line, executes the resulting command and
// pushes it onto the history. Rejected input and failed execution push
// nothing.
func (d *Dispatcher) Dispatch(line string) Result {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Result{Status: StatusNoop}
	}
	name, args := tokens[0], tokens[1:]

	spec, ok := d.registry.Lookup(name)
	if !ok {
		d.metrics.RecordUnknown(name)
		return Result{
			Status:  StatusError,
			Message: fmt.Sprintf("command %q is not recognized", name),
			Err:     fmt.Errorf("%w: %s", ErrUnknownCommand, name),
		}
	}

	if len(args) < spec.MinArgs {
		d.metrics.RecordError(name)
		return Result{
			Status:  StatusError,
			Message: fmt.Sprintf("missing argument (usage: %s)", spec.Usage),
			Err:     fmt.Errorf("%w: usage: %s", ErrMissingArgument, spec.Usage),
		}
	}

	cmd := spec.Factory(d.editor, args)
	if err := cmd.Execute(); err != nil {
		d.metrics.RecordError(name)
		return Result{
			Status:  StatusError,
			Command: cmd,
			Message: fmt.Sprintf("%s failed: %v", name, err),
			Err:     err,
		}
	}

	d.stack.Push(cmd)
	if d.journal != nil {
		// Best effort; the in-memory record is authoritative.
		_, _ = d.journal.Append(line)
	}
	d.metrics.RecordDispatch(name)

	return Result{Status: StatusOK, Command: cmd}
}

// registerBuiltins registers the editor command set.
func registerBuiltins(r *Registry) {
	specs := []Spec{
		{
			Name:  "save",
			Usage: "save",
			Factory: func(ed *editor.Editor, args []string) command.Command {
				return command.NewSave(ed)
			},
		},
		{
			Name:    "saveas",
			Usage:   "saveas <newpath>",
			MinArgs: 1,
			Factory: func(ed *editor.Editor, args []string) command.Command {
				return command.NewSaveAs(ed, args[0])
			},
		},
		{
			Name:    "open",
			Usage:   "open <filepath>",
			MinArgs: 1,
			Factory: func(ed *editor.Editor, args []string) command.Command {
				return command.NewOpen(ed, args[0])
			},
		},
		{
			Name:  "print",
			Usage: "print",
			Factory: func(ed *editor.Editor, args []string) command.Command {
				return command.NewPrint(ed)
			},
		},
		{
			Name:  "close",
			Usage: "close",
			Factory: func(ed *editor.Editor, args []string) command.Command {
				return command.NewClose(ed)
			},
		},
		{
			Name:  "new",
			Usage: "new",
			Factory: func(ed *editor.Editor, args []string) command.Command {
				return command.NewNew(ed)
			},
		},
	}
	for _, spec := range specs {
		// Built-in names are unique by construction.
		_ = r.Register(spec)
	}
}
