package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/edictdev/edict/internal/dispatcher"
	"github.com/edictdev/edict/internal/history"
)

// Loop built-ins handled by the application itself rather than the
// command dispatcher. They never enter the history.
const (
	wordUndo    = "undo"
	wordHistory = "history"
	wordHelp    = "help"
	wordQuit    = "quit"
	wordExit    = "exit"
)

// Run reads input lines and dispatches them until the user quits, the
// input is exhausted, or ctx is cancelled between lines.
// Returns ErrQuit on an explicit quit; EOF exits with a nil error.
func (a *Application) Run(ctx context.Context) error {
	if a.shutdown {
		return ErrNotRunning
	}

	interactive := a.isInteractive()
	if interactive {
		a.printWelcome()
	}

	scanner := bufio.NewScanner(a.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if interactive {
			fmt.Fprint(a.out, a.cfg.Prompt)
		}

		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		if err := a.handleLine(line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("app: read input: %w", err)
	}
	return nil
}

// handleLine processes one input line. Returns ErrQuit on quit/exit.
func (a *Application) handleLine(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	switch tokens[0] {
	case wordQuit, wordExit:
		return ErrQuit
	case wordUndo:
		a.doUndo()
		return nil
	case wordHistory:
		a.printHistory()
		return nil
	case wordHelp:
		a.printHelp()
		return nil
	}

	result := a.dispatcher.Dispatch(line)
	switch result.Status {
	case dispatcher.StatusOK:
		a.logger.WithComponent("dispatcher").Debug("executed %s", result.Command.Description())
	case dispatcher.StatusError:
		a.diagnostic(result.Message)
		a.logger.WithComponent("dispatcher").Debug("rejected %q: %v", line, result.Err)
	}
	return nil
}

// doUndo reverses the most recent command.
func (a *Application) doUndo() {
	info, _ := a.stack.Peek()
	if err := a.stack.Undo(); err != nil {
		if errors.Is(err, history.ErrNothingToUndo) {
			a.diagnostic("nothing to undo")
			return
		}
		a.diagnostic(fmt.Sprintf("undo failed: %v", err))
		return
	}
	fmt.Fprintf(a.out, "Undid: %s\n", info.Description)
}

// printHistory lists undoable entries, newest first.
func (a *Application) printHistory() {
	entries := a.stack.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "history is empty")
		return
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Fprintf(a.out, "%3d  %s  %s\n", i+1, e.Timestamp.Format("15:04:05"), e.Description)
	}
}

// printHelp lists the available commands.
func (a *Application) printHelp() {
	fmt.Fprintln(a.out, "Commands:")
	for _, usage := range a.dispatcher.Registry().Usages() {
		fmt.Fprintf(a.out, "  %s\n", usage)
	}
	fmt.Fprintln(a.out, "  undo")
	fmt.Fprintln(a.out, "  history")
	fmt.Fprintln(a.out, "  help")
	fmt.Fprintln(a.out, "  quit")
}

// printWelcome prints the interactive banner.
func (a *Application) printWelcome() {
	fmt.Fprintf(a.out, "edict - type a command (%s), or help\n",
		strings.Join(a.dispatcher.Registry().Names(), ", "))
}

// diagnostic prints an error-path message for the user.
func (a *Application) diagnostic(msg string) {
	if a.cfg.Color {
		fmt.Fprintln(a.out, color.New(color.FgRed).Sprint(msg))
		return
	}
	fmt.Fprintln(a.out, msg)
}

// isInteractive reports whether input comes from a terminal.
func (a *Application) isInteractive() bool {
	f, ok := a.in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
