package dispatcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/edictdev/edict/internal/editor"
	"github.com/edictdev/edict/internal/history"
)

func newTestDispatcher(t *testing.T, files map[string]string) (*Dispatcher, *editor.Editor, *history.Stack) {
	t.Helper()
	memfs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(memfs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("seed %s: %v", path, err)
		}
	}
	ed := editor.New(memfs, nil)
	stack := history.NewStack(100)
	return New(ed, stack), ed, stack
}

func TestDispatchRecognizedCommands(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		line  string
	}{
		{"new", nil, "new"},
		{"open", nil, "open a.txt"},
		{"print", []string{"open a.txt"}, "print"},
		{"close", []string{"open a.txt"}, "close"},
		{"save", []string{"open a.txt"}, "save"},
		{"saveas", []string{"open a.txt"}, "saveas b.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, stack := newTestDispatcher(t, map[string]string{"a.txt": "alpha"})
			for _, line := range tt.setup {
				if res := d.Dispatch(line); res.Status != StatusOK {
					t.Fatalf("setup %q failed: %v", line, res.Err)
				}
			}
			before := stack.Len()

			res := d.Dispatch(tt.line)
			if res.Status != StatusOK {
				t.Fatalf("Dispatch(%q) status = %v, err = %v", tt.line, res.Status, res.Err)
			}
			if res.Command == nil {
				t.Error("no command object produced")
			}
			if got := stack.Len() - before; got != 1 {
				t.Errorf("history grew by %d, want exactly 1", got)
			}
		})
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	d, _, stack := newTestDispatcher(t, nil)

	res := d.Dispatch("foo bar")
	if res.Status != StatusError {
		t.Fatalf("status = %v, want error", res.Status)
	}
	if !errors.Is(res.Err, ErrUnknownCommand) {
		t.Errorf("err = %v, want ErrUnknownCommand", res.Err)
	}
	if res.Command != nil {
		t.Error("unknown command produced a command object")
	}
	if !strings.Contains(res.Message, "not recognized") {
		t.Errorf("message = %q, want not-recognized diagnostic", res.Message)
	}
	if stack.Len() != 0 {
		t.Errorf("history len = %d, want empty", stack.Len())
	}
}

func TestDispatchMissingArgument(t *testing.T) {
	tests := []struct {
		line  string
		usage string
	}{
		{"saveas", "saveas <newpath>"},
		{"open", "open <filepath>"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			d, _, stack := newTestDispatcher(t, nil)

			res := d.Dispatch(tt.line)
			if res.Status != StatusError {
				t.Fatalf("status = %v, want error", res.Status)
			}
			if !errors.Is(res.Err, ErrMissingArgument) {
				t.Errorf("err = %v, want ErrMissingArgument", res.Err)
			}
			if res.Command != nil {
				t.Error("missing argument produced a command object")
			}
			if !strings.Contains(res.Message, "missing argument") {
				t.Errorf("message = %q, want missing-argument diagnostic", res.Message)
			}
			if !strings.Contains(res.Message, tt.usage) {
				t.Errorf("message = %q, want usage %q", res.Message, tt.usage)
			}
			if stack.Len() != 0 {
				t.Errorf("history len = %d, want empty", stack.Len())
			}
		})
	}
}

func TestDispatchArgumentCapturedVerbatim(t *testing.T) {
	const path = "notes,v2(final).txt"
	d, ed, _ := newTestDispatcher(t, map[string]string{path: "text"})

	res := d.Dispatch("  open   " + path + "  ")
	if res.Status != StatusOK {
		t.Fatalf("Dispatch() error: %v", res.Err)
	}
	if ed.Path() != path {
		t.Errorf("Path() = %q, want argument captured verbatim %q", ed.Path(), path)
	}
}

func TestDispatchBlankLine(t *testing.T) {
	d, _, stack := newTestDispatcher(t, nil)

	res := d.Dispatch("   ")
	if res.Status != StatusNoop {
		t.Errorf("status = %v, want no-op", res.Status)
	}
	if stack.Len() != 0 {
		t.Errorf("history len = %d, want empty", stack.Len())
	}
}

func TestDispatchExecuteFailureNotPushed(t *testing.T) {
	d, _, stack := newTestDispatcher(t, nil)

	res := d.Dispatch("open missing.txt")
	if res.Status != StatusError {
		t.Fatalf("status = %v, want error", res.Status)
	}
	if stack.Len() != 0 {
		t.Errorf("failed execution was pushed, history len = %d", stack.Len())
	}
}

// A full session: open, saveas, close; then unwind the history in
// LIFO order.
func TestDispatchScenarioOpenSaveAsClose(t *testing.T) {
	d, ed, stack := newTestDispatcher(t, map[string]string{"a.txt": "alpha"})

	for _, line := range []string{"open a.txt", "saveas b.txt", "close"} {
		if res := d.Dispatch(line); res.Status != StatusOK {
			t.Fatalf("Dispatch(%q) failed: %v", line, res.Err)
		}
	}
	if stack.Len() != 3 {
		t.Fatalf("history len = %d, want 3", stack.Len())
	}

	// Close-undo reopens the editor's current path, which by now is
	// b.txt, not the a.txt that was open originally.
	if err := stack.Undo(); err != nil {
		t.Fatalf("undo close: %v", err)
	}
	if !ed.IsOpen() || ed.Path() != "b.txt" {
		t.Errorf("after close-undo: open=%v path=%q, want b.txt reopened", ed.IsOpen(), ed.Path())
	}

	// SaveAs-undo restores the path captured before the save.
	if err := stack.Undo(); err != nil {
		t.Fatalf("undo saveas: %v", err)
	}
	if ed.Path() != "a.txt" {
		t.Errorf("after saveas-undo: path=%q, want a.txt", ed.Path())
	}

	// Open-undo closes the document.
	if err := stack.Undo(); err != nil {
		t.Fatalf("undo open: %v", err)
	}
	if ed.IsOpen() {
		t.Error("document still open after open-undo")
	}

	if err := stack.Undo(); !errors.Is(err, history.ErrNothingToUndo) {
		t.Errorf("extra undo = %v, want ErrNothingToUndo", err)
	}
}

func TestDispatchMetrics(t *testing.T) {
	d, _, _ := newTestDispatcher(t, nil)

	d.Dispatch("new")
	d.Dispatch("foo")
	d.Dispatch("saveas")

	m := d.Metrics()
	if got := m.TotalDispatches(); got != 1 {
		t.Errorf("TotalDispatches() = %d, want 1", got)
	}
	if got := m.TotalUnknown(); got != 1 {
		t.Errorf("TotalUnknown() = %d, want 1", got)
	}
	if got := m.TotalErrors(); got != 1 {
		t.Errorf("TotalErrors() = %d, want 1", got)
	}

	cm, ok := m.Command("new")
	if !ok || cm.DispatchCount != 1 {
		t.Errorf("Command(new) = (%+v, %v), want one dispatch", cm, ok)
	}
}

type journalStub struct {
	lines []string
}

func (j *journalStub) Append(line string) (int, error) {
	j.lines = append(j.lines, line)
	return len(j.lines), nil
}

func TestDispatchJournalsExecutedLinesOnly(t *testing.T) {
	d, _, _ := newTestDispatcher(t, map[string]string{"a.txt": "alpha"})
	j := &journalStub{}
	d.SetJournal(j)

	d.Dispatch("open a.txt")
	d.Dispatch("foo")
	d.Dispatch("open missing.txt")
	d.Dispatch("close")

	want := []string{"open a.txt", "close"}
	if len(j.lines) != len(want) {
		t.Fatalf("journaled %v, want %v", j.lines, want)
	}
	for i, line := range want {
		if j.lines[i] != line {
			t.Errorf("journal[%d] = %q, want %q", i, j.lines[i], line)
		}
	}
}
