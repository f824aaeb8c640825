package command

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/edictdev/edict/internal/editor"
)

func newTestEditor(t *testing.T, files map[string]string) *editor.Editor {
	t.Helper()
	memfs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(memfs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("seed %s: %v", path, err)
		}
	}
	return editor.New(memfs, nil)
}

func TestOpenExecuteAndUndo(t *testing.T) {
	ed := newTestEditor(t, map[string]string{"a.txt": "alpha"})
	cmd := NewOpen(ed, "a.txt")

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !ed.IsOpen() || ed.Path() != "a.txt" {
		t.Errorf("after execute: open=%v path=%q", ed.IsOpen(), ed.Path())
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if ed.IsOpen() {
		t.Error("document still open after undo")
	}
}

func TestSaveAsUndoRestoresCapturedPath(t *testing.T) {
	ed := newTestEditor(t, map[string]string{"a.txt": "alpha"})
	if err := ed.Open("a.txt"); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	cmd := NewSaveAs(ed, "b.txt")
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if ed.Path() != "b.txt" {
		t.Fatalf("Path() = %q after save as, want b.txt", ed.Path())
	}

	// Later operations move the path; undo must still restore the
	// path recorded before this SaveAs executed.
	ed.SetPath("c.txt")

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if ed.Path() != "a.txt" {
		t.Errorf("Path() = %q after undo, want a.txt", ed.Path())
	}
}

func TestSaveUndoReverts(t *testing.T) {
	ed := newTestEditor(t, map[string]string{"a.txt": "alpha"})
	if err := ed.Open("a.txt"); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := ed.SetContent("beta"); err != nil {
		t.Fatalf("SetContent() error: %v", err)
	}

	cmd := NewSave(ed)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	// Undo re-reads the file, which now holds the saved content.
	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if ed.Content() != "beta" {
		t.Errorf("Content() = %q after undo, want last saved state", ed.Content())
	}
}

func TestPrintUndoIsNoop(t *testing.T) {
	ed := newTestEditor(t, map[string]string{"a.txt": "alpha"})
	if err := ed.Open("a.txt"); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	cmd := NewPrint(ed)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if err := cmd.Undo(); err != nil {
		t.Errorf("Undo() error: %v, want nil", err)
	}
	if ed.Content() != "alpha" {
		t.Errorf("undo of print changed state: %q", ed.Content())
	}
}

// Close's undo reopens the path the editor reports at undo time, not
// the path that was open when Close executed.
func TestCloseUndoUsesCurrentPath(t *testing.T) {
	ed := newTestEditor(t, map[string]string{
		"a.txt": "alpha",
		"b.txt": "beta",
	})
	if err := ed.Open("a.txt"); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	cmd := NewClose(ed)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	ed.SetPath("b.txt")

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if ed.Path() != "b.txt" || ed.Content() != "beta" {
		t.Errorf("undo reopened (%q, %q), want current path b.txt", ed.Path(), ed.Content())
	}
}

func TestNewExecuteAndUndo(t *testing.T) {
	ed := newTestEditor(t, nil)
	cmd := NewNew(ed)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !ed.IsOpen() {
		t.Error("no document open after new")
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if ed.IsOpen() {
		t.Error("document still open after undo")
	}
}

func TestDescriptions(t *testing.T) {
	ed := newTestEditor(t, nil)

	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"save", NewSave(ed), "Save"},
		{"saveas", NewSaveAs(ed, "b.txt"), `Save as "b.txt"`},
		{"open", NewOpen(ed, "a.txt"), `Open "a.txt"`},
		{"print", NewPrint(ed), "Print"},
		{"close", NewClose(ed), "Close"},
		{"new", NewNew(ed), "New file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Description(); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}
