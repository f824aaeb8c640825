// Package command encapsulates editor operations as executable,
// undoable command objects.
package command

import (
	"fmt"

	"github.com/edictdev/edict/internal/editor"
)

// Command represents a user-requested operation that can be executed
// and later undone.
type Command interface {
	// Execute performs the operation on the editor.
	Execute() error

	// Undo reverses the operation's observable effect using state
	// captured at construction time.
	Undo() error

	// Description returns a human-readable description of the command.
	Description() string
}

// Save writes the current document to its path.
// Its undo reverts the document to the last saved state.
type Save struct {
	ed *editor.Editor
}

// NewSave creates a save command.
func NewSave(ed *editor.Editor) *Save {
	return &Save{ed: ed}
}

// Execute implements Command.
func (c *Save) Execute() error { return c.ed.Save() }

// Undo implements Command.
func (c *Save) Undo() error { return c.ed.Revert() }

// Description implements Command.
func (c *Save) Description() string { return "Save" }

// SaveAs writes the current document to a new path.
// It captures the path in effect at construction time so undo can
// restore exactly that path, regardless of later operations.
type SaveAs struct {
	ed      *editor.Editor
	newPath string
	oldPath string
}

// NewSaveAs creates a save-as command targeting newPath.
func NewSaveAs(ed *editor.Editor, newPath string) *SaveAs {
	return &SaveAs{
		ed:      ed,
		newPath: newPath,
		oldPath: ed.Path(),
	}
}

// Execute implements Command.
func (c *SaveAs) Execute() error { return c.ed.SaveAs(c.newPath) }

// Undo restores the path recorded before this command executed.
// The file written at the new path is not removed.
func (c *SaveAs) Undo() error {
	c.ed.SetPath(c.oldPath)
	return nil
}

// Description implements Command.
func (c *SaveAs) Description() string {
	return fmt.Sprintf("Save as %q", c.newPath)
}

// Open makes the file at a path the current document.
type Open struct {
	ed   *editor.Editor
	path string
}

// NewOpen creates an open command for path.
func NewOpen(ed *editor.Editor, path string) *Open {
	return &Open{ed: ed, path: path}
}

// Execute implements Command.
func (c *Open) Execute() error { return c.ed.Open(c.path) }

// Undo implements Command.
func (c *Open) Undo() error { return c.ed.Close() }

// Description implements Command.
func (c *Open) Description() string {
	return fmt.Sprintf("Open %q", c.path)
}

// Print writes the current document to the notifier.
// Printing is not reversible, so its undo is a no-op.
type Print struct {
	ed *editor.Editor
}

// NewPrint creates a print command.
func NewPrint(ed *editor.Editor) *Print {
	return &Print{ed: ed}
}

// Execute implements Command.
func (c *Print) Execute() error { return c.ed.Print() }

// Undo implements Command. It does nothing.
func (c *Print) Undo() error { return nil }

// Description implements Command.
func (c *Print) Description() string { return "Print" }

// Close discards the current document.
// Its undo reopens whatever path the editor reports at undo time,
// which may differ from the path that was open when Close executed if
// intervening operations changed it.
type Close struct {
	ed *editor.Editor
}

// NewClose creates a close command.
func NewClose(ed *editor.Editor) *Close {
	return &Close{ed: ed}
}

// Execute implements Command.
func (c *Close) Execute() error { return c.ed.Close() }

// Undo implements Command.
func (c *Close) Undo() error { return c.ed.Open(c.ed.Path()) }

// Description implements Command.
func (c *Close) Description() string { return "Close" }

// New opens a fresh untitled document.
type New struct {
	ed *editor.Editor
}

// NewNew creates a new-file command.
func NewNew(ed *editor.Editor) *New {
	return &New{ed: ed}
}

// Execute implements Command.
func (c *New) Execute() error { return c.ed.CreateNew() }

// Undo implements Command.
func (c *New) Undo() error { return c.ed.Close() }

// Description implements Command.
func (c *New) Description() string { return "New file" }
