// Package editor implements the document receiver that commands delegate to.
package editor

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// Editor errors.
var (
	// ErrNoDocument indicates no document is currently open.
	ErrNoDocument = errors.New("editor: no open document")

	// ErrNoPath indicates the document has never been given a path.
	ErrNoPath = errors.New("editor: document has no path")
)

// Editor holds the current document and performs the named operations.
// Documents live on an afero filesystem; the default is an in-memory
// store, so editor operations never touch the real disk.
type Editor struct {
	fs     afero.Fs
	notify *Notifier

	path    string
	content string
	open    bool
}

// New creates an editor over the given filesystem.
// A nil fs defaults to an in-memory filesystem, and a nil notifier
// discards notifications.
func New(fs afero.Fs, notify *Notifier) *Editor {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	if notify == nil {
		notify = NewNotifier(nil, false)
	}
	return &Editor{fs: fs, notify: notify}
}

// Fs returns the underlying filesystem.
func (e *Editor) Fs() afero.Fs {
	return e.fs
}

// Path returns the current document path.
// The path survives Close so that a later reopen knows where to look.
func (e *Editor) Path() string {
	return e.path
}

// SetPath sets the current document path without touching content.
func (e *Editor) SetPath(path string) {
	e.path = path
}

// Content returns the current document content.
func (e *Editor) Content() string {
	return e.content
}

// SetContent replaces the current document content.
func (e *Editor) SetContent(content string) error {
	if !e.open {
		return ErrNoDocument
	}
	e.content = content
	return nil
}

// IsOpen reports whether a document is currently open.
func (e *Editor) IsOpen() bool {
	return e.open
}

// Open reads the file at path into the editor and makes it the
// current document.
func (e *Editor) Open(path string) error {
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	e.path = path
	e.content = string(data)
	e.open = true
	e.notify.Notify("Opened %s (%d bytes)", path, len(data))
	return nil
}

// Save writes the current document to its path.
func (e *Editor) Save() error {
	if !e.open {
		return ErrNoDocument
	}
	if e.path == "" {
		return fmt.Errorf("save: %w", ErrNoPath)
	}
	if err := afero.WriteFile(e.fs, e.path, []byte(e.content), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", e.path, err)
	}
	e.notify.Notify("Saved %s (%d bytes)", e.path, len(e.content))
	return nil
}

// SaveAs writes the current document to newPath and makes newPath the
// current path.
func (e *Editor) SaveAs(newPath string) error {
	if !e.open {
		return ErrNoDocument
	}
	if err := afero.WriteFile(e.fs, newPath, []byte(e.content), 0o644); err != nil {
		return fmt.Errorf("save as %s: %w", newPath, err)
	}
	e.path = newPath
	e.notify.Notify("Saved as %s (%d bytes)", newPath, len(e.content))
	return nil
}

// Print writes the current document content to the notifier.
func (e *Editor) Print() error {
	if !e.open {
		return ErrNoDocument
	}
	name := e.path
	if name == "" {
		name = "(untitled)"
	}
	e.notify.Notify("Printing %s (%d bytes)", name, len(e.content))
	if e.content != "" {
		e.notify.Dim("%s", e.content)
	}
	return nil
}

// Close discards the current document content.
// The path is retained so the document can be reopened later.
func (e *Editor) Close() error {
	if !e.open {
		return ErrNoDocument
	}
	e.content = ""
	e.open = false
	name := e.path
	if name == "" {
		name = "(untitled)"
	}
	e.notify.Notify("Closed %s", name)
	return nil
}

// Revert re-reads the last saved state of the document from its path.
func (e *Editor) Revert() error {
	if !e.open {
		return ErrNoDocument
	}
	if e.path == "" {
		return fmt.Errorf("revert: %w", ErrNoPath)
	}
	data, err := afero.ReadFile(e.fs, e.path)
	if err != nil {
		return fmt.Errorf("revert %s: %w", e.path, err)
	}
	e.content = string(data)
	e.notify.Notify("Reverted %s to last saved state", e.path)
	return nil
}

// CreateNew opens a fresh untitled document.
func (e *Editor) CreateNew() error {
	e.path = ""
	e.content = ""
	e.open = true
	e.notify.Notify("Created new file")
	return nil
}
