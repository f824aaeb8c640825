package editor

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Notifier writes user-facing notifications for editor operations.
// Output is plain text with optional ANSI color.
type Notifier struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool

	info *color.Color
	warn *color.Color
	dim  *color.Color
}

// NewNotifier creates a notifier writing to out.
// A nil out discards all notifications.
func NewNotifier(out io.Writer, colorize bool) *Notifier {
	if out == nil {
		out = io.Discard
		colorize = false
	}
	return &Notifier{
		out:      out,
		colorize: colorize,
		info:     color.New(color.FgCyan),
		warn:     color.New(color.FgRed),
		dim:      color.New(color.FgHiBlack),
	}
}

// Notify writes a normal notification line.
func (n *Notifier) Notify(format string, args ...any) {
	n.write(n.info, format, args...)
}

// Error writes an error notification line.
func (n *Notifier) Error(format string, args ...any) {
	n.write(n.warn, format, args...)
}

// Dim writes a de-emphasized line, used for document content and hints.
func (n *Notifier) Dim(format string, args ...any) {
	n.write(n.dim, format, args...)
}

func (n *Notifier) write(c *color.Color, format string, args ...any) {
	n.mu.Lock()
	defer n.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if n.colorize {
		fmt.Fprintln(n.out, c.Sprint(msg))
		return
	}
	fmt.Fprintln(n.out, msg)
}
