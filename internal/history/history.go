package history

import (
	"errors"
	"sync"
	"time"

	"github.com/edictdev/edict/internal/command"
)

// ErrNothingToUndo indicates the undo stack is empty.
var ErrNothingToUndo = errors.New("history: nothing to undo")

// DefaultMaxEntries bounds the stack when no limit is configured.
const DefaultMaxEntries = 100

// entry wraps a command with metadata.
type entry struct {
	command   command.Command
	timestamp time.Time
}

// EntryInfo provides read-only info about a stack entry.
type EntryInfo struct {
	Description string
	Timestamp   time.Time
}

// Stack is a bounded last-in-first-out record of executed commands.
// The stack owns pushed commands; Pop transfers ownership back to the
// caller. All methods are safe for concurrent use.
type Stack struct {
	mu         sync.Mutex
	entries    []*entry
	maxEntries int
}

// NewStack creates a stack holding at most maxEntries commands.
// A non-positive limit falls back to DefaultMaxEntries.
func NewStack(maxEntries int) *Stack {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Stack{maxEntries: maxEntries}
}

// Push appends an executed command. When the bound is exceeded the
// oldest entries are evicted.
func (s *Stack) Push(cmd command.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, &entry{
		command:   cmd,
		timestamp: time.Now(),
	})

	if len(s.entries) > s.maxEntries {
		excess := len(s.entries) - s.maxEntries
		s.entries = s.entries[excess:]
	}
}

// Pop removes and returns the most recently pushed command.
// The second return value is false if the stack is empty.
func (s *Stack) Pop() (command.Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil, false
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return e.command, true
}

// Undo pops the most recent command and reverses it.
// The lock is not held while the command's Undo runs. If Undo fails
// the entry is restored so the user can retry.
func (s *Stack) Undo() error {
	s.mu.Lock()
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return ErrNothingToUndo
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	s.mu.Unlock()

	if err := e.command.Undo(); err != nil {
		s.mu.Lock()
		s.entries = append(s.entries, e)
		s.mu.Unlock()
		return err
	}
	return nil
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// MaxEntries returns the configured bound.
func (s *Stack) MaxEntries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxEntries
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Peek returns info about the most recent entry without removing it.
func (s *Stack) Peek() (EntryInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return EntryInfo{}, false
	}
	e := s.entries[len(s.entries)-1]
	return EntryInfo{
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}, true
}

// Entries returns info about all entries, oldest first.
func (s *Stack) Entries() []EntryInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]EntryInfo, len(s.entries))
	for i, e := range s.entries {
		result[i] = EntryInfo{
			Description: e.command.Description(),
			Timestamp:   e.timestamp,
		}
	}
	return result
}
