package app

import "errors"

// Application errors.
var (
	// ErrQuit indicates the user requested a normal exit.
	ErrQuit = errors.New("app: quit")

	// ErrNotRunning indicates Run was called after Shutdown.
	ErrNotRunning = errors.New("app: application is shut down")
)
