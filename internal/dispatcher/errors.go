package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownCommand indicates the command word is not registered.
	ErrUnknownCommand = errors.New("dispatcher: unknown command")

	// ErrMissingArgument indicates a required argument was not supplied.
	ErrMissingArgument = errors.New("dispatcher: missing argument")

	// ErrDuplicateCommand indicates a command word was registered twice.
	ErrDuplicateCommand = errors.New("dispatcher: duplicate command")
)
