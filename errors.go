package repl

import "errors"

var (
	// ErrExited settles the handle of a session ended by a forced exit
	ErrExited    = errors.New("console exited without a result")
	ErrNoSession = errors.New("no active REPL session")
)
