package orchestrator

import (
	"errors"

	"github.com/viant/repl/model/task"
)

var ErrNoSession = errors.New("no active session")

// Recoverable signals input that looks cut off; the console should keep
// buffering lines instead of reporting an error.
type Recoverable struct {
	Err error
}

func (r *Recoverable) Error() string {
	return r.Err.Error()
}

func (r *Recoverable) Unwrap() error {
	return r.Err
}

// CommandError reports a task that threw; later tasks of the block did not run
type CommandError struct {
	Task *task.Task
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsRecoverable returns true if err signals incomplete input
func IsRecoverable(err error) bool {
	var recoverable *Recoverable
	return errors.As(err, &recoverable)
}
