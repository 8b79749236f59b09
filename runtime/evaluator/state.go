package evaluator

// State represents the evaluation context life cycle state
type State int

const (
	// StateCreated bootstrap has not completed yet
	StateCreated State = iota
	// StateRunning context accepts commands
	StateRunning
	// StateTerminated context has been terminated, absorbing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}
