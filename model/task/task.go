package task

// Task represents one executable unit derived from a top-level statement of
// a submitted block. Empty Declare and Yield mean "none".
type Task struct {
	// Declare is a declaration keyword plus a binding name that has to be
	// registered before Command runs, i.e. "var x".
	Declare string `json:"declare,omitempty" yaml:"declare,omitempty"`
	// Command is the script text to execute.
	Command string `json:"command" yaml:"command"`
	// Yield is the binding name receiving the (settled) command value.
	Yield string `json:"yield,omitempty" yaml:"yield,omitempty"`
}

// HasDeclaration returns true if the task pre-registers a binding
func (t *Task) HasDeclaration() bool {
	return t.Declare != ""
}

// HasYield returns true if the task result is written back into a binding
func (t *Task) HasYield() bool {
	return t.Yield != ""
}
