package evaluator

import (
	"context"
	"fmt"
)

// Value is an opaque engine value.
type Value = interface{}

// Primitive executes script text against one isolated, persistent
// environment.
type Primitive interface {
	// Exec runs command and returns its completion value or the thrown error.
	Exec(command string) (Value, error)
	// Call invokes a callable engine value with the supplied arguments.
	Call(fn Value, args ...Value) (Value, error)
	// Same reports whether both values are the same engine value.
	Same(a, b Value) bool
	// Export converts an engine value into a plain Go value.
	Export(value Value) interface{}
	// Close permanently stops the environment.
	Close() error
}

// Resolver is implemented by primitives whose values may be deferred
// (promise-like) or suspended (generator-like).
type Resolver interface {
	// Pending returns true if value needs to be settled before use.
	Pending(value Value) bool
	// Settle waits for value to settle and returns the settled value.
	Settle(ctx context.Context, value Value) (Value, error)
}

// Inspector renders engine values for display.
type Inspector interface {
	Inspect(value Value) string
}

// Factory creates a primitive bound to a fresh environment. The bootstrap
// script is opaque to the caller; input is nil when the session has none.
type Factory func(bootstrap string, input Value) (Primitive, error)

// Boot runs bootstrap on primitive and hands input to the function the
// bootstrap script evaluates to. Factories can use it to honour the
// bootstrap contract.
func Boot(primitive Primitive, bootstrap string, input Value) error {
	if bootstrap == "" {
		return nil
	}
	fn, err := primitive.Exec(bootstrap)
	if err != nil {
		return fmt.Errorf("failed to run bootstrap: %w", err)
	}
	if _, err = primitive.Call(fn, input); err != nil {
		return fmt.Errorf("failed to apply bootstrap input: %w", err)
	}
	return nil
}
