package evaluator

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/repl/model/task"
)

// Result holds either the value of a submitted command or the error it threw.
type Result struct {
	Value Value
	Err   error
}

// Failed returns true if the command threw
func (r Result) Failed() bool {
	return r.Err != nil
}

// Context is the persistent evaluation context. Bindings created by any
// accepted command stay visible to every later command until Terminate.
type Context struct {
	primitive Primitive
	state     State
	mu        sync.Mutex
}

// State returns the current life cycle state
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit executes command against the live environment. A thrown error is
// returned in the result; the context keeps running.
func (c *Context) Submit(command string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRunning {
		return Result{Err: ErrTerminated}
	}
	value, err := c.primitive.Exec(command)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Value: value}
}

// Assign writes value into the named binding.
func (c *Context) Assign(name string, value Value) error {
	fn := c.Submit(task.Assignment(name))
	if fn.Failed() {
		return fmt.Errorf("failed to prepare assignment to %v: %w", name, fn.Err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRunning {
		return ErrTerminated
	}
	if _, err := c.primitive.Call(fn.Value, value); err != nil {
		return fmt.Errorf("failed to assign %v: %w", name, err)
	}
	return nil
}

// Same reports whether a and b are the same engine value
func (c *Context) Same(a, b Value) bool {
	return c.primitive.Same(a, b)
}

// Pending returns true if value is deferred or suspended and the primitive
// knows how to settle it.
func (c *Context) Pending(value Value) bool {
	resolver, ok := c.primitive.(Resolver)
	if !ok {
		return false
	}
	return resolver.Pending(value)
}

// Settle waits for a deferred or suspended value. Values the primitive
// cannot settle are returned unchanged.
func (c *Context) Settle(ctx context.Context, value Value) (Value, error) {
	resolver, ok := c.primitive.(Resolver)
	if !ok {
		return value, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRunning {
		return nil, ErrTerminated
	}
	return resolver.Settle(ctx, value)
}

// Export converts an engine value into a Go value
func (c *Context) Export(value Value) interface{} {
	if value == nil {
		return nil
	}
	return c.primitive.Export(value)
}

// Inspect renders value for display
func (c *Context) Inspect(value Value) string {
	if inspector, ok := c.primitive.(Inspector); ok {
		return inspector.Inspect(value)
	}
	return fmt.Sprintf("%v", c.Export(value))
}

// Terminate optionally runs a final command, then permanently ends the
// context. It returns the final command value, or nil without one.
func (c *Context) Terminate(final ...string) (Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateTerminated {
		return nil, ErrTerminated
	}
	var value Value
	var err error
	if len(final) > 0 && final[0] != "" {
		value, err = c.primitive.Exec(final[0])
	}
	c.state = StateTerminated
	if cErr := c.primitive.Close(); cErr != nil && err == nil {
		err = fmt.Errorf("failed to close evaluation context: %w", cErr)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// New creates an evaluation context with factory. The factory receives the
// bootstrap script and the optional input.
func New(factory Factory, bootstrap string, input Value) (*Context, error) {
	if factory == nil {
		return nil, ErrFactoryMissing
	}
	ret := &Context{state: StateCreated}
	primitive, err := factory(bootstrap, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation context: %w", err)
	}
	ret.primitive = primitive
	ret.state = StateRunning
	return ret, nil
}
