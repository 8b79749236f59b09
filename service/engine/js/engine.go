package js

import (
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"
	"github.com/viant/repl/runtime/evaluator"
)

// DefaultSettleTimeout bounds promise settling unless configured otherwise
const DefaultSettleTimeout = 30 * time.Second

// Engine is a goja backed evaluation primitive
type Engine struct {
	runtime       *goja.Runtime
	timers        *timers
	globals       map[string]interface{}
	settleTimeout time.Duration
	closed        bool
	mu            sync.Mutex
}

// Exec runs command in the global scope
func (e *Engine) Exec(command string) (evaluator.Value, error) {
	if e.isClosed() {
		return nil, ErrClosed
	}
	e.timers.run()
	return e.runtime.RunString(command)
}

// Call invokes a callable value with undefined as this
func (e *Engine) Call(fn evaluator.Value, args ...evaluator.Value) (evaluator.Value, error) {
	if e.isClosed() {
		return nil, ErrClosed
	}
	callable, ok := goja.AssertFunction(e.value(fn))
	if !ok {
		return nil, fmt.Errorf("TypeError: %v is not a function", e.Inspect(fn))
	}
	values := make([]goja.Value, len(args))
	for i, arg := range args {
		values[i] = e.value(arg)
	}
	return callable(goja.Undefined(), values...)
}

// Same compares values with SameValue semantics
func (e *Engine) Same(a, b evaluator.Value) bool {
	return e.value(a).SameAs(e.value(b))
}

// Export converts value into a Go value; undefined and null export to nil
func (e *Engine) Export(value evaluator.Value) interface{} {
	return e.value(value).Export()
}

// Close interrupts the runtime and drops scheduled timers
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.timers.stop()
	e.runtime.Interrupt(ErrClosed)
	return nil
}

func (e *Engine) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// value converts an opaque value into a goja value
func (e *Engine) value(v evaluator.Value) goja.Value {
	switch actual := v.(type) {
	case nil:
		return goja.Undefined()
	case goja.Value:
		return actual
	default:
		return e.runtime.ToValue(actual)
	}
}

func (e *Engine) setTimeout(call goja.FunctionCall) goja.Value {
	fn, ok := goja.AssertFunction(call.Argument(0))
	if !ok {
		panic(e.runtime.NewTypeError("setTimeout callback must be a function"))
	}
	delay := time.Duration(call.Argument(1).ToInteger()) * time.Millisecond
	if delay < 0 {
		delay = 0
	}
	var args []goja.Value
	if len(call.Arguments) > 2 {
		args = append(args, call.Arguments[2:]...)
	}
	return e.runtime.ToValue(e.timers.schedule(fn, delay, args))
}

func (e *Engine) clearTimeout(call goja.FunctionCall) goja.Value {
	if arg := call.Argument(0); !goja.IsUndefined(arg) && !goja.IsNull(arg) {
		e.timers.cancel(arg.ToInteger())
	}
	return goja.Undefined()
}

func (e *Engine) init() error {
	if err := e.runtime.Set("setTimeout", e.setTimeout); err != nil {
		return err
	}
	if err := e.runtime.Set("clearTimeout", e.clearTimeout); err != nil {
		return err
	}
	for name, value := range e.globals {
		if err := e.runtime.Set(name, value); err != nil {
			return fmt.Errorf("failed to set global %v: %w", name, err)
		}
	}
	return nil
}

// New creates an engine bound to a fresh runtime
func New(options ...Option) (*Engine, error) {
	ret := &Engine{
		runtime:       goja.New(),
		timers:        newTimers(),
		globals:       map[string]interface{}{},
		settleTimeout: DefaultSettleTimeout,
	}
	for _, opt := range options {
		opt(ret)
	}
	if err := ret.init(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Factory returns an evaluator.Factory creating one engine per context
func Factory(options ...Option) evaluator.Factory {
	return func(bootstrap string, input evaluator.Value) (evaluator.Primitive, error) {
		engine, err := New(options...)
		if err != nil {
			return nil, err
		}
		if err = evaluator.Boot(engine, bootstrap, input); err != nil {
			_ = engine.Close()
			return nil, err
		}
		return engine, nil
	}
}
