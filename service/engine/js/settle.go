package js

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"
	"github.com/viant/repl/runtime/evaluator"
)

// Pending returns true for promises and generator objects
func (e *Engine) Pending(value evaluator.Value) bool {
	v, ok := value.(goja.Value)
	if !ok {
		return false
	}
	if _, ok := asPromise(v); ok {
		return true
	}
	_, _, ok = e.asGenerator(v)
	return ok
}

// Settle waits for a promise to settle or drives a generator until it
// returns. Other values are returned unchanged.
func (e *Engine) Settle(ctx context.Context, value evaluator.Value) (evaluator.Value, error) {
	if e.settleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.settleTimeout)
		defer cancel()
	}
	v, ok := value.(goja.Value)
	if !ok {
		return value, nil
	}
	return e.settle(ctx, v)
}

func (e *Engine) settle(ctx context.Context, v goja.Value) (goja.Value, error) {
	if promise, ok := asPromise(v); ok {
		return e.awaitPromise(ctx, promise)
	}
	if next, throw, ok := e.asGenerator(v); ok {
		return e.driveGenerator(ctx, next, throw)
	}
	return v, nil
}

func (e *Engine) awaitPromise(ctx context.Context, promise *goja.Promise) (goja.Value, error) {
	for {
		if e.isClosed() {
			return nil, ErrClosed
		}
		e.timers.run()
		switch promise.State() {
		case goja.PromiseStateFulfilled:
			return e.settle(ctx, promise.Result())
		case goja.PromiseStateRejected:
			return nil, &Rejection{Reason: promise.Result()}
		}
		if !e.timers.pending() {
			return nil, ErrStalled
		}
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return nil, ErrSettleTimeout
			}
			return nil, ctx.Err()
		case <-e.timers.signal:
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// driveGenerator resumes the generator with each settled yield; a failed
// yield is thrown back into the generator.
func (e *Engine) driveGenerator(ctx context.Context, next, throw goja.Callable) (ret goja.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			thrown := e.thrown(r)
			if thrown == nil {
				panic(r)
			}
			ret, err = nil, thrown
		}
	}()
	step, err := next(goja.Undefined())
	for {
		if err != nil {
			return nil, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			if ctxErr == context.DeadlineExceeded {
				return nil, ErrSettleTimeout
			}
			return nil, ctxErr
		}
		result, ok := step.(*goja.Object)
		if !ok {
			return nil, fmt.Errorf("TypeError: Iterator result %v is not an object", e.inspect(step))
		}
		yielded := result.Get("value")
		if yielded == nil {
			yielded = goja.Undefined()
		}
		if done := result.Get("done"); done != nil && done.ToBoolean() {
			return e.settle(ctx, yielded)
		}
		settled, sErr := e.settle(ctx, yielded)
		if sErr != nil {
			if sErr == ErrSettleTimeout || sErr == ErrClosed || sErr == context.Canceled {
				return nil, sErr
			}
			step, err = throw(goja.Undefined(), e.reason(sErr))
			continue
		}
		step, err = next(goja.Undefined(), settled)
	}
}

// thrown converts a script value raised outside a goja call into an error,
// or returns nil for any other panic
func (e *Engine) thrown(r interface{}) error {
	switch actual := r.(type) {
	case *goja.Exception:
		return actual
	case *goja.Object:
		return errors.New(actual.String())
	}
	return nil
}

func (e *Engine) reason(err error) goja.Value {
	switch actual := err.(type) {
	case *Rejection:
		return actual.Reason
	case *goja.Exception:
		return actual.Value()
	}
	return e.runtime.NewGoError(err)
}

func asPromise(v goja.Value) (*goja.Promise, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	promise, ok := obj.Export().(*goja.Promise)
	return promise, ok
}

func (e *Engine) asGenerator(v goja.Value) (next, throw goja.Callable, ok bool) {
	obj, isObject := v.(*goja.Object)
	if !isObject {
		return nil, nil, false
	}
	nextFn, nextOK := goja.AssertFunction(obj.Get("next"))
	throwFn, throwOK := goja.AssertFunction(obj.Get("throw"))
	if !nextOK || !throwOK {
		return nil, nil, false
	}
	bind := func(fn goja.Callable) goja.Callable {
		return func(_ goja.Value, args ...goja.Value) (goja.Value, error) {
			return fn(obj, args...)
		}
	}
	return bind(nextFn), bind(throwFn), true
}
