package orchestrator

import (
	"context"
	"fmt"

	"github.com/viant/repl/model/session"
	"github.com/viant/repl/model/task"
	"github.com/viant/repl/progress"
	"github.com/viant/repl/runtime/evaluator"
	"github.com/viant/repl/service/splitter"
	"github.com/viant/repl/tracing"
)

// DefaultLastResult is the binding holding the most recent block result
const DefaultLastResult = "_"

// OverrideNotice is emitted once the operator's own code reassigns the
// last-result name.
const OverrideNotice = "Underscore writeback has been disabled."

// Orchestrator runs blocks of console input
type Orchestrator struct {
	lastResult string
	notifier   Notifier
}

// RunBlock splits raw into tasks and runs them in order against the session
// context. It returns the result of the final task.
func (o *Orchestrator) RunBlock(ctx context.Context, sess *session.Session, raw string) (result evaluator.Value, err error) {
	if sess == nil || sess.Context == nil {
		return nil, ErrNoSession
	}
	ctx, span := tracing.StartSpan(ctx, "repl.block", "INTERNAL")
	span.WithAttributes(map[string]string{"session.id": sess.ID})
	defer func() { tracing.EndSpan(span, err) }()

	evalContext := sess.Context
	writeBack := o.lastResult != "" && !sess.Override()
	var snapshot evaluator.Value
	if writeBack {
		current := evalContext.Submit(o.lastResult)
		if current.Failed() {
			return nil, fmt.Errorf("failed to read %v: %w", o.lastResult, current.Err)
		}
		snapshot = current.Value
	}

	tasks, err := splitter.Split(raw)
	if err != nil {
		if splitter.IsRecoverable(err) {
			progress.UpdateCtx(ctx, progress.Delta{Incomplete: 1})
			return nil, &Recoverable{Err: err}
		}
		progress.UpdateCtx(ctx, progress.Delta{Blocks: 1, Failed: 1})
		return nil, err
	}
	progress.UpdateCtx(ctx, progress.Delta{Blocks: 1})
	if len(tasks) == 0 {
		return nil, nil
	}
	for _, aTask := range tasks {
		if result, err = o.runTask(ctx, sess, aTask); err != nil {
			return nil, err
		}
	}

	if writeBack {
		current := evalContext.Submit(o.lastResult)
		if current.Failed() {
			return nil, fmt.Errorf("failed to read %v: %w", o.lastResult, current.Err)
		}
		if evalContext.Same(snapshot, current.Value) {
			if err = evalContext.Assign(o.lastResult, result); err != nil {
				return nil, err
			}
		} else if sess.LatchOverride() {
			o.notify(OverrideNotice)
		}
	}
	return result, nil
}

func (o *Orchestrator) runTask(ctx context.Context, sess *session.Session, aTask *task.Task) (value evaluator.Value, err error) {
	ctx, span := tracing.StartSpan(ctx, "repl.task", "INTERNAL")
	span.WithAttributes(map[string]string{"task.command": aTask.Command, "task.yield": aTask.Yield})
	defer func() { tracing.EndSpan(span, err) }()

	progress.UpdateCtx(ctx, progress.Delta{Tasks: 1})
	defer func() {
		if err != nil {
			progress.UpdateCtx(ctx, progress.Delta{Failed: 1})
		}
	}()
	evalContext := sess.Context
	if aTask.HasDeclaration() {
		if declared := evalContext.Submit(aTask.Declare); declared.Failed() && !o.bound(sess, aTask.Yield) {
			return nil, &CommandError{Task: aTask, Err: declared.Err}
		}
	}
	executed := evalContext.Submit(aTask.Command)
	if executed.Failed() {
		return nil, &CommandError{Task: aTask, Err: executed.Err}
	}
	value = executed.Value
	if sess.Resolver() && evalContext.Pending(value) {
		if value, err = evalContext.Settle(ctx, value); err != nil {
			return nil, &CommandError{Task: aTask, Err: err}
		}
		progress.UpdateCtx(ctx, progress.Delta{Settled: 1})
	}
	if aTask.HasYield() {
		if err = evalContext.Assign(aTask.Yield, value); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// bound returns true if name already resolves in the session context; a
// repeated lexical declaration of such a name runs as a plain assignment.
func (o *Orchestrator) bound(sess *session.Session, name string) bool {
	if name == "" {
		return false
	}
	return !sess.Context.Submit(name).Failed()
}

func (o *Orchestrator) notify(message string) {
	if o.notifier != nil {
		o.notifier(message)
	}
}

// New creates an orchestrator writing back into DefaultLastResult
func New(options ...Option) *Orchestrator {
	ret := &Orchestrator{lastResult: DefaultLastResult}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
