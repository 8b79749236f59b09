package evaluator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/repl/model/task"
)

// fakePrimitive understands assignment wrappers, bare names and scripted
// responses; anything else echoes the command.
type fakePrimitive struct {
	bindings  map[string]Value
	responses map[string]Result
	executed  []string
	closed    int
}

func (f *fakePrimitive) Exec(command string) (Value, error) {
	f.executed = append(f.executed, command)
	if r, ok := f.responses[command]; ok {
		return r.Value, r.Err
	}
	if idx := strings.LastIndex(command, ";(function (value) { "); idx != -1 {
		name := strings.TrimSuffix(command[idx+len(";(function (value) { "):], " = value })")
		return func(value Value) (Value, error) {
			f.bindings[name] = value
			return nil, nil
		}, nil
	}
	if value, ok := f.bindings[command]; ok {
		return value, nil
	}
	return command, nil
}

func (f *fakePrimitive) Call(fn Value, args ...Value) (Value, error) {
	callable, ok := fn.(func(Value) (Value, error))
	if !ok {
		return nil, fmt.Errorf("%v is not a function", fn)
	}
	var arg Value
	if len(args) > 0 {
		arg = args[0]
	}
	return callable(arg)
}

func (f *fakePrimitive) Same(a, b Value) bool     { return a == b }
func (f *fakePrimitive) Export(v Value) interface{} { return v }
func (f *fakePrimitive) Close() error {
	f.closed++
	return nil
}

func newFake() *fakePrimitive {
	return &fakePrimitive{bindings: map[string]Value{}, responses: map[string]Result{}}
}

func fakeFactory(primitive *fakePrimitive) Factory {
	return func(bootstrap string, input Value) (Primitive, error) {
		return primitive, Boot(primitive, bootstrap, input)
	}
}

func TestNew(t *testing.T) {
	testCases := []struct {
		description string
		factory     Factory
		expectError bool
	}{
		{description: "missing factory", expectError: true},
		{description: "failing factory", factory: func(string, Value) (Primitive, error) { return nil, errors.New("boom") }, expectError: true},
		{description: "running context", factory: fakeFactory(newFake())},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			ctx, err := New(tc.factory, task.Bootstrap("$input", "_"), true)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StateRunning, ctx.State())
		})
	}
}

func TestContext_Bootstrap(t *testing.T) {
	primitive := newFake()
	ctx, err := New(fakeFactory(primitive), task.Bootstrap("$input", "_"), "payload")
	require.NoError(t, err)
	result := ctx.Submit("$input")
	assert.NoError(t, result.Err)
	assert.Equal(t, "payload", result.Value)
}

func TestContext_Submit(t *testing.T) {
	primitive := newFake()
	primitive.responses["abc"] = Result{Err: errors.New("ReferenceError: abc is not defined")}
	ctx, err := New(fakeFactory(primitive), "", nil)
	require.NoError(t, err)

	failed := ctx.Submit("abc")
	assert.True(t, failed.Failed())
	assert.Equal(t, StateRunning, ctx.State(), "a thrown error keeps the context running")

	require.NoError(t, ctx.Assign("x", 1))
	result := ctx.Submit("x")
	assert.False(t, result.Failed())
	assert.Equal(t, 1, result.Value)
}

func TestContext_Terminate(t *testing.T) {
	testCases := []struct {
		description string
		final       []string
		expected    Value
		expectError bool
	}{
		{description: "without final command"},
		{description: "with final command", final: []string{"2 + 2"}, expected: 4},
		{description: "failing final command", final: []string{"fail"}, expectError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			primitive := newFake()
			primitive.responses["2 + 2"] = Result{Value: 4}
			primitive.responses["fail"] = Result{Err: errors.New("Error: fail")}
			ctx, err := New(fakeFactory(primitive), "", nil)
			require.NoError(t, err)

			value, err := ctx.Terminate(tc.final...)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, value)
			}
			assert.Equal(t, StateTerminated, ctx.State())
			assert.Equal(t, 1, primitive.closed)

			_, err = ctx.Terminate()
			assert.ErrorIs(t, err, ErrTerminated)
			assert.ErrorIs(t, ctx.Submit("1").Err, ErrTerminated)
			assert.Equal(t, 1, primitive.closed)
		})
	}
}

func TestContext_Settle(t *testing.T) {
	primitive := newFake()
	ctx, err := New(fakeFactory(primitive), "", nil)
	require.NoError(t, err)
	assert.False(t, ctx.Pending("value"), "primitives without resolver never report pending values")
	value, err := ctx.Settle(context.Background(), "value")
	assert.NoError(t, err)
	assert.Equal(t, "value", value)
	assert.Equal(t, "value", ctx.Inspect("value"))
}
