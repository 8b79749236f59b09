package js

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/repl/model/task"
)

func TestEngine_Exec(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	defer engine.Close()

	_, err = engine.Exec("var x = 1")
	require.NoError(t, err)
	value, err := engine.Exec("x + 1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, engine.Export(value))

	_, err = engine.Exec("abc")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "ReferenceError")
	}
	value, err = engine.Exec("x")
	require.NoError(t, err, "the runtime survives a thrown error")
	assert.EqualValues(t, 1, engine.Export(value))
}

func TestEngine_Call(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	defer engine.Close()

	_, err = engine.Exec("var y")
	require.NoError(t, err)
	fn, err := engine.Exec(task.Assignment("y"))
	require.NoError(t, err)
	_, err = engine.Call(fn, "assigned")
	require.NoError(t, err)
	value, err := engine.Exec("y")
	require.NoError(t, err)
	assert.EqualValues(t, "assigned", engine.Export(value))

	_, err = engine.Call(value, 1)
	assert.Error(t, err)
}

func TestEngine_Same(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	defer engine.Close()

	object, _ := engine.Exec("var o = {}; o")
	again, _ := engine.Exec("o")
	other, _ := engine.Exec("({})")
	assert.True(t, engine.Same(object, again))
	assert.False(t, engine.Same(object, other))
	assert.True(t, engine.Same(nil, nil))
}

func TestFactory(t *testing.T) {
	testCases := []struct {
		description string
		input       interface{}
		expected    interface{}
	}{
		{description: "with input", input: true, expected: true},
		{description: "without input", input: nil, expected: nil},
		{description: "with map input", input: map[string]interface{}{"k": "v"}, expected: "v"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			primitive, err := Factory()(task.Bootstrap("$input", "_"), tc.input)
			require.NoError(t, err)
			defer primitive.Close()
			command := "$input"
			if _, ok := tc.input.(map[string]interface{}); ok {
				command = "$input.k"
			}
			value, err := primitive.Exec(command)
			require.NoError(t, err)
			assert.EqualValues(t, tc.expected, primitive.Export(value))
		})
	}
}

func TestEngine_Settle(t *testing.T) {
	testCases := []struct {
		description string
		command     string
		options     []Option
		pending     bool
		expected    interface{}
		expectErr   error
		errContains string
		cancelled   bool
		rejected    bool
	}{
		{description: "plain value", command: "2 + 2", expected: 4},
		{description: "resolved promise", command: "Promise.resolve(4)", pending: true, expected: 4},
		{description: "async function", command: "(async function () { return 'ok' })()", pending: true, expected: "ok"},
		{description: "timer promise", command: "new Promise(function (resolve) { setTimeout(function () { resolve(5) }, 5) })", pending: true, expected: 5},
		{description: "rejected promise", command: "Promise.reject(new Error('boom'))", pending: true, rejected: true},
		{description: "never settling promise", command: "new Promise(function () {})", pending: true, expectErr: ErrStalled},
		{
			description: "slow promise",
			command:     "new Promise(function (resolve) { setTimeout(resolve, 1000) })",
			options:     []Option{WithSettleTimeout(20 * time.Millisecond)},
			pending:     true,
			expectErr:   ErrSettleTimeout,
		},
		{
			description: "generator yielding promises",
			command: `(function* () {
				var a = yield Promise.resolve(2)
				var b = yield new Promise(function (resolve) { setTimeout(function () { resolve(3) }, 5) })
				return a + b
			})()`,
			pending:  true,
			expected: 5,
		},
		{
			description: "generator catching rejection",
			command: `(function* () {
				try { yield Promise.reject(new Error('x')) } catch (e) { return 'caught ' + e.message }
			})()`,
			pending:  true,
			expected: "caught x",
		},
		{
			description: "endless generator",
			command:     "(function* () { while (true) yield 1 })()",
			options:     []Option{WithSettleTimeout(20 * time.Millisecond)},
			pending:     true,
			expectErr:   ErrSettleTimeout,
		},
		{
			description: "generator with cancelled context",
			command:     "(function* () { while (true) yield 1 })()",
			cancelled:   true,
			pending:     true,
			expectErr:   context.Canceled,
		},
		{
			description: "iterator returning undefined",
			command:     "({next: function () {}, throw: function () {}})",
			pending:     true,
			errContains: "Iterator result undefined is not an object",
		},
		{
			description: "iterator returning null",
			command:     "({next: function () { return null }, throw: function () {}})",
			pending:     true,
			errContains: "Iterator result null is not an object",
		},
		{
			description: "promise of generator",
			command:     "Promise.resolve((function* () { return 7 })())",
			pending:     true,
			expected:    7,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			engine, err := New(tc.options...)
			require.NoError(t, err)
			defer engine.Close()
			value, err := engine.Exec(tc.command)
			require.NoError(t, err)
			assert.EqualValues(t, tc.pending, engine.Pending(value))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tc.cancelled {
				cancel()
			}
			settled, err := engine.Settle(ctx, value)
			switch {
			case tc.expectErr != nil:
				assert.ErrorIs(t, err, tc.expectErr)
			case tc.errContains != "":
				assert.ErrorContains(t, err, tc.errContains)
			case tc.rejected:
				var rejection *Rejection
				if assert.True(t, errors.As(err, &rejection)) {
					assert.Contains(t, rejection.Error(), "boom")
				}
			default:
				require.NoError(t, err)
				assert.EqualValues(t, tc.expected, engine.Export(settled))
			}
		})
	}
}

func TestEngine_ClearTimeout(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	defer engine.Close()
	_, err = engine.Exec("var fired = false; var id = setTimeout(function () { fired = true }, 1); clearTimeout(id)")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	value, err := engine.Exec("fired")
	require.NoError(t, err)
	assert.EqualValues(t, false, engine.Export(value))
	assert.False(t, engine.timers.pending())
}

func TestEngine_Inspect(t *testing.T) {
	testCases := []struct {
		description string
		command     string
		expected    string
	}{
		{description: "string", command: "'abc'", expected: "'abc'"},
		{description: "number", command: "42", expected: "42"},
		{description: "boolean", command: "true", expected: "true"},
		{description: "undefined", command: "undefined", expected: "undefined"},
		{description: "null", command: "null", expected: "null"},
		{description: "named function", command: "(function f() {})", expected: "[Function: f]"},
		{description: "resolved promise", command: "Promise.resolve(1)", expected: "Promise { 1 }"},
		{description: "pending promise", command: "new Promise(function () {})", expected: "Promise { <pending> }"},
		{description: "object", command: "({a: 1})", expected: `{"a":1}`},
		{description: "array", command: "[1, 2]", expected: "[1,2]"},
		{description: "error", command: "new Error('boom')", expected: "Error: boom"},
		{description: "generator", command: "(function* () {})()", expected: "Object [Generator] {}"},
	}
	engine, err := New()
	require.NoError(t, err)
	defer engine.Close()
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			value, err := engine.Exec(tc.command)
			require.NoError(t, err)
			assert.EqualValues(t, tc.expected, engine.Inspect(value))
		})
	}
	assert.EqualValues(t, "undefined", engine.Inspect(nil))
}

func TestEngine_Close(t *testing.T) {
	engine, err := New(WithGlobals(map[string]interface{}{"answer": 42}))
	require.NoError(t, err)
	value, err := engine.Exec("answer")
	require.NoError(t, err)
	assert.EqualValues(t, 42, engine.Export(value))

	assert.NoError(t, engine.Close())
	assert.NoError(t, engine.Close())
	_, err = engine.Exec("answer")
	assert.ErrorIs(t, err, ErrClosed)
}
