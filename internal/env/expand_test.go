package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandWith(t *testing.T) {
	vars := map[string]string{"HOME": "/home/dev", "A": "1", "B": "2"}
	lookup := func(key string) string { return vars[key] }
	testCases := []struct {
		description string
		input       string
		expected    string
	}{
		{description: "no references", input: "prompt: '> '", expected: "prompt: '> '"},
		{description: "single reference", input: "historyURL: ${env.HOME}/.repl_history", expected: "historyURL: /home/dev/.repl_history"},
		{description: "multiple references", input: "${env.A}-${env.B}-${env.A}", expected: "1-2-1"},
		{description: "unset variable", input: "x=${env.NOTSET}-end", expected: "x=-end"},
		{description: "missing closing brace", input: "start ${env.A and ${env.B} end", expected: "start ${env.A and 2 end"},
		{description: "empty key", input: "oops ${env.} done", expected: "oops  done"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.EqualValues(t, tc.expected, ExpandWith(tc.input, lookup))
		})
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("REPL_TEST_PROMPT", "js> ")
	assert.EqualValues(t, "prompt: js> ", Expand("prompt: ${env.REPL_TEST_PROMPT}"))
}
