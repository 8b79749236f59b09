package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_InvalidArguments(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expected    int
		contains    string
	}{
		{description: "unknown flag", args: []string{"-nope"}, expected: 2},
		{description: "invalid input", args: []string{"-input", "{"}, expected: 2, contains: "invalid -input"},
		{description: "missing config", args: []string{"-config", "mem://localhost/repl/none.yaml"}, expected: 1, contains: "failed to load config"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			assert.EqualValues(t, tc.expected, run(tc.args, stdout, stderr))
			assert.Contains(t, stderr.String(), tc.contains)
		})
	}
}
