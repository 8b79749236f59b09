package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplates(t *testing.T) {
	testCases := []struct {
		description string
		actual      string
		expected    string
	}{
		{description: "var declaration", actual: Declaration(KindVar, "x"), expected: "var x"},
		{description: "let declaration", actual: Declaration(KindLet, "count"), expected: "let count"},
		{description: "const registered as let", actual: Declaration(KindConst, "pi"), expected: "let pi"},
		{description: "class binding", actual: ClassBinding("T", "class T {}"), expected: "var T = class T {}"},
		{description: "binding with initializer", actual: Binding("x", "1 + 2"), expected: "x = 1 + 2"},
		{description: "binding without initializer", actual: Binding("x", ""), expected: "x"},
		{description: "assignment wrapper", actual: Assignment("_"), expected: ";(function (value) { _ = value })"},
		{description: "bootstrap", actual: Bootstrap("$input", "_"), expected: "var $input, _;\n;(function (value) { $input = value })"},
		{description: "bootstrap without last result", actual: Bootstrap("$input", ""), expected: "var $input;\n;(function (value) { $input = value })"},
		{description: "bootstrap without names", actual: Bootstrap("", ""), expected: ";(function (value) {})"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.EqualValues(t, tc.expected, tc.actual)
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	testCases := []struct {
		name     string
		expected bool
	}{
		{name: "_", expected: true},
		{name: "$input", expected: true},
		{name: "value1", expected: true},
		{name: "1value", expected: false},
		{name: "a.b", expected: false},
		{name: "", expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsIdentifier(tc.name))
		})
	}
}

func TestTask(t *testing.T) {
	aTask := &Task{Declare: "var x", Command: "x = 1", Yield: "x"}
	assert.True(t, aTask.HasDeclaration())
	assert.True(t, aTask.HasYield())
	bare := &Task{Command: "1 + 1"}
	assert.False(t, bare.HasDeclaration())
	assert.False(t, bare.HasYield())
}
