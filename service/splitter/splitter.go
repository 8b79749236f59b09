// Package splitter turns a block of script text into executable tasks, one
// group of tasks per top-level statement, in source order.
package splitter

import (
	"errors"
	"strings"

	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
	"github.com/viant/repl/model/task"
)

// Split parses text and returns its tasks. Declarations produce one task per
// binding, assignments to a plain name yield into that name, class
// declarations are rewritten into var bindings and anything else runs
// verbatim.
func Split(text string) ([]*task.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	program, err := parser.ParseFile(nil, "", text, 0)
	if err != nil {
		return nil, newParseError(text, err)
	}
	src := &source{text: text, base: 1}
	if program.File != nil {
		src.base = program.File.Base()
	}
	var ret []*task.Task
	for _, stmt := range program.Body {
		ret = append(ret, classify(stmt).tasks(src)...)
	}
	return ret, nil
}

func newParseError(text string, err error) error {
	ret := &ParseError{Message: err.Error(), cause: err}
	var first *parser.Error
	var list parser.ErrorList
	switch {
	case errors.As(err, &list) && len(list) > 0:
		first = list[0]
	case errors.As(err, &first):
	}
	if first == nil {
		return ret
	}
	ret.Message = first.Message
	ret.Line = first.Position.Line
	ret.Column = first.Position.Column
	end := file.NewFile("", text, 1).Position(len(text))
	ret.Incomplete = first.Position.Line == end.Line && first.Position.Column == end.Column
	return ret
}
