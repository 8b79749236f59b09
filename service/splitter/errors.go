package splitter

import (
	"errors"
	"fmt"
)

// ParseError reports source text that could not be parsed as a sequence of
// top-level statements.
type ParseError struct {
	Message string
	Line    int
	Column  int
	// Incomplete is set when parsing failed at the end of input, that is the
	// source looks like a construct the operator is still typing.
	Incomplete bool
	cause      error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "SyntaxError: " + e.Message
	}
	return fmt.Sprintf("SyntaxError: %v (%d:%d)", e.Message, e.Line, e.Column)
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

// IsRecoverable returns true if err is a parse error caused by an
// unterminated construct.
func IsRecoverable(err error) bool {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Incomplete
	}
	return false
}
