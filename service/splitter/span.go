package splitter

import (
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
)

// source wraps the parsed text with its file base so that node indexes can
// be turned into byte offsets.
type source struct {
	text string
	base int
}

func (s *source) offset(idx file.Idx) int {
	ret := int(idx) - s.base
	if ret < 0 {
		return 0
	}
	if ret > len(s.text) {
		return len(s.text)
	}
	return ret
}

// textOf returns the source text of node.
//
// The parser drops grouping parentheses, so node ranges can start after an
// opening or end before a closing parenthesis, as in "(a)" or "a + (b)".
// Nodes passed here are top-level statements, initializers or class
// literals; none of them can be preceded by an opening or followed by a
// closing parenthesis that is not their own, so both are absorbed.
func (s *source) textOf(node ast.Node) string {
	begin, end := s.offset(node.Idx0()), s.offset(node.Idx1())
	for i := begin - 1; i >= 0; i-- {
		c := s.text[i]
		if isSpace(c) {
			continue
		}
		if c != '(' {
			break
		}
		begin = i
	}
	for i := end; i < len(s.text); i++ {
		c := s.text[i]
		if isSpace(c) {
			continue
		}
		if c != ')' {
			break
		}
		end = i + 1
	}
	return s.text[begin:end]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
