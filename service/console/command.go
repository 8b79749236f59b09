package console

import (
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Command is a named console command invoked as .name [args]
type Command struct {
	Help   string
	Action func(s *Server, args string)
}

const (
	whitespaceCode = iota
	dotCode
	nameCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	dotToken        = parsly.NewToken(dotCode, ".", matcher.NewByte('.'))
	nameToken       = parsly.NewToken(nameCode, "Name", &nameMatcher{})
)

// nameMatcher matches a command name: a letter followed by letters, digits,
// '_' or '-'
type nameMatcher struct{}

func (m *nameMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize || !isLetter(input[pos]) {
		return 0
	}
	matched := 1
	for i := pos + 1; i < cursor.InputSize; i++ {
		c := input[i]
		if isLetter(c) || (c >= '0' && c <= '9') || c == '_' || c == '-' {
			matched++
			continue
		}
		break
	}
	return matched
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parseCommand splits a ".name args" line. It returns false when line is not
// shaped like a command.
func parseCommand(line string) (name string, args string, ok bool) {
	cursor := parsly.NewCursor("", []byte(line), 0)
	matched := cursor.MatchAfterOptional(whitespaceToken, dotToken)
	if matched.Code != dotCode {
		return "", "", false
	}
	matched = cursor.MatchOne(nameToken)
	if matched.Code != nameCode {
		return "", "", false
	}
	name = matched.Text(cursor)
	if cursor.Pos < cursor.InputSize {
		next := cursor.Input[cursor.Pos]
		if next != ' ' && next != '\t' {
			return "", "", false
		}
	}
	return name, strings.TrimSpace(string(cursor.Input[cursor.Pos:])), true
}
