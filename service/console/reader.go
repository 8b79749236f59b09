package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
)

// LineReader reads operator lines
type LineReader interface {
	// Prompt shows prompt and returns the next line without its line break.
	// It returns io.EOF once input is exhausted.
	Prompt(prompt string) (string, error)
	// AppendHistory records an accepted line
	AppendHistory(line string)
	Close() error
}

// streamReader reads lines from a plain stream, as used for pipes and tests
type streamReader struct {
	scanner *bufio.Scanner
	output  io.Writer
	closer  io.Closer
}

func (r *streamReader) Prompt(prompt string) (string, error) {
	if r.output != nil {
		_, _ = fmt.Fprint(r.output, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *streamReader) AppendHistory(string) {}

func (r *streamReader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// NewStreamReader returns a reader echoing prompts to output. Closing the
// reader closes input when it is an io.Closer other than os.Stdin.
func NewStreamReader(input io.Reader, output io.Writer) LineReader {
	ret := &streamReader{scanner: bufio.NewScanner(input), output: output}
	if closer, ok := input.(io.Closer); ok && input != os.Stdin {
		ret.closer = closer
	}
	return ret
}

// NewTerminalReader returns a liner backed reader with line editing, Ctrl-C
// aborting the current prompt and completion from completer.
func NewTerminalReader(completer func(line string) []string) LineReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if completer != nil {
		state.SetCompleter(completer)
	}
	return state
}

// TerminalSupported returns true if the process runs on a terminal liner
// can drive
func TerminalSupported() bool {
	return liner.TerminalSupported()
}
