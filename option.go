package repl

import (
	"io"

	"github.com/viant/repl/model/session"
	"github.com/viant/repl/service/console"
)

// Option configures a Service
type Option func(s *Service)

// WithConfig sets the configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithStreams sets the console input and output
func WithStreams(input io.Reader, output io.Writer) Option {
	return func(s *Service) {
		if input != nil {
			s.input = input
		}
		if output != nil {
			s.output = output
		}
	}
}

// WithLineReader sets the reader of the next session's console
func WithLineReader(reader console.LineReader) Option {
	return func(s *Service) {
		s.reader = reader
	}
}

// WithSlot sets the slot enforcing a single active session. Services share
// the process-wide slot by default.
func WithSlot(slot *session.Slot) Option {
	return func(s *Service) {
		s.slot = slot
	}
}

// WithExitFunc sets the function terminating the process when the
// environment guard trips
func WithExitFunc(fn func(code int)) Option {
	return func(s *Service) {
		s.exit = fn
	}
}
