package console

import "io"

// Option configures a Server
type Option func(s *Server)

// WithReader sets the line reader
func WithReader(reader LineReader) Option {
	return func(s *Server) {
		s.reader = reader
	}
}

// WithOutput sets the writer for notices and results
func WithOutput(output io.Writer) Option {
	return func(s *Server) {
		s.output = output
	}
}

// WithPrompt sets the primary and continuation prompts
func WithPrompt(prompt, continuation string) Option {
	return func(s *Server) {
		if prompt != "" {
			s.prompt = prompt
		}
		if continuation != "" {
			s.continuation = continuation
		}
	}
}

// WithInspector sets the result renderer
func WithInspector(inspector func(value interface{}) string) Option {
	return func(s *Server) {
		s.inspector = inspector
	}
}

// WithRecoverable sets the predicate identifying incomplete input errors
func WithRecoverable(fn func(err error) bool) Option {
	return func(s *Server) {
		s.recoverable = fn
	}
}

// WithHistory sets the persisted history
func WithHistory(history *History) Option {
	return func(s *Server) {
		s.history = history
	}
}
