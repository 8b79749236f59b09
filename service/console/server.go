package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/peterh/liner"
)

const (
	DefaultPrompt             = "> "
	DefaultContinuationPrompt = "... "
)

// EvalFunc evaluates a complete block and reports through callback
type EvalFunc func(raw string, callback Callback)

// Callback receives the outcome of a block
type Callback func(err error, value interface{})

// Server is the operator console
type Server struct {
	eval         EvalFunc
	reader       LineReader
	output       io.Writer
	prompt       string
	continuation string
	inspector    func(value interface{}) string
	recoverable  func(err error) bool
	history      *History
	commands     map[string]*Command
	buffer       []string
	onExit       []func()
	closed       bool
	mu           sync.Mutex
}

// DefineCommand registers a .name command, replacing any previous one
func (s *Server) DefineCommand(name string, command *Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands[name] = command
}

// Command returns a registered command
func (s *Server) Command(name string) (*Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret, ok := s.commands[name]
	return ret, ok
}

// Commands returns sorted command names
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ret = make([]string, 0, len(s.commands))
	for name := range s.commands {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Complete returns command lines matching a partially typed command
func (s *Server) Complete(line string) []string {
	if !strings.HasPrefix(line, ".") || strings.ContainsAny(line, " \t") {
		return nil
	}
	var ret []string
	for _, name := range s.Commands() {
		if strings.HasPrefix("."+name, line) {
			ret = append(ret, "."+name)
		}
	}
	return ret
}

// Write emits a notice line
func (s *Server) Write(line string) {
	_, _ = fmt.Fprintln(s.output, line)
}

// OnExit registers a hook run on forced exit
func (s *Server) OnExit(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExit = append(s.onExit, fn)
}

// ClearBuffer discards buffered incomplete input
func (s *Server) ClearBuffer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = nil
}

// Buffered returns the incomplete input collected so far
func (s *Server) Buffered() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.buffer, "\n")
}

// Closed returns true once the console stopped accepting input
func (s *Server) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close stops the console without running exit hooks. It returns false if
// the console was already closed.
func (s *Server) Close() bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.closed = true
	s.mu.Unlock()
	if s.history != nil {
		if err := s.history.Save(context.Background()); err != nil {
			log.Printf("failed to save console history: %v", err)
		}
	}
	if err := s.reader.Close(); err != nil {
		log.Printf("failed to close console reader: %v", err)
	}
	return true
}

// Exit runs exit hooks, then closes the console
func (s *Server) Exit() {
	if s.Closed() {
		return
	}
	s.mu.Lock()
	hooks := s.onExit
	s.onExit = nil
	s.mu.Unlock()
	for _, hook := range hooks {
		hook()
	}
	s.Close()
}

// Run reads and evaluates lines until the console is closed, input ends or
// ctx is done. End of input is a forced exit.
func (s *Server) Run(ctx context.Context) error {
	s.loadHistory(ctx)
	for !s.Closed() {
		select {
		case <-ctx.Done():
			s.Exit()
			return ctx.Err()
		default:
		}
		prompt := s.prompt
		if s.Buffered() != "" {
			prompt = s.continuation
		}
		line, err := s.reader.Prompt(prompt)
		if s.Closed() {
			return nil
		}
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				s.ClearBuffer()
				continue
			}
			s.Exit()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		s.handle(line)
	}
	return nil
}

func (s *Server) handle(line string) {
	if name, args, ok := parseCommand(line); ok {
		command, found := s.Command(name)
		if found {
			s.record(line)
			command.Action(s, args)
			return
		}
		if s.Buffered() == "" {
			s.Write("Invalid REPL keyword")
			return
		}
	}
	if s.Buffered() == "" && strings.TrimSpace(line) == "" {
		return
	}
	s.mu.Lock()
	s.buffer = append(s.buffer, line)
	raw := strings.Join(s.buffer, "\n")
	s.mu.Unlock()
	s.eval(raw, func(err error, value interface{}) {
		if err != nil && s.recoverable != nil && s.recoverable(err) {
			return
		}
		s.ClearBuffer()
		s.record(raw)
		if err != nil {
			s.Write("Uncaught " + err.Error())
			return
		}
		s.Write(s.inspector(value))
	})
}

func (s *Server) record(raw string) {
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			s.reader.AppendHistory(line)
		}
	}
	if s.history != nil {
		s.history.Append(raw)
	}
}

func (s *Server) loadHistory(ctx context.Context) {
	if s.history == nil {
		return
	}
	lines, err := s.history.Load(ctx)
	if err != nil {
		log.Printf("failed to load console history: %v", err)
		return
	}
	for _, line := range lines {
		s.reader.AppendHistory(line)
	}
}

func (s *Server) defineBuiltins() {
	s.commands["help"] = &Command{
		Help: "Print this help message",
		Action: func(s *Server, _ string) {
			for _, name := range s.Commands() {
				command, _ := s.Command(name)
				s.Write(fmt.Sprintf(".%-10s%s", name, command.Help))
			}
		},
	}
	s.commands["break"] = &Command{
		Help: "Sometimes you get stuck, this gets you out",
		Action: func(s *Server, _ string) {
			s.ClearBuffer()
		},
	}
	s.commands["exit"] = &Command{
		Help: "Exit the REPL",
		Action: func(s *Server, _ string) {
			s.Exit()
		},
	}
}

// New creates a console evaluating blocks with eval. Without a reader the
// console reads os.Stdin.
func New(eval EvalFunc, options ...Option) *Server {
	ret := &Server{
		eval:         eval,
		output:       os.Stdout,
		prompt:       DefaultPrompt,
		continuation: DefaultContinuationPrompt,
		commands:     map[string]*Command{},
		inspector:    func(value interface{}) string { return fmt.Sprintf("%v", value) },
	}
	ret.defineBuiltins()
	for _, opt := range options {
		opt(ret)
	}
	if ret.reader == nil {
		ret.reader = NewStreamReader(os.Stdin, ret.output)
	}
	return ret
}
