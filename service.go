package repl

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/viant/repl/model/session"
	"github.com/viant/repl/model/task"
	"github.com/viant/repl/progress"
	"github.com/viant/repl/runtime/evaluator"
	"github.com/viant/repl/runtime/orchestrator"
	"github.com/viant/repl/service/console"
	"github.com/viant/repl/service/engine/js"
	"github.com/viant/repl/tracing"
)

// ExitCodeProduction is the process exit status when the environment guard
// trips
const ExitCodeProduction = 255

const (
	serviceName    = "repl"
	serviceVersion = "0.1.0"
)

// Service controls console sessions
type Service struct {
	config  *Config
	factory evaluator.Factory
	slot    *session.Slot
	input   io.Reader
	output  io.Writer
	reader  console.LineReader
	exit    func(code int)
	mu      sync.Mutex
	active  *active
}

// active ties together the parts of the running session
type active struct {
	session      *session.Session
	server       *console.Server
	orchestrator *orchestrator.Orchestrator
	handle       *Handle
	ctx          context.Context
	progress     *progress.Progress
	once         sync.Once
}

// Start begins a session and returns its handle. The optional input is
// exposed to the operator under the configured input name. Start returns
// nil when a session is already active or the environment guard trips.
func (s *Service) Start(input ...interface{}) *Handle {
	guard := s.config.Guard
	if guard.Env != "" && os.Getenv(guard.Env) == guard.Value {
		s.write("ERR: You cannot run RE-PL on production environment, quitting...")
		s.exit(ExitCodeProduction)
		return nil
	}
	var value interface{}
	hasInput := len(input) > 0
	if hasInput {
		value = input[0]
	}
	sess := session.New(nil, hasInput, s.config.Session.Resolver)
	if !s.slot.Acquire(sess.ID) {
		s.write("WARN: Another call to REPL console detected, ignoring.")
		return nil
	}
	s.write("Go RE-PL Development Console")
	s.write("Type .help to show available REPL options")
	if sess.HasInput {
		s.write("Input value available, you can access them with " + s.config.Session.InputName)
	}

	handle := newHandle(sess.ID)
	evalContext, err := evaluator.New(s.factory, task.Bootstrap(s.config.Session.InputName, s.config.Session.LastResult), value)
	if err != nil {
		s.slot.Release(sess.ID)
		s.write("ERR: " + err.Error())
		handle.settle(nil, err)
		return handle
	}
	sess.Context = evalContext
	run := &active{session: sess, handle: handle}
	run.ctx, run.progress = progress.WithNewTracker(context.Background(), sess.ID)
	run.orchestrator = orchestrator.New(
		orchestrator.WithLastResult(s.config.Session.LastResult),
		orchestrator.WithNotifier(func(message string) { run.server.Write(message) }),
	)
	run.server = s.newConsole(run)
	s.mu.Lock()
	s.active = run
	s.mu.Unlock()

	go func() {
		if err := run.server.Run(run.ctx); err != nil {
			log.Printf("console stopped: %v", err)
		}
	}()
	return handle
}

// Stop ends the active session. The optional final command is evaluated
// (and settled in resolver mode) to produce the session outcome.
func (s *Service) Stop(final ...string) {
	run := s.release()
	if run == nil {
		return
	}
	s.finish(run, func() (interface{}, error) {
		evalContext := run.session.Context
		var value evaluator.Value
		if len(final) > 0 && final[0] != "" {
			result := evalContext.Submit(final[0])
			if result.Failed() {
				_, _ = evalContext.Terminate()
				return nil, result.Err
			}
			value = result.Value
			if run.session.Resolver() && evalContext.Pending(value) {
				var err error
				if value, err = evalContext.Settle(context.Background(), value); err != nil {
					_, _ = evalContext.Terminate()
					return nil, err
				}
			}
		}
		if _, err := evalContext.Terminate(); err != nil {
			return nil, err
		}
		return evalContext.Export(value), nil
	})
}

// Worker runs raw as one console block in the active session and returns
// the exported block value
func (s *Service) Worker(ctx context.Context, raw string) (interface{}, error) {
	run := s.current()
	if run == nil {
		return nil, ErrNoSession
	}
	value, err := run.orchestrator.RunBlock(progress.WithTracker(ctx, run.progress), run.session, raw)
	if err != nil {
		return nil, err
	}
	return run.session.Context.Export(value), nil
}

// Progress returns the counters of the active session or nil
func (s *Service) Progress() *progress.Progress {
	if run := s.current(); run != nil {
		return run.progress
	}
	return nil
}

// Resolver switches automatic promise and generator resolution of the
// active session
func (s *Service) Resolver(enabled bool) error {
	run := s.current()
	if run == nil {
		return ErrNoSession
	}
	run.session.SetResolver(enabled)
	return nil
}

// Session returns the active session or nil
func (s *Service) Session() *session.Session {
	if run := s.current(); run != nil {
		return run.session
	}
	return nil
}

func (s *Service) current() *active {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Service) release() *active {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := s.active
	s.active = nil
	return ret
}

// finish terminates the session once: it computes the outcome, closes the
// console, frees the slot and settles the handle.
func (s *Service) finish(run *active, outcome func() (interface{}, error)) {
	run.once.Do(func() {
		value, err := outcome()
		run.server.Close()
		s.slot.Release(run.session.ID)
		run.handle.settle(value, err)
	})
}

func (s *Service) forcedExit(run *active) {
	s.mu.Lock()
	if s.active == run {
		s.active = nil
	}
	s.mu.Unlock()
	s.finish(run, func() (interface{}, error) {
		if _, err := run.session.Context.Terminate(); err != nil {
			log.Printf("failed to terminate session %v: %v", run.session.ID, err)
		}
		return nil, ErrExited
	})
}

func (s *Service) write(line string) {
	_, _ = fmt.Fprintln(s.output, line)
}

func (s *Service) init() {
	if s.slot == nil {
		s.slot = session.DefaultSlot()
	}
	if s.exit == nil {
		s.exit = os.Exit
	}
	if s.factory == nil {
		s.factory = js.Factory(js.WithSettleTimeout(s.config.Session.SettleTimeout()))
	}
	if s.config.Tracing.Enabled {
		if err := tracing.Init(serviceName, serviceVersion, s.config.Tracing.Output); err != nil {
			log.Printf("failed to initialise tracing: %v", err)
		}
	}
}

// New creates a session controller. A nil factory selects the goja engine.
func New(factory evaluator.Factory, options ...Option) *Service {
	ret := &Service{
		config:  DefaultConfig(),
		factory: factory,
		input:   os.Stdin,
		output:  os.Stdout,
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.init()
	return ret
}
