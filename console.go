package repl

import (
	"fmt"
	"os"
	"time"

	"github.com/viant/repl/runtime/orchestrator"
	"github.com/viant/repl/service/console"
)

const (
	resolverEnabled  = "Automatic promise and generator resolution has been enabled"
	resolverDisabled = "Automatic promise and generator resolution has been disabled"
)

func (s *Service) newConsole(run *active) *console.Server {
	cfg := s.config.Console
	var server *console.Server
	options := []console.Option{
		console.WithOutput(s.output),
		console.WithPrompt(cfg.Prompt, cfg.ContinuationPrompt),
		console.WithRecoverable(orchestrator.IsRecoverable),
		console.WithInspector(func(value interface{}) string {
			return run.session.Context.Inspect(value)
		}),
	}
	switch {
	case s.reader != nil:
		options = append(options, console.WithReader(s.reader))
	case s.input == os.Stdin && console.TerminalSupported():
		options = append(options, console.WithReader(console.NewTerminalReader(func(line string) []string {
			return server.Complete(line)
		})))
	default:
		options = append(options, console.WithReader(console.NewStreamReader(s.input, s.output)))
	}
	if cfg.HistoryURL != "" {
		options = append(options, console.WithHistory(console.NewHistory(cfg.HistoryURL, cfg.HistoryLimit)))
	}
	server = console.New(s.evalFunc(run), options...)
	s.defineCommands(server)
	server.DefineCommand("stats", &console.Command{
		Help: "Show session statistics",
		Action: func(c *console.Server, _ string) {
			c.ClearBuffer()
			elapsed := run.session.Elapsed().Round(time.Millisecond)
			c.Write(fmt.Sprintf("%v, elapsed: %v", run.progress.Snapshot().String(), elapsed))
		},
	})
	server.OnExit(func() { s.forcedExit(run) })
	return server
}

func (s *Service) evalFunc(run *active) console.EvalFunc {
	return func(raw string, callback console.Callback) {
		value, err := run.orchestrator.RunBlock(run.ctx, run.session, raw)
		if err != nil {
			callback(err, nil)
			return
		}
		callback(nil, value)
	}
}

func (s *Service) defineCommands(server *console.Server) {
	server.DefineCommand("done", &console.Command{
		Help: "Run optional evaluated code as return and continue code execution",
		Action: func(_ *console.Server, args string) {
			s.Stop(args)
		},
	})
	server.DefineCommand("return", &console.Command{
		Help: "Return last input value and continue code execution",
		Action: func(_ *console.Server, _ string) {
			s.Stop(s.config.Session.InputName)
		},
	})
	server.DefineCommand("disable", &console.Command{
		Help: "Disable automatic promise and generator resolution",
		Action: func(c *console.Server, _ string) {
			_ = s.Resolver(false)
			c.ClearBuffer()
			c.Write(resolverDisabled)
		},
	})
	server.DefineCommand("enable", &console.Command{
		Help: "Enable automatic promise and generator resolution",
		Action: func(c *console.Server, _ string) {
			_ = s.Resolver(true)
			c.ClearBuffer()
			c.Write(resolverEnabled)
		},
	})
}
