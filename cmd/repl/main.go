// Command repl starts a standalone development console. The session outcome
// is printed as JSON when the operator runs .done or .return.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/viant/repl"
)

const exitCodeForced = 130

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("repl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configURL := flags.String("config", "", "configuration URL (YAML)")
	input := flags.String("input", "", "session input as JSON")
	traceFile := flags.String("trace", "", "write block and task spans to file")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	ctx := context.Background()
	config := repl.DefaultConfig()
	if *configURL != "" {
		var err error
		if config, err = repl.LoadConfig(ctx, *configURL); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if *traceFile != "" {
		config.Tracing.Enabled = true
		config.Tracing.Output = *traceFile
	}
	var inputs []interface{}
	if *input != "" {
		var value interface{}
		if err := json.Unmarshal([]byte(*input), &value); err != nil {
			_, _ = fmt.Fprintf(stderr, "invalid -input: %v\n", err)
			return 2
		}
		inputs = append(inputs, value)
	}

	srv := repl.New(nil, repl.WithConfig(config), repl.WithStreams(os.Stdin, stdout))
	handle := srv.Start(inputs...)
	if handle == nil {
		return 1
	}
	value, err := handle.Wait(ctx)
	if err != nil {
		if errors.Is(err, repl.ErrExited) {
			return exitCodeForced
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	data, err := json.Marshal(value)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to encode result: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(stdout, string(data))
	return 0
}
