package repl

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/repl/internal/env"
	"github.com/viant/repl/model/task"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the console configuration. The
// values of DefaultConfig apply to every field a document leaves out.
type Config struct {
	Session SessionConfig `json:"session" yaml:"session"`
	Console ConsoleConfig `json:"console" yaml:"console"`
	Guard   GuardConfig   `json:"guard" yaml:"guard"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

type SessionConfig struct {
	Resolver   bool   `json:"resolver" yaml:"resolver"`
	LastResult string `json:"lastResult" yaml:"lastResult"`
	InputName  string `json:"inputName" yaml:"inputName"`
	// SettleTimeoutMs bounds promise settling of the default engine
	SettleTimeoutMs int `json:"settleTimeoutMs" yaml:"settleTimeoutMs"`
}

// SettleTimeout returns the settle bound as duration
func (c *SessionConfig) SettleTimeout() time.Duration {
	return time.Duration(c.SettleTimeoutMs) * time.Millisecond
}

type ConsoleConfig struct {
	Prompt             string `json:"prompt" yaml:"prompt"`
	ContinuationPrompt string `json:"continuationPrompt" yaml:"continuationPrompt"`
	HistoryURL         string `json:"historyURL" yaml:"historyURL"`
	HistoryLimit       int    `json:"historyLimit" yaml:"historyLimit"`
}

// GuardConfig names the environment variable and value on which the
// console refuses to start.
type GuardConfig struct {
	Env   string `json:"env" yaml:"env"`
	Value string `json:"value" yaml:"value"`
}

type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Output  string `json:"output" yaml:"output"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			Resolver:        true,
			LastResult:      "_",
			InputName:       "$input",
			SettleTimeoutMs: 30000,
		},
		Console: ConsoleConfig{
			Prompt:             "> ",
			ContinuationPrompt: "... ",
			HistoryLimit:       1000,
		},
		Guard: GuardConfig{
			Env:   "GO_ENV",
			Value: "production",
		},
	}
}

// Validate returns an error describing the first invalid setting
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if !task.IsIdentifier(c.Session.InputName) {
		return fmt.Errorf("session.inputName %q is not a valid identifier", c.Session.InputName)
	}
	if c.Session.LastResult != "" && !task.IsIdentifier(c.Session.LastResult) {
		return fmt.Errorf("session.lastResult %q is not a valid identifier", c.Session.LastResult)
	}
	if c.Session.LastResult == c.Session.InputName {
		return fmt.Errorf("session.lastResult and session.inputName must differ")
	}
	if c.Session.SettleTimeoutMs < 0 {
		return fmt.Errorf("session.settleTimeoutMs must be >= 0")
	}
	if c.Console.HistoryLimit < 0 {
		return fmt.Errorf("console.historyLimit must be >= 0")
	}
	return nil
}

// LoadConfig reads a YAML (or JSON) configuration from URL. ${env.KEY}
// references are expanded before decoding.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal([]byte(env.Expand(string(data))), ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
