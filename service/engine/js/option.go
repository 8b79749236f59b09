package js

import "time"

// Option configures an Engine
type Option func(e *Engine)

// WithSettleTimeout bounds how long Settle waits for a promise
func WithSettleTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		e.settleTimeout = timeout
	}
}

// WithGlobals exposes Go values as global bindings
func WithGlobals(globals map[string]interface{}) Option {
	return func(e *Engine) {
		for k, v := range globals {
			e.globals[k] = v
		}
	}
}
