// Package orchestrator runs console blocks against the session evaluation
// context. A block is split into tasks which run strictly one after another:
// declarations are pre-registered, deferred and suspended results are
// settled while resolver mode is on, and results are written back into their
// bindings and into the last-result name.
package orchestrator
