// Package progress keeps aggregated counters of a console session: blocks
// submitted, tasks run, failures and settled values. The tracker travels in
// the context handed to the orchestrator.
package progress
