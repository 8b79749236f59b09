// Package evaluator implements the persistent evaluation context: a single
// long-lived script environment that accepts one command at a time and keeps
// every binding alive between console submissions.
//
// The context does not evaluate anything itself. It drives a Primitive
// supplied by the host through a Factory and tracks the Created, Running and
// Terminated states of the environment.
package evaluator
