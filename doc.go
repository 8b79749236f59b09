// Package repl provides a waiting development console for Go hosts.
//
// A host starts a session and blocks on the returned handle while an
// operator types JavaScript into a line console. Every submission runs
// against one persistent evaluation context, so bindings survive between
// submissions. The operator ends the session with .done [expr] or .return,
// which settles the handle with a value:
//
//	srv := repl.New(nil)
//	handle := srv.Start(map[string]interface{}{"user": user})
//	value, err := handle.Wait(ctx)
//
// Promises and generators returned by a submission are settled
// automatically unless the operator runs .disable.
package repl
