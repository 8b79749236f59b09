// Package js provides the ECMAScript evaluation primitive of the console,
// backed by the goja engine.
//
// Each session gets its own goja.Runtime. The runtime is not goroutine safe,
// so host timers registered with setTimeout fire onto a queue that is
// drained by the goroutine owning the engine: before every Exec and while a
// promise or generator is being settled.
package js
