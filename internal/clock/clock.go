// Package clock provides the time source of session timestamps.
package clock

import "time"

// NowFunc returns current time. Tests replace it for determinism.
var NowFunc = time.Now

// Now returns NowFunc()
func Now() time.Time { return NowFunc() }

// Since returns time elapsed since t according to NowFunc
func Since(t time.Time) time.Duration { return NowFunc().Sub(t) }
