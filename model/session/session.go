// Package session defines the record of the single interactive console
// session and the slot guarding it.
package session

import (
	"sync"
	"time"

	"github.com/viant/repl/internal/clock"
	"github.com/viant/repl/internal/idgen"
	"github.com/viant/repl/runtime/evaluator"
)

// Session represents the active console session
type Session struct {
	ID        string
	StartedAt time.Time
	HasInput  bool
	Context   *evaluator.Context
	mu        sync.RWMutex
	resolver  bool
	override  bool
}

// Resolver returns true if deferred and suspended results are settled
// automatically
func (s *Session) Resolver() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver
}

// SetResolver switches automatic resolution on or off
func (s *Session) SetResolver(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolver = enabled
}

// Override returns true once last-result write-back has been disabled
func (s *Session) Override() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.override
}

// LatchOverride disables last-result write-back for the rest of the
// session. It returns true only for the call that set the latch.
func (s *Session) LatchOverride() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.override {
		return false
	}
	s.override = true
	return true
}

// Elapsed returns the session duration so far
func (s *Session) Elapsed() time.Duration {
	return clock.Since(s.StartedAt)
}

// New creates a session bound to context with resolver mode enabled
// according to resolver.
func New(context *evaluator.Context, hasInput bool, resolver bool) *Session {
	return &Session{
		ID:        idgen.New(),
		StartedAt: clock.Now(),
		HasInput:  hasInput,
		Context:   context,
		resolver:  resolver,
	}
}
