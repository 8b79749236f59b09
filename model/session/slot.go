package session

import "sync"

// Slot holds at most one owner at a time
type Slot struct {
	mu    sync.Mutex
	owner string
}

// Acquire claims the slot for owner. It returns false if the slot is taken.
func (s *Slot) Acquire(owner string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != "" {
		return false
	}
	s.owner = owner
	return true
}

// Release frees the slot if owner holds it
func (s *Slot) Release(owner string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner == "" || s.owner != owner {
		return false
	}
	s.owner = ""
	return true
}

// Owner returns the current owner, or empty string when the slot is free
func (s *Slot) Owner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

var defaultSlot = &Slot{}

// DefaultSlot returns the process-wide session slot
func DefaultSlot() *Slot {
	return defaultSlot
}
