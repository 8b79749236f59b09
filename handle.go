package repl

import (
	"context"
	"sync"
)

// Handle is the host side of a session. It settles once when the session
// ends.
type Handle struct {
	ID    string
	done  chan struct{}
	once  sync.Once
	value interface{}
	err   error
}

var closedChannel = func() chan struct{} {
	ret := make(chan struct{})
	close(ret)
	return ret
}()

// Done returns a channel closed when the session ends. A nil handle is done.
func (h *Handle) Done() <-chan struct{} {
	if h == nil {
		return closedChannel
	}
	return h.done
}

// Wait blocks until the session ends or ctx is done, then returns the
// session outcome
func (h *Handle) Wait(ctx context.Context) (interface{}, error) {
	if h == nil {
		return nil, ErrNoSession
	}
	select {
	case <-h.done:
		return h.value, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Handle) settle(value interface{}, err error) {
	h.once.Do(func() {
		h.value = value
		h.err = err
		close(h.done)
	})
}

func newHandle(ID string) *Handle {
	return &Handle{ID: ID, done: make(chan struct{})}
}
