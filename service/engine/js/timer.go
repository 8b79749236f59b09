package js

import (
	"log"
	"sync"
	"time"

	"github.com/dop251/goja"
)

type timer struct {
	id     int64
	fn     goja.Callable
	args   []goja.Value
	handle *time.Timer
}

// timers schedules host callbacks. Expired timers are only queued here; the
// callbacks run when the owner calls run.
type timers struct {
	mu        sync.Mutex
	nextID    int64
	scheduled map[int64]*timer
	expired   []int64
	signal    chan struct{}
}

func newTimers() *timers {
	return &timers{scheduled: map[int64]*timer{}, signal: make(chan struct{}, 1)}
}

func (t *timers) schedule(fn goja.Callable, delay time.Duration, args []goja.Value) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	id := t.nextID
	aTimer := &timer{id: id, fn: fn, args: args}
	t.scheduled[id] = aTimer
	aTimer.handle = time.AfterFunc(delay, func() { t.expire(id) })
	return id
}

func (t *timers) expire(id int64) {
	t.mu.Lock()
	t.expired = append(t.expired, id)
	t.mu.Unlock()
	select {
	case t.signal <- struct{}{}:
	default:
	}
}

func (t *timers) cancel(id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if aTimer, ok := t.scheduled[id]; ok {
		aTimer.handle.Stop()
		delete(t.scheduled, id)
	}
}

// pending returns true if any timer is scheduled or expired but not run
func (t *timers) pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.scheduled) > 0
}

// run invokes callbacks of expired timers in expiry order
func (t *timers) run() {
	for {
		t.mu.Lock()
		if len(t.expired) == 0 {
			t.mu.Unlock()
			return
		}
		id := t.expired[0]
		t.expired = t.expired[1:]
		aTimer, ok := t.scheduled[id]
		delete(t.scheduled, id)
		t.mu.Unlock()
		if !ok {
			continue
		}
		if _, err := aTimer.fn(goja.Undefined(), aTimer.args...); err != nil {
			log.Printf("uncaught error in timer callback: %v", err)
		}
	}
}

func (t *timers) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, aTimer := range t.scheduled {
		aTimer.handle.Stop()
		delete(t.scheduled, id)
	}
	t.expired = nil
}
