package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viant/repl/internal/clock"
)

// Delta is an incremental counter change
type Delta struct {
	Blocks     int
	Incomplete int
	Tasks      int
	Failed     int
	Settled    int
}

// Progress keeps session counters. It is safe for concurrent use.
type Progress struct {
	SessionID string
	StartedAt time.Time

	Blocks     int
	Incomplete int
	Tasks      int
	Failed     int
	Settled    int

	mu       sync.Mutex
	onChange func(Progress)
}

// Update applies d. The onChange callback runs outside the critical
// section with a copy of the counters.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.Blocks += d.Blocks
	p.Incomplete += d.Incomplete
	p.Tasks += d.Tasks
	p.Failed += d.Failed
	p.Settled += d.Settled
	snapshot := p.copy()
	cb := p.onChange
	p.mu.Unlock()
	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the counters
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.copy()
}

func (p *Progress) copy() Progress {
	return Progress{
		SessionID:  p.SessionID,
		StartedAt:  p.StartedAt,
		Blocks:     p.Blocks,
		Incomplete: p.Incomplete,
		Tasks:      p.Tasks,
		Failed:     p.Failed,
		Settled:    p.Settled,
	}
}

// String renders the counters for the console
func (p Progress) String() string {
	return fmt.Sprintf("blocks: %d, incomplete: %d, tasks: %d, failed: %d, settled: %d",
		p.Blocks, p.Incomplete, p.Tasks, p.Failed, p.Settled)
}

// OnChange registers the callback invoked after every Update
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.onChange = cb
	p.mu.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker for sessionID and embeds it in a derived
// context
func WithNewTracker(ctx context.Context, sessionID string) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracker := &Progress{SessionID: sessionID, StartedAt: clock.Now()}
	return WithTracker(ctx, tracker), tracker
}

// WithTracker embeds tracker in a derived context
func WithTracker(ctx context.Context, tracker *Progress) context.Context {
	return context.WithValue(ctx, trackerKey, tracker)
}

// FromContext returns the tracker carried by ctx
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tracker, ok := ctx.Value(trackerKey).(*Progress)
	return tracker, ok
}

// UpdateCtx applies d to the tracker carried by ctx, if any
func UpdateCtx(ctx context.Context, d Delta) {
	if tracker, ok := FromContext(ctx); ok {
		tracker.Update(d)
	}
}
