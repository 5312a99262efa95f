// pkg/frame/ticker.go
package frame

import (
	"context"
	"sync"
	"time"
)

// Ticker runs frame requests in real time on a single goroutine.
// RequestFrame, CancelFrame and Post may be called from any goroutine;
// every Func and posted task runs on the goroutine that called Run.
type Ticker struct {
	interval time.Duration

	mu    sync.Mutex
	queue queue
	tasks []func()
	start time.Time
}

// NewTicker creates a ticker firing fps times per second
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{
		interval: time.Second / time.Duration(fps),
		start:    time.Now(),
	}
}

// Interval returns the time between frames
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// RequestFrame queues fn for the next tick
func (t *Ticker) RequestFrame(fn Func) RequestID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.queue.add(fn)
}

// CancelFrame drops a pending request
func (t *Ticker) CancelFrame(id RequestID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue.cancel(id)
}

// Post queues task to run on the loop goroutine before the next frame.
func (t *Ticker) Post(task func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tasks = append(t.tasks, task)
}

// Run drives the loop until ctx is done. Timestamps passed to frame
// functions are milliseconds since the ticker was created.
func (t *Ticker) Run(ctx context.Context) error {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tick.C:
			t.step(now)
		}
	}
}

func (t *Ticker) step(now time.Time) {
	t.mu.Lock()
	tasks := t.tasks
	t.tasks = nil
	t.mu.Unlock()

	// Tasks run first so that a cancellation they make applies to this frame.
	for _, task := range tasks {
		task()
	}

	t.mu.Lock()
	batch := t.queue.take()
	t.mu.Unlock()

	timestamp := float64(now.Sub(t.start)) / float64(time.Millisecond)
	for _, r := range batch {
		r.fn(timestamp)
	}
}
