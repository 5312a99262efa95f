// pkg/frame/manual.go
package frame

// Manual is a frame scheduler driven by explicit Advance calls.
// It is not safe for concurrent use.
type Manual struct {
	queue
	now float64
}

// NewManual creates a manual scheduler whose clock starts at start ms.
func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

// RequestFrame queues fn for the next Advance
func (m *Manual) RequestFrame(fn Func) RequestID {
	return m.add(fn)
}

// CancelFrame drops a pending request. Unknown IDs are ignored.
func (m *Manual) CancelFrame(id RequestID) {
	m.cancel(id)
}

// Pending returns the number of queued requests
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Now returns the current clock value in ms
func (m *Manual) Now() float64 {
	return m.now
}

// Advance moves the clock forward by delta ms and runs every request that
// was pending before the call. It returns how many ran.
func (m *Manual) Advance(delta float64) int {
	m.now += delta
	batch := m.take()
	for _, r := range batch {
		r.fn(m.now)
	}
	return len(batch)
}

// Run advances the clock frames times by delta ms each
func (m *Manual) Run(frames int, delta float64) {
	for i := 0; i < frames; i++ {
		m.Advance(delta)
	}
}
