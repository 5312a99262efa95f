// Package frame provides hosts for the engine's "request next frame"
// primitive: a manual clock for tests and headless stepping, and a
// real-time ticker loop.
package frame

// Func is invoked once per requested frame with a timestamp in milliseconds.
type Func func(timestamp float64)

// RequestID identifies a pending frame request. Zero is never issued.
type RequestID uint64

type request struct {
	id RequestID
	fn Func
}

// queue holds pending one-shot frame requests
type queue struct {
	nextID  RequestID
	pending []request
}

func (q *queue) add(fn Func) RequestID {
	q.nextID++
	q.pending = append(q.pending, request{id: q.nextID, fn: fn})
	return q.nextID
}

func (q *queue) cancel(id RequestID) {
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
			return
		}
	}
}

// take removes and returns every request queued so far. Requests added
// while the returned batch runs belong to the next frame.
func (q *queue) take() []request {
	batch := q.pending
	q.pending = nil
	return batch
}
