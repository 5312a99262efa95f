// Package input translates raw key-down/key-up events into the control
// state read by the engine each frame.
package input

import (
	"sync"
)

// Adapter tracks which of a fixed set of key identifiers are held down.
// Events for any other identifier are ignored. Events may arrive from a
// different goroutine than the one reading the state.
type Adapter struct {
	mu        sync.Mutex
	pressed   map[string]bool
	listening bool
}

// NewAdapter creates an adapter that recognizes exactly the given keys.
// It starts out not listening.
func NewAdapter(keys ...string) *Adapter {
	pressed := make(map[string]bool, len(keys))
	for _, k := range keys {
		pressed[k] = false
	}
	return &Adapter{pressed: pressed}
}

// Listen starts accepting key events
func (a *Adapter) Listen() {
	a.mu.Lock()
	a.listening = true
	a.mu.Unlock()
}

// Stop ignores all further key events and releases every key
func (a *Adapter) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listening = false
	a.releaseAll()
}

// Listening reports whether key events are currently applied
func (a *Adapter) Listening() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listening
}

// KeyDown marks key as pressed. It reports whether the event was applied.
func (a *Adapter) KeyDown(key string) bool {
	return a.set(key, true)
}

// KeyUp marks key as released. It reports whether the event was applied.
func (a *Adapter) KeyUp(key string) bool {
	return a.set(key, false)
}

func (a *Adapter) set(key string, down bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.listening {
		return false
	}
	if _, ok := a.pressed[key]; !ok {
		return false
	}
	a.pressed[key] = down
	return true
}

// Pressed reports whether key is currently held down
func (a *Adapter) Pressed(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pressed[key]
}

// releaseAll marks every key as released. The caller holds a.mu.
func (a *Adapter) releaseAll() {
	for k := range a.pressed {
		a.pressed[k] = false
	}
}

// Snapshot returns a copy of the current key state
func (a *Adapter) Snapshot() map[string]bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]bool, len(a.pressed))
	for k, v := range a.pressed {
		out[k] = v
	}
	return out
}
