// pkg/host/engo/system.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-pong/pkg/frame"
)

// KeyPoller reports edge transitions of named buttons since the last frame
type KeyPoller interface {
	JustPressed(name string) bool
	JustReleased(name string) bool
}

// KeyTarget receives raw key events
type KeyTarget interface {
	KeyDown(key string)
	KeyUp(key string)
}

// engoButtons polls engo's global input manager
type engoButtons struct{}

func (engoButtons) JustPressed(name string) bool {
	return engo.Input.Button(name).JustPressed()
}

func (engoButtons) JustReleased(name string) bool {
	return engo.Input.Button(name).JustReleased()
}

// FrameSystem is an ecs system that drives the engine from engo's loop.
// It implements engine.Scheduler: every Update advances a frame clock by
// the engo delta and fires the pending frame request. Before that it
// forwards key transitions to the target.
type FrameSystem struct {
	clock  *frame.Manual
	keys   []string
	poller KeyPoller
	target KeyTarget
}

// NewFrameSystem creates a system that polls the buttons named by keys.
// A nil poller reads engo's global input manager.
func NewFrameSystem(keys []string, poller KeyPoller) *FrameSystem {
	if poller == nil {
		poller = engoButtons{}
	}
	return &FrameSystem{
		clock:  frame.NewManual(0),
		keys:   append([]string(nil), keys...),
		poller: poller,
	}
}

// SetTarget sets where key events go
func (s *FrameSystem) SetTarget(target KeyTarget) {
	s.target = target
}

// RequestFrame implements engine.Scheduler
func (s *FrameSystem) RequestFrame(fn frame.Func) frame.RequestID {
	return s.clock.RequestFrame(fn)
}

// CancelFrame implements engine.Scheduler
func (s *FrameSystem) CancelFrame(id frame.RequestID) {
	s.clock.CancelFrame(id)
}

// Pending returns the number of queued frame requests
func (s *FrameSystem) Pending() int {
	return s.clock.Pending()
}

// Update satisfies the ecs.System interface. dt is in seconds.
func (s *FrameSystem) Update(dt float32) {
	s.pollKeys()
	s.clock.Advance(float64(dt) * 1000)
}

func (s *FrameSystem) pollKeys() {
	if s.target == nil {
		return
	}
	for _, key := range s.keys {
		if s.poller.JustPressed(key) {
			s.target.KeyDown(key)
		}
		if s.poller.JustReleased(key) {
			s.target.KeyUp(key)
		}
	}
}

// Remove satisfies the ecs.System interface
func (s *FrameSystem) Remove(basic ecs.BasicEntity) {
	// The system owns no entities
}
