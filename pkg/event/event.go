// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-pong/pkg/entity"
)

// Type represents the type of event
type Type string

// Match event types
const (
	MatchStarted  Type = "match_started"
	MatchDisposed Type = "match_disposed"
	GoalScored    Type = "goal_scored"
	PaddleHit     Type = "paddle_hit"
	WallBounce    Type = "wall_bounce"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// SubscriptionID identifies a registered handler so it can be removed later
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscription
	nextID   SubscriptionID
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a handler previously returned by Subscribe.
// It reports whether a handler was removed.
func (b *Bus) Unsubscribe(eventType Type, id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			// Copy so that a concurrent Publish iterating the old slice is unaffected.
			remaining := make([]subscription, 0, len(subs)-1)
			remaining = append(remaining, subs[:i]...)
			remaining = append(remaining, subs[i+1:]...)
			b.handlers[eventType] = remaining
			return true
		}
	}
	return false
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// GoalEvent is published when a player scores
type GoalEvent struct {
	BaseEvent
	Scorer       entity.Side
	Player1Score int
	Player2Score int
}

// NewGoalEvent creates a new goal event
func NewGoalEvent(source interface{}, scorer entity.Side, p1Score, p2Score int) *GoalEvent {
	return &GoalEvent{
		BaseEvent: BaseEvent{
			EventType: GoalScored,
			Source:    source,
		},
		Scorer:       scorer,
		Player1Score: p1Score,
		Player2Score: p2Score,
	}
}

// HitEvent is published when the ball bounces off a paddle
type HitEvent struct {
	BaseEvent
	Paddle    entity.Side
	BallSpeed float64
}

// NewHitEvent creates a new paddle hit event
func NewHitEvent(source interface{}, paddle entity.Side, ballSpeed float64) *HitEvent {
	return &HitEvent{
		BaseEvent: BaseEvent{
			EventType: PaddleHit,
			Source:    source,
		},
		Paddle:    paddle,
		BallSpeed: ballSpeed,
	}
}
