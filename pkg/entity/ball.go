// pkg/entity/ball.go
package entity

import (
	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// BallUpdateFunc receives the ball's top-left position
type BallUpdateFunc func(x, y float64)

// Ball is the single ball of a match
type Ball struct {
	Box
	Velocity physics.Vector2D // px/s
	OnUpdate BallUpdateFunc
}

// NewBall creates a ball centered on the field and at rest
func NewBall(onUpdate BallUpdateFunc) *Ball {
	b := &Ball{
		Box:      Box{W: config.BallWidth, H: config.BallHeight},
		OnUpdate: onUpdate,
	}
	b.Center()
	return b
}

// Center moves the ball to the middle of the field
func (b *Ball) Center() {
	b.X = (config.FieldWidth - b.W) / 2
	b.Y = (config.FieldHeight - b.H) / 2
}

// Speed returns the magnitude of the ball's velocity
func (b *Ball) Speed() float64 {
	return b.Velocity.Magnitude()
}

// MinX is the leftmost x the ball can take. Reaching it is a goal for the right player.
func (b *Ball) MinX() float64 { return 0 }

// MaxX is the rightmost x the ball can take. Reaching it is a goal for the left player.
func (b *Ball) MaxX() float64 { return config.FieldWidth - b.W }

// MinY is the topmost y the ball can take, just under the top wall
func (b *Ball) MinY() float64 { return config.WallSize }

// MaxY is the lowest y the ball can take, just above the bottom wall
func (b *Ball) MaxY() float64 { return config.FieldHeight - config.WallSize - b.H }

// Notify reports the current position to the output callback
func (b *Ball) Notify() {
	if b.OnUpdate != nil {
		b.OnUpdate(b.X, b.Y)
	}
}
