// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Side identifies a player by the half of the field they defend
type Side int

const (
	Left Side = iota
	Right
)

// String returns "left" or "right"
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Box is the axis-aligned bounding box shared by the ball and the paddles.
// X and Y are the top-left corner.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Bounds returns the box as a collision rectangle
func (b *Box) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// CenterY returns the vertical center of the box
func (b *Box) CenterY() float64 {
	return b.Y + b.H/2
}
