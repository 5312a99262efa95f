// pkg/entity/paddle.go
package entity

import (
	"github.com/opd-ai/go-pong/pkg/config"
)

// PaddleUpdateFunc receives the paddle's top y position
type PaddleUpdateFunc func(y float64)

// Controls holds the key identifiers that move a paddle
type Controls struct {
	Up   string
	Down string
}

// Paddle is a player's racket. Its x position never changes during a match.
type Paddle struct {
	Box
	Side         Side
	Score        int
	Keys         Controls
	Acceleration float64 // px/s², negative is upwards
	Velocity     float64 // px/s, negative is upwards
	OnUpdate     PaddleUpdateFunc
}

// NewPaddle creates a paddle for side, centered vertically
func NewPaddle(side Side, keys Controls, onUpdate PaddleUpdateFunc) *Paddle {
	p := &Paddle{
		Box:      Box{W: config.PaddleWidth, H: config.PaddleHeight},
		Side:     side,
		Keys:     keys,
		OnUpdate: onUpdate,
	}
	if side == Left {
		p.X = config.PaddleMargin
	} else {
		p.X = config.FieldWidth - config.PaddleMargin - p.W
	}
	p.Reset()
	return p
}

// Reset centers the paddle vertically and stops it
func (p *Paddle) Reset() {
	p.Y = (config.FieldHeight - p.H) / 2
	p.Acceleration = 0
	p.Velocity = 0
}

// MinY is the topmost y the paddle can take
func (p *Paddle) MinY() float64 { return config.WallSize }

// MaxY is the lowest y the paddle can take
func (p *Paddle) MaxY() float64 { return config.FieldHeight - config.WallSize - p.H }

// FaceX returns the x of the edge facing the field
func (p *Paddle) FaceX() float64 {
	if p.Side == Left {
		return p.X + p.W
	}
	return p.X
}

// Notify reports the current position to the output callback
func (p *Paddle) Notify() {
	if p.OnUpdate != nil {
		p.OnUpdate(p.Y)
	}
}
