// pkg/engine/paddle.go
package engine

import (
	"math"

	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// updatePaddle runs the acceleration model for one paddle over dt seconds.
func (g *Game) updatePaddle(p *entity.Paddle, dt float64) {
	up := g.input.Pressed(p.Keys.Up)
	down := g.input.Pressed(p.Keys.Down)

	switch {
	case up && !down:
		g.accelerate(p, -1, dt)
	case down && !up:
		g.accelerate(p, 1, dt)
	default:
		g.decelerate(p, dt)
	}

	y := p.Y + p.Velocity*dt
	clamped := physics.Clamp(y, p.MinY(), p.MaxY())
	if clamped != y {
		p.Acceleration = 0
		p.Velocity = 0
	}

	if clamped == p.Y {
		return
	}
	p.Y = clamped
	p.Notify()
}

// accelerate pushes the paddle in direction (-1 up, 1 down). Reversing while
// accelerating the other way jumps straight to the full opposite acceleration.
func (g *Game) accelerate(p *entity.Paddle, direction, dt float64) {
	maxAccel := g.physics.RacketMaxAccel
	if p.Acceleration*direction < 0 {
		p.Acceleration = direction * maxAccel
	} else {
		p.Acceleration = physics.Clamp(p.Acceleration+direction*g.physics.RacketAccelRate*dt, -maxAccel, maxAccel)
	}

	maxSpeed := g.physics.RacketMaxSpeed
	p.Velocity = physics.Clamp(p.Velocity+p.Acceleration*dt, -maxSpeed, maxSpeed)
}

// decelerate slows an idle paddle toward rest without crossing zero.
func (g *Game) decelerate(p *entity.Paddle, dt float64) {
	p.Acceleration = 0
	step := g.physics.RacketDeceleration * dt
	if math.Abs(p.Velocity) <= step {
		p.Velocity = 0
		return
	}
	p.Velocity -= math.Copysign(step, p.Velocity)
}
