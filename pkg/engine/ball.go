// pkg/engine/ball.go
package engine

import (
	"math"

	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/event"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// horizontalSurface is the tangent of the top and bottom walls
var horizontalSurface = physics.NewVector2D(1, 0)

// subSteps returns how many slices a frame is split into so that no slice
// moves the ball further than bulletSpeed would in the same time.
func subSteps(speed, bulletSpeed float64) int {
	if bulletSpeed <= 0 || speed <= bulletSpeed {
		return 1
	}
	return int(math.Ceil(speed / bulletSpeed))
}

// updateBall moves the ball over dt seconds, resolving collisions in each
// sub-step, and reports the final position once.
func (g *Game) updateBall(dt float64) {
	ball := g.state.Ball
	steps := subSteps(ball.Speed(), g.physics.BulletSpeed)
	stepDt := dt / float64(steps)

	for i := 0; i < steps; i++ {
		if g.stepBall(stepDt) || g.disposed {
			break
		}
	}

	ball.Notify()
}

// stepBall advances the ball by one sub-step. It returns true if a goal was
// scored, which ends the frame's motion.
func (g *Game) stepBall(dt float64) bool {
	ball := g.state.Ball
	ball.X = physics.Clamp(ball.X+ball.Velocity.X()*dt, ball.MinX(), ball.MaxX())
	ball.Y = physics.Clamp(ball.Y+ball.Velocity.Y()*dt, ball.MinY(), ball.MaxY())

	g.bounceOffWalls(ball)

	for _, p := range g.state.Paddles() {
		if g.bounceOffPaddle(ball, p) {
			return false
		}
	}

	var conceded entity.Side
	switch {
	case ball.X <= ball.MinX():
		conceded = entity.Left
	case ball.X >= ball.MaxX():
		conceded = entity.Right
	default:
		return false
	}
	g.goal(conceded.Opponent())
	return true
}

// bounceOffWalls reflects the ball off the top or bottom wall when it is
// touching that wall and still moving into it.
func (g *Game) bounceOffWalls(ball *entity.Ball) {
	vy := ball.Velocity.Y()
	top := ball.Y <= ball.MinY() && vy < 0
	bottom := ball.Y >= ball.MaxY() && vy > 0
	if !top && !bottom {
		return
	}

	ball.Velocity.Set(ball.Velocity.Bounce(horizontalSurface))
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.WallBounce,
		Source:    g,
	})
}

// bounceOffPaddle reflects the ball off p if they overlap and the ball is
// moving toward p. The reflection normal points from a spot NormalOffset
// behind the paddle's center to the impact point on its face, so hits near
// the ends leave at steeper angles. The spot trails the paddle's vertical
// motion by PaddleMotionFactor seconds, so a moving paddle drags the ball
// along. It reports whether a hit happened.
func (g *Game) bounceOffPaddle(ball *entity.Ball, p *entity.Paddle) bool {
	vx := ball.Velocity.X()
	if (p.Side == entity.Left && vx >= 0) || (p.Side == entity.Right && vx <= 0) {
		return false
	}
	if !ball.Bounds().Collides(p.Bounds()) {
		return false
	}

	center := p.Bounds().Center()
	maxAngle := g.physics.MaxBounceAngle
	refX := center.X() - g.physics.NormalOffset
	minAngle, maxAngleBound := -maxAngle, maxAngle
	if p.Side == entity.Right {
		refX = center.X() + g.physics.NormalOffset
		minAngle, maxAngleBound = math.Pi-maxAngle, math.Pi+maxAngle
	}

	ref := physics.NewVector2D(refX, center.Y()-p.Velocity*g.physics.PaddleMotionFactor)
	impact := physics.NewVector2D(p.FaceX(), ball.CenterY())
	normal := impact.Subtract(ref)
	normal.Normalize()

	v := ball.Velocity.BounceWithNormal(normal)
	v.ClampAngle(minAngle, maxAngleBound)

	speed := math.Min(v.Magnitude()+g.physics.BallSpeedIncrement, g.physics.MaxBallSpeed)
	v.Normalize()
	ball.Velocity.Set(v.Scale(speed))

	g.logger.Debug(g.ctx, "paddle hit", "paddle", p.Side.String(), "speed", speed)
	g.EventBus.Publish(event.NewHitEvent(g, p.Side, speed))
	return true
}

// goal scores a point for scorer and puts the ball and both paddles back
// to their starting positions.
func (g *Game) goal(scorer entity.Side) {
	g.state.Paddle(scorer).Score++
	p1, p2 := g.state.Scores()
	g.callbacks.OnScoreUpdate(p1, p2)

	g.logger.Info(g.ctx, "goal scored", "scorer", scorer.String(), "player1_score", p1, "player2_score", p2)
	g.EventBus.Publish(event.NewGoalEvent(g, scorer, p1, p2))

	g.state.Ball.Center()
	g.serve()
	for _, p := range g.state.Paddles() {
		p.Reset()
		p.Notify()
	}
}

// serve launches the ball at BallSpeed toward a random side. The angle is
// horizontal unless MaxServeAngle allows some spread.
func (g *Game) serve() {
	angle := 0.0
	if spread := g.physics.MaxServeAngle; spread > 0 {
		angle = (g.rng.Float64()*2 - 1) * spread
	}
	v := physics.FromAngle(angle, g.physics.BallSpeed)
	if g.rng.IntN(2) == 0 {
		v = physics.NewVector2D(-v.X(), v.Y())
	}
	g.state.Ball.Velocity.Set(v)
}
