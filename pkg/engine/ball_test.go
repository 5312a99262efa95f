// pkg/engine/ball_test.go
package engine

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/event"
	"github.com/opd-ai/go-pong/pkg/physics"
)

func TestSubSteps(t *testing.T) {
	tests := []struct {
		speed, bullet float64
		expected      int
	}{
		{300, 600, 1},
		{600, 600, 1},
		{601, 600, 2},
		{1200, 600, 2},
		{3000, 600, 5},
		{3001, 600, 6},
		{1000, 0, 1},
	}

	for _, tt := range tests {
		if got := subSteps(tt.speed, tt.bullet); got != tt.expected {
			t.Errorf("subSteps(%v, %v) = %d, want %d", tt.speed, tt.bullet, got, tt.expected)
		}
	}
}

// placeAgainst puts the ball overlapping the face of p with its center
// offset vertically from the paddle center.
func placeAgainst(ball *entity.Ball, p *entity.Paddle, offset float64) {
	if p.Side == entity.Left {
		ball.X = p.FaceX() - 2
	} else {
		ball.X = p.FaceX() - ball.W + 2
	}
	ball.Y = p.CenterY() + offset - ball.H/2
}

func TestBounceOffPaddle_LeftAngleWithinCone(t *testing.T) {
	game, _, _ := newTestGame(t, nil)
	ball := game.State().Ball
	p1 := game.State().Player1
	maxAngle := config.DefaultMaxBounceAngle

	for _, offset := range []float64{-55, -40, -20, -5, 0, 5, 20, 40, 55} {
		for _, incoming := range []float64{math.Pi, math.Pi * 0.75, math.Pi * 1.25, math.Pi * 0.55, math.Pi * 1.45} {
			placeAgainst(ball, p1, offset)
			ball.Velocity.Set(physics.FromAngle(incoming, 400))

			if !game.bounceOffPaddle(ball, p1) {
				t.Fatalf("offset %v incoming %v: no hit reported", offset, incoming)
			}

			angle := ball.Velocity.Angle()
			if angle < -maxAngle-epsilon || angle > maxAngle+epsilon {
				t.Errorf("offset %v incoming %v: angle %v outside [%v, %v]", offset, incoming, angle, -maxAngle, maxAngle)
			}
			if got := ball.Speed(); math.Abs(got-425) > 1e-6 {
				t.Errorf("offset %v incoming %v: speed %v, want 425", offset, incoming, got)
			}
		}
	}
}

func TestBounceOffPaddle_RightAngleWithinMirroredCone(t *testing.T) {
	game, _, _ := newTestGame(t, nil)
	ball := game.State().Ball
	p2 := game.State().Player2
	maxAngle := config.DefaultMaxBounceAngle

	for _, offset := range []float64{-55, -30, 0, 30, 55} {
		for _, incoming := range []float64{0, math.Pi / 4, -math.Pi / 4, math.Pi * 0.45, -math.Pi * 0.45} {
			placeAgainst(ball, p2, offset)
			ball.Velocity.Set(physics.FromAngle(incoming, 300))

			if !game.bounceOffPaddle(ball, p2) {
				t.Fatalf("offset %v incoming %v: no hit reported", offset, incoming)
			}

			angle := ball.Velocity.Angle()
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle < math.Pi-maxAngle-epsilon || angle > math.Pi+maxAngle+epsilon {
				t.Errorf("offset %v incoming %v: angle %v outside mirrored cone", offset, incoming, angle)
			}
		}
	}
}

func TestBounceOffPaddle_CenterHitReverses(t *testing.T) {
	game, _, _ := newTestGame(t, nil)
	ball := game.State().Ball
	p1 := game.State().Player1

	placeAgainst(ball, p1, 0)
	ball.Velocity.Set(physics.NewVector2D(-300, 0))
	game.bounceOffPaddle(ball, p1)

	if math.Abs(ball.Velocity.X()-325) > epsilon || math.Abs(ball.Velocity.Y()) > epsilon {
		t.Errorf("velocity after center hit = (%v, %v), want (325, 0)", ball.Velocity.X(), ball.Velocity.Y())
	}
}

func TestBounceOffPaddle_OffCenterDeflects(t *testing.T) {
	game, _, _ := newTestGame(t, nil)
	ball := game.State().Ball
	p1 := game.State().Player1

	placeAgainst(ball, p1, -30)
	ball.Velocity.Set(physics.NewVector2D(-300, 0))
	game.bounceOffPaddle(ball, p1)

	if ball.Velocity.Y() >= 0 {
		t.Errorf("hit above center leaves with vy = %v, want upwards", ball.Velocity.Y())
	}

	placeAgainst(ball, p1, 30)
	ball.Velocity.Set(physics.NewVector2D(-300, 0))
	game.bounceOffPaddle(ball, p1)

	if ball.Velocity.Y() <= 0 {
		t.Errorf("hit below center leaves with vy = %v, want downwards", ball.Velocity.Y())
	}
}

func TestBounceOffPaddle_MovingAway_NotEligible(t *testing.T) {
	game, _, _ := newTestGame(t, nil)
	ball := game.State().Ball

	tests := []struct {
		name   string
		paddle *entity.Paddle
		vx     float64
	}{
		{"left paddle, ball moving right", game.State().Player1, 300},
		{"right paddle, ball moving left", game.State().Player2, -300},
		{"left paddle, vertical ball", game.State().Player1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placeAgainst(ball, tt.paddle, 0)
			ball.Velocity.Set(physics.NewVector2D(tt.vx, 100))

			if game.bounceOffPaddle(ball, tt.paddle) {
				t.Error("hit reported for a ball moving away")
			}
			if ball.Velocity.X() != tt.vx {
				t.Errorf("velocity changed: vx = %v, want %v", ball.Velocity.X(), tt.vx)
			}
		})
	}
}

func TestBounceOffPaddle_PublishesHit(t *testing.T) {
	bus := event.NewEventBus()
	var hit *event.HitEvent
	bus.Subscribe(event.PaddleHit, func(e event.Event) { hit = e.(*event.HitEvent) })

	game, _, _ := newTestGame(t, nil, WithEventBus(bus))
	ball := game.State().Ball
	p2 := game.State().Player2

	placeAgainst(ball, p2, 0)
	ball.Velocity.Set(physics.NewVector2D(300, 0))
	game.bounceOffPaddle(ball, p2)

	if hit == nil {
		t.Fatal("PaddleHit not published")
	}
	if hit.Paddle != entity.Right || math.Abs(hit.BallSpeed-325) > epsilon {
		t.Errorf("unexpected hit event: %+v", hit)
	}
}

func TestStepBall_WallBounce(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		vy     float64
		wantVY float64
	}{
		{"into top wall", config.WallSize + 1, -300, 300},
		{"into bottom wall", config.FieldHeight - config.WallSize - config.BallHeight - 1, 300, -300},
		{"away from top wall", config.WallSize, 300, 300},
		{"away from bottom wall", config.FieldHeight - config.WallSize - config.BallHeight, -300, -300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, _, _ := newTestGame(t, nil)
			ball := game.State().Ball
			ball.X = 400
			ball.Y = tt.y
			ball.Velocity.Set(physics.NewVector2D(100, tt.vy))

			game.stepBall(0.01)

			if ball.Y < ball.MinY() || ball.Y > ball.MaxY() {
				t.Errorf("ball y = %v left the field", ball.Y)
			}
			if math.Abs(ball.Velocity.Y()-tt.wantVY) > epsilon {
				t.Errorf("vy = %v, want %v", ball.Velocity.Y(), tt.wantVY)
			}
			if math.Abs(ball.Velocity.X()-100) > epsilon {
				t.Errorf("vx = %v, want 100", ball.Velocity.X())
			}
		})
	}
}

func TestUpdateBall_SubStepsPreventTunneling(t *testing.T) {
	// The ball starts 1px right of the left paddle's face. It overlaps the
	// paddle only while x is in [35, 65], so a single step longer than 31px
	// jumps over it. Each sub-stepped row has a one-step control that misses.
	tests := []struct {
		name   string
		speed  float64
		bullet float64
		dt     float64
		hit    bool
	}{
		{"1200 px/s over 50ms sub-stepped", 1200, 600, 0.05, true},
		{"1200 px/s over 50ms in one step", 1200, 1e9, 0.05, false},
		{"3000 px/s over 16ms sub-stepped", 3000, 600, 0.016, true},
		{"3000 px/s over 16ms in one step", 3000, 1e9, 0.016, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Physics.BulletSpeed = tt.bullet
			cfg.Physics.MaxBallSpeed = 5000
			game, _, _ := newTestGame(t, cfg)

			ball := game.State().Ball
			p1 := game.State().Player1
			ball.X = p1.FaceX() + 1
			ball.Y = p1.CenterY() - ball.H/2
			ball.Velocity.Set(physics.NewVector2D(-tt.speed, 0))

			game.updateBall(tt.dt)

			if hit := ball.Velocity.X() > 0; hit != tt.hit {
				t.Errorf("paddle hit = %v, want %v (ball x = %v)", hit, tt.hit, ball.X)
			}
			if tt.hit && ball.X < p1.X {
				t.Errorf("ball x = %v passed behind the paddle", ball.X)
			}
		})
	}
}

func TestBounceOffPaddle_SpeedCapped(t *testing.T) {
	game, _, _ := newTestGame(t, nil)
	ball := game.State().Ball
	p1 := game.State().Player1
	maxSpeed := config.DefaultMaxBallSpeed

	tests := []struct {
		name     string
		incoming float64
		want     float64
	}{
		{"below the cap", maxSpeed - 100, maxSpeed - 100 + config.DefaultBallSpeedIncrement},
		{"boost crosses the cap", maxSpeed - 10, maxSpeed},
		{"already at the cap", maxSpeed, maxSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placeAgainst(ball, p1, 0)
			ball.Velocity.Set(physics.NewVector2D(-tt.incoming, 0))

			game.bounceOffPaddle(ball, p1)

			if got := ball.Speed(); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("speed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGame_IdleRallyStaysBounded(t *testing.T) {
	game, sched, rec := newTestGame(t, nil)
	ball := game.State().Ball
	maxSpeed := config.DefaultMaxBallSpeed
	maxSteps := subSteps(maxSpeed, config.DefaultBulletSpeed)

	// Nobody touches a key: the horizontal serve hits both paddle centers
	// forever. Ten minutes of frames at 60 fps.
	reachedCap := false
	for i := 0; i < 36000; i++ {
		sched.Advance(16)

		speed := ball.Speed()
		if speed > maxSpeed+1e-6 {
			t.Fatalf("frame %d: ball speed %v exceeds %v", i, speed, maxSpeed)
		}
		if steps := subSteps(speed, config.DefaultBulletSpeed); steps > maxSteps {
			t.Fatalf("frame %d: %d sub-steps, want at most %d", i, steps, maxSteps)
		}
		if math.Abs(speed-maxSpeed) < 1e-6 {
			reachedCap = true
		}
	}

	if !reachedCap {
		t.Errorf("ball never reached %v px/s during the rally", maxSpeed)
	}
	if len(rec.scores) != 0 {
		t.Errorf("idle rally produced goals: %v", rec.scores)
	}
}

func TestBounceOffPaddle_PaddleMotionDragsBall(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		factor   float64
		wantVY   int // sign of the outgoing vertical velocity
	}{
		{"paddle moving down", 400, config.DefaultPaddleMotionFactor, 1},
		{"paddle moving up", -400, config.DefaultPaddleMotionFactor, -1},
		{"paddle at rest", 0, config.DefaultPaddleMotionFactor, 0},
		{"motion ignored without factor", 400, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Physics.PaddleMotionFactor = tt.factor
			game, _, _ := newTestGame(t, cfg)
			ball := game.State().Ball
			p1 := game.State().Player1

			p1.Velocity = tt.velocity
			placeAgainst(ball, p1, 0)
			ball.Velocity.Set(physics.NewVector2D(-300, 0))
			game.bounceOffPaddle(ball, p1)

			vy := ball.Velocity.Y()
			switch {
			case tt.wantVY > 0 && vy <= epsilon:
				t.Errorf("vy = %v, want downwards", vy)
			case tt.wantVY < 0 && vy >= -epsilon:
				t.Errorf("vy = %v, want upwards", vy)
			case tt.wantVY == 0 && math.Abs(vy) > epsilon:
				t.Errorf("vy = %v, want 0", vy)
			}
			if ball.Velocity.X() <= 0 {
				t.Errorf("vx = %v, want the ball sent back to the right", ball.Velocity.X())
			}
		})
	}
}

func TestServe_SpreadWithinLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Physics.MaxServeAngle = math.Pi / 6
	game, _, _ := newTestGame(t, cfg, WithRand(rand.New(rand.NewPCG(7, 7))))
	ball := game.State().Ball

	left, right := 0, 0
	for i := 0; i < 200; i++ {
		game.serve()

		if math.Abs(ball.Speed()-cfg.Physics.BallSpeed) > 1e-6 {
			t.Fatalf("serve speed = %v, want %v", ball.Speed(), cfg.Physics.BallSpeed)
		}
		vx, vy := ball.Velocity.X(), ball.Velocity.Y()
		if vx < 0 {
			left++
		} else {
			right++
		}
		if deviation := math.Atan2(math.Abs(vy), math.Abs(vx)); deviation > cfg.Physics.MaxServeAngle+epsilon {
			t.Fatalf("serve deviates %v from horizontal, limit %v", deviation, cfg.Physics.MaxServeAngle)
		}
	}
	if left == 0 || right == 0 {
		t.Errorf("serves went left %d and right %d times, want both", left, right)
	}
}
