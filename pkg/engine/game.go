// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/event"
	"github.com/opd-ai/go-pong/pkg/frame"
	"github.com/opd-ai/go-pong/pkg/input"
	"github.com/opd-ai/go-pong/pkg/logging"
	"github.com/opd-ai/go-pong/pkg/validation"
)

var (
	// ErrMissingCallback is returned by NewGame when a required output callback is nil.
	ErrMissingCallback = errors.New("missing required callback")
	// ErrNilScheduler is returned by NewGame when no frame scheduler is given.
	ErrNilScheduler = errors.New("frame scheduler is nil")
)

// Scheduler is the "request next frame" primitive that drives a Game.
// Each request runs at most once; the game re-requests after every frame.
type Scheduler interface {
	RequestFrame(fn frame.Func) frame.RequestID
	CancelFrame(id frame.RequestID)
}

// ScoreUpdateFunc receives both scores, left player first
type ScoreUpdateFunc func(player1, player2 int)

// DebugUpdateFunc receives a snapshot of the engine after every frame
type DebugUpdateFunc func(Snapshot)

// Callbacks are the output channels of a Game. OnDebugUpdate is optional.
type Callbacks struct {
	OnBallUpdate    entity.BallUpdateFunc
	OnPaddle1Update entity.PaddleUpdateFunc
	OnPaddle2Update entity.PaddleUpdateFunc
	OnScoreUpdate   ScoreUpdateFunc
	OnDebugUpdate   DebugUpdateFunc
}

func (c Callbacks) validate() error {
	switch {
	case c.OnBallUpdate == nil:
		return logging.WrapError(ErrMissingCallback, "OnBallUpdate")
	case c.OnPaddle1Update == nil:
		return logging.WrapError(ErrMissingCallback, "OnPaddle1Update")
	case c.OnPaddle2Update == nil:
		return logging.WrapError(ErrMissingCallback, "OnPaddle2Update")
	case c.OnScoreUpdate == nil:
		return logging.WrapError(ErrMissingCallback, "OnScoreUpdate")
	}
	return nil
}

// Option configures a Game
type Option func(*Game)

// WithRand sets the random source used for serves
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithEventBus publishes match events on bus instead of a private one
func WithEventBus(bus *event.Bus) Option {
	return func(g *Game) { g.EventBus = bus }
}

// WithMatchID sets the match identifier used as the log correlation ID
func WithMatchID(id string) Option {
	return func(g *Game) { g.matchID = id }
}

// Game owns the state of one match and advances it once per frame.
//
// Update and Dispose must be called from the scheduler's goroutine.
// KeyDown and KeyUp may be called from any goroutine.
type Game struct {
	EventBus *event.Bus

	physics   config.PhysicsConfig
	state     *entity.MatchState
	input     *input.Adapter
	scheduler Scheduler
	callbacks Callbacks

	frameID       frame.RequestID
	lastUpdate    float64
	hasLastUpdate bool
	frames        uint64
	disposed      bool

	rng     *rand.Rand
	logger  *logging.Logger
	matchID string
	ctx     context.Context
}

// NewGame creates a match, emits the initial positions, starts listening
// for input and requests the first frame.
func NewGame(cfg *config.Config, callbacks Callbacks, scheduler Scheduler, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if scheduler == nil {
		return nil, ErrNilScheduler
	}
	if err := callbacks.validate(); err != nil {
		return nil, err
	}
	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	g := &Game{
		physics:   cfg.Physics,
		scheduler: scheduler,
		callbacks: callbacks,
		input:     input.NewAdapter(cfg.Controls.Keys()...),
		state: entity.NewMatchState(cfg.Controls,
			callbacks.OnBallUpdate,
			callbacks.OnPaddle1Update,
			callbacks.OnPaddle2Update,
		),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.logger == nil {
		g.logger = logging.NewNopLogger()
	}
	if g.EventBus == nil {
		g.EventBus = event.NewEventBus()
	}
	if g.matchID == "" {
		g.matchID = logging.GenerateCorrelationID()
	}
	g.ctx = logging.WithCorrelationID(context.Background(), g.matchID)

	g.serve()

	g.state.Ball.Notify()
	g.state.Player1.Notify()
	g.state.Player2.Notify()

	g.input.Listen()
	g.frameID = g.scheduler.RequestFrame(g.Update)

	g.logger.Info(g.ctx, "match started",
		"ball_vx", g.state.Ball.Velocity.X(),
		"ball_vy", g.state.Ball.Velocity.Y(),
	)
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.MatchStarted,
		Source:    g,
	})

	return g, nil
}

// Update advances the match to timestamp (milliseconds) and requests the
// next frame. It does nothing once the game is disposed.
func (g *Game) Update(timestamp float64) {
	if g.disposed {
		return
	}
	g.frameID = 0

	dt := g.calculateDeltaTime(timestamp)

	g.updatePaddle(g.state.Player1, dt)
	g.updatePaddle(g.state.Player2, dt)
	g.updateBall(dt)
	g.frames++

	if g.callbacks.OnDebugUpdate != nil {
		g.callbacks.OnDebugUpdate(g.Snapshot())
	}

	// A callback may have disposed the game during this frame.
	if g.disposed {
		return
	}
	g.frameID = g.scheduler.RequestFrame(g.Update)
}

// calculateDeltaTime returns the seconds elapsed since the previous frame.
// The first frame advances nothing, a clock that goes backwards counts as
// zero and long stalls are capped at MaxFrameDelta.
func (g *Game) calculateDeltaTime(timestamp float64) float64 {
	elapsed := 0.0
	if g.hasLastUpdate {
		elapsed = timestamp - g.lastUpdate
	}
	g.lastUpdate = timestamp
	g.hasLastUpdate = true

	if elapsed < 0 {
		elapsed = 0
	}
	if limit := g.physics.MaxFrameDelta.Millis(); elapsed > limit {
		g.logger.Debug(g.ctx, "frame delta capped", "elapsed_ms", elapsed, "limit_ms", limit)
		elapsed = limit
	}
	return elapsed / 1000
}

// KeyDown applies a key press. Unrecognized keys and events after Dispose are ignored.
func (g *Game) KeyDown(key string) {
	if g.input.KeyDown(key) {
		g.logger.Debug(g.ctx, "key down", "key", key)
	}
}

// KeyUp applies a key release. Unrecognized keys and events after Dispose are ignored.
func (g *Game) KeyUp(key string) {
	if g.input.KeyUp(key) {
		g.logger.Debug(g.ctx, "key up", "key", key)
	}
}

// Dispose stops input handling and cancels the pending frame. Calling it
// more than once has no further effect.
func (g *Game) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.input.Stop()
	if g.frameID != 0 {
		g.scheduler.CancelFrame(g.frameID)
		g.frameID = 0
	}

	p1, p2 := g.state.Scores()
	g.logger.Info(g.ctx, "match disposed", "frames", g.frames, "player1_score", p1, "player2_score", p2)
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.MatchDisposed,
		Source:    g,
	})
}

// Disposed reports whether Dispose has been called
func (g *Game) Disposed() bool {
	return g.disposed
}

// State returns the match state. Callers must not modify it while the game runs.
func (g *Game) State() *entity.MatchState {
	return g.state
}

// Scores returns both scores, left player first
func (g *Game) Scores() (int, int) {
	return g.state.Scores()
}

// MatchID returns the match identifier
func (g *Game) MatchID() string {
	return g.matchID
}
