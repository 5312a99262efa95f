// pkg/render/renderer.go
package render

import (
	"context"
	"sync"

	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/logging"
)

// LogRenderer consumes the engine's output callbacks and writes them to a
// structured log instead of drawing them. Positions are logged at debug
// level and scores at info level.
type LogRenderer struct {
	logger *logging.Logger
	ctx    context.Context

	mu      sync.Mutex
	summary Summary
}

// Summary is the last state a LogRenderer was told about
type Summary struct {
	BallX        float64 `json:"ballX"`
	BallY        float64 `json:"ballY"`
	Paddle1Y     float64 `json:"paddle1Y"`
	Paddle2Y     float64 `json:"paddle2Y"`
	Player1Score int     `json:"player1Score"`
	Player2Score int     `json:"player2Score"`
	BallUpdates  int     `json:"ballUpdates"`
}

// NewLogRenderer creates a LogRenderer. Log records carry correlationID
// when it is not empty.
func NewLogRenderer(logger *logging.Logger, correlationID string) *LogRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	ctx := context.Background()
	if correlationID != "" {
		ctx = logging.WithCorrelationID(ctx, correlationID)
	}
	return &LogRenderer{logger: logger, ctx: ctx}
}

// RenderBall implements engine.Callbacks.OnBallUpdate
func (r *LogRenderer) RenderBall(x, y float64) {
	r.mu.Lock()
	r.summary.BallX, r.summary.BallY = x, y
	r.summary.BallUpdates++
	r.mu.Unlock()

	r.logger.Debug(r.ctx, "ball", "x", x, "y", y)
}

// RenderPaddle1 implements engine.Callbacks.OnPaddle1Update
func (r *LogRenderer) RenderPaddle1(y float64) {
	r.mu.Lock()
	r.summary.Paddle1Y = y
	r.mu.Unlock()

	r.logger.Debug(r.ctx, "paddle", "player", 1, "y", y)
}

// RenderPaddle2 implements engine.Callbacks.OnPaddle2Update
func (r *LogRenderer) RenderPaddle2(y float64) {
	r.mu.Lock()
	r.summary.Paddle2Y = y
	r.mu.Unlock()

	r.logger.Debug(r.ctx, "paddle", "player", 2, "y", y)
}

// RenderScore implements engine.Callbacks.OnScoreUpdate
func (r *LogRenderer) RenderScore(player1, player2 int) {
	r.mu.Lock()
	r.summary.Player1Score, r.summary.Player2Score = player1, player2
	r.mu.Unlock()

	r.logger.Info(r.ctx, "score", "player1", player1, "player2", player2)
}

// Callbacks returns engine callbacks that feed this renderer
func (r *LogRenderer) Callbacks() engine.Callbacks {
	return engine.Callbacks{
		OnBallUpdate:    r.RenderBall,
		OnPaddle1Update: r.RenderPaddle1,
		OnPaddle2Update: r.RenderPaddle2,
		OnScoreUpdate:   r.RenderScore,
	}
}

// Summary returns the latest reported state
func (r *LogRenderer) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summary
}
