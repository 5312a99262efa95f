// pkg/entity/match.go
package entity

import (
	"github.com/opd-ai/go-pong/pkg/config"
)

// MatchState holds every entity of a match: one ball and two paddles.
type MatchState struct {
	Ball    *Ball
	Player1 *Paddle // left
	Player2 *Paddle // right
}

// NewMatchState creates the initial state: ball centered and at rest,
// paddles centered vertically, scores at zero.
func NewMatchState(controls config.ControlsConfig, onBall BallUpdateFunc, onPlayer1, onPlayer2 PaddleUpdateFunc) *MatchState {
	return &MatchState{
		Ball: NewBall(onBall),
		Player1: NewPaddle(Left, Controls{
			Up:   controls.Player1Up,
			Down: controls.Player1Down,
		}, onPlayer1),
		Player2: NewPaddle(Right, Controls{
			Up:   controls.Player2Up,
			Down: controls.Player2Down,
		}, onPlayer2),
	}
}

// Paddles returns both paddles, left first
func (m *MatchState) Paddles() [2]*Paddle {
	return [2]*Paddle{m.Player1, m.Player2}
}

// Paddle returns the paddle defending side
func (m *MatchState) Paddle(side Side) *Paddle {
	if side == Left {
		return m.Player1
	}
	return m.Player2
}

// Scores returns both scores, left first
func (m *MatchState) Scores() (int, int) {
	return m.Player1.Score, m.Player2.Score
}
