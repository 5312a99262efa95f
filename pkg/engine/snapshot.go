// pkg/engine/snapshot.go
package engine

// Snapshot is a point-in-time copy of the engine's internal state for
// diagnostics. It is safe to keep after the callback returns.
type Snapshot struct {
	MatchID    string          `json:"matchId"`
	Frame      uint64          `json:"frame"`
	LastUpdate float64         `json:"lastUpdate"`
	Ball       BallSnapshot    `json:"ball"`
	Player1    PaddleSnapshot  `json:"player1"`
	Player2    PaddleSnapshot  `json:"player2"`
	Keys       map[string]bool `json:"keys"`
}

// BallSnapshot describes the ball
type BallSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Speed float64 `json:"speed"`
	Angle float64 `json:"angle"`
}

// PaddleSnapshot describes one paddle
type PaddleSnapshot struct {
	Y            float64 `json:"y"`
	Velocity     float64 `json:"velocity"`
	Acceleration float64 `json:"acceleration"`
	Score        int     `json:"score"`
}

// Snapshot captures the current state
func (g *Game) Snapshot() Snapshot {
	ball := g.state.Ball
	return Snapshot{
		MatchID:    g.matchID,
		Frame:      g.frames,
		LastUpdate: g.lastUpdate,
		Ball: BallSnapshot{
			X:     ball.X,
			Y:     ball.Y,
			VX:    ball.Velocity.X(),
			VY:    ball.Velocity.Y(),
			Speed: ball.Speed(),
			Angle: ball.Velocity.Angle(),
		},
		Player1: PaddleSnapshot{
			Y:            g.state.Player1.Y,
			Velocity:     g.state.Player1.Velocity,
			Acceleration: g.state.Player1.Acceleration,
			Score:        g.state.Player1.Score,
		},
		Player2: PaddleSnapshot{
			Y:            g.state.Player2.Y,
			Velocity:     g.state.Player2.Velocity,
			Acceleration: g.state.Player2.Acceleration,
			Score:        g.state.Player2.Score,
		},
		Keys: g.input.Snapshot(),
	}
}
