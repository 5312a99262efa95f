// pkg/config/env.go
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv
const (
	EnvBallSpeed         = "PONG_BALL_SPEED"
	EnvMaxBallSpeed      = "PONG_MAX_BALL_SPEED"
	EnvBulletSpeed       = "PONG_BULLET_SPEED"
	EnvFPS               = "PONG_FPS"
	EnvMaxBounceAngleDeg = "PONG_MAX_BOUNCE_ANGLE_DEG"
	EnvKeyPlayer1Up      = "PONG_KEY_P1_UP"
	EnvKeyPlayer1Down    = "PONG_KEY_P1_DOWN"
	EnvKeyPlayer2Up      = "PONG_KEY_P2_UP"
	EnvKeyPlayer2Down    = "PONG_KEY_P2_DOWN"
)

// ApplyEnv overrides config values from PONG_* environment variables.
// Unset variables leave the current value untouched.
func ApplyEnv(config *Config) error {
	if err := envFloat(EnvBallSpeed, &config.Physics.BallSpeed); err != nil {
		return err
	}
	if err := envFloat(EnvMaxBallSpeed, &config.Physics.MaxBallSpeed); err != nil {
		return err
	}
	if err := envFloat(EnvBulletSpeed, &config.Physics.BulletSpeed); err != nil {
		return err
	}

	var degrees float64
	if err := envFloat(EnvMaxBounceAngleDeg, &degrees); err != nil {
		return err
	}
	if degrees != 0 {
		config.Physics.MaxBounceAngle = degrees * math.Pi / 180
	}

	if value, ok := os.LookupEnv(EnvFPS); ok {
		fps, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFPS, err)
		}
		config.Loop.FPS = fps
	}

	envString(EnvKeyPlayer1Up, &config.Controls.Player1Up)
	envString(EnvKeyPlayer1Down, &config.Controls.Player1Down)
	envString(EnvKeyPlayer2Up, &config.Controls.Player2Up)
	envString(EnvKeyPlayer2Down, &config.Controls.Player2Down)

	return nil
}

func envFloat(name string, target *float64) error {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*target = parsed
	return nil
}

func envString(name string, target *string) {
	if value := os.Getenv(name); value != "" {
		*target = value
	}
}
