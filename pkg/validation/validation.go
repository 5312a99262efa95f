// Package validation checks match configuration before an engine is built.
package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/opd-ai/go-pong/pkg/config"
)

// Limits for configuration values
const (
	MaxKeyIdentifierLen = 32
	MaxFPS              = 1000
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Key identifiers look like DOM KeyboardEvent.code values: "KeyQ", "ArrowUp", "Digit1".
var validKeyIdentifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ValidateConfig checks that every value in cfg can drive a match
func ValidateConfig(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := ValidatePhysics(cfg.Physics); err != nil {
		return err
	}
	if err := ValidateControls(cfg.Controls); err != nil {
		return err
	}
	if cfg.Loop.FPS <= 0 || cfg.Loop.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d out of range (1-%d)", ErrInvalidConfig, cfg.Loop.FPS, MaxFPS)
	}
	return nil
}

// ValidatePhysics checks the simulation tuning values
func ValidatePhysics(p config.PhysicsConfig) error {
	positive := []struct {
		name  string
		value float64
	}{
		{"ballSpeed", p.BallSpeed},
		{"maxBallSpeed", p.MaxBallSpeed},
		{"bulletSpeed", p.BulletSpeed},
		{"racketAccelRate", p.RacketAccelRate},
		{"racketMaxAccel", p.RacketMaxAccel},
		{"racketMaxSpeed", p.RacketMaxSpeed},
		{"racketDeceleration", p.RacketDeceleration},
		{"normalOffset", p.NormalOffset},
	}
	for _, f := range positive {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}

	if p.BallSpeedIncrement < 0 || math.IsNaN(p.BallSpeedIncrement) {
		return fmt.Errorf("%w: ballSpeedIncrement cannot be negative, got %v", ErrInvalidConfig, p.BallSpeedIncrement)
	}
	if p.MaxBallSpeed < p.BallSpeed {
		return fmt.Errorf("%w: maxBallSpeed %v is below ballSpeed %v", ErrInvalidConfig, p.MaxBallSpeed, p.BallSpeed)
	}
	if p.PaddleMotionFactor < 0 || math.IsNaN(p.PaddleMotionFactor) || math.IsInf(p.PaddleMotionFactor, 0) {
		return fmt.Errorf("%w: paddleMotionFactor must be a non-negative finite number, got %v", ErrInvalidConfig, p.PaddleMotionFactor)
	}
	if !(p.MaxBounceAngle > 0 && p.MaxBounceAngle < math.Pi/2) {
		return fmt.Errorf("%w: maxBounceAngle must be in (0, π/2), got %v", ErrInvalidConfig, p.MaxBounceAngle)
	}
	if !(p.MaxServeAngle >= 0 && p.MaxServeAngle < math.Pi/2) {
		return fmt.Errorf("%w: maxServeAngle must be in [0, π/2), got %v", ErrInvalidConfig, p.MaxServeAngle)
	}
	if p.MaxFrameDelta.Duration <= 0 {
		return fmt.Errorf("%w: maxFrameDelta must be positive, got %v", ErrInvalidConfig, p.MaxFrameDelta)
	}
	return nil
}

// ValidateControls checks that the four key identifiers are well formed and distinct
func ValidateControls(c config.ControlsConfig) error {
	seen := make(map[string]bool, 4)
	for _, key := range c.Keys() {
		if err := ValidateKeyIdentifier(key); err != nil {
			return err
		}
		if seen[key] {
			return fmt.Errorf("%w: key %q bound more than once", ErrInvalidConfig, key)
		}
		seen[key] = true
	}
	return nil
}

// ValidateKeyIdentifier checks a single key identifier
func ValidateKeyIdentifier(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: key identifier cannot be empty", ErrInvalidConfig)
	}

	if len(key) > MaxKeyIdentifierLen {
		return fmt.Errorf("%w: key identifier too long: %d characters (max %d)", ErrInvalidConfig, len(key), MaxKeyIdentifierLen)
	}

	if !utf8.ValidString(key) {
		return fmt.Errorf("%w: key identifier contains invalid UTF-8 characters", ErrInvalidConfig)
	}

	if !validKeyIdentifier.MatchString(key) {
		return fmt.Errorf("%w: key identifier %q contains invalid characters", ErrInvalidConfig, key)
	}

	return nil
}
