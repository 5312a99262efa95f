// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Field geometry. These are fixed for every match.
const (
	FieldWidth   = 900.0
	FieldHeight  = 600.0
	WallSize     = 15.0
	PaddleWidth  = 15.0
	PaddleHeight = 100.0
	BallWidth    = 15.0
	BallHeight   = 15.0
	PaddleMargin = 50.0
)

// Physics tuning defaults
const (
	DefaultBallSpeed          = 300.0 // px/s at serve
	DefaultBallSpeedIncrement = 25.0  // px/s added on every paddle hit
	DefaultMaxBallSpeed       = 1500.0
	DefaultBulletSpeed        = 600.0 // px/s above which ball motion is sub-stepped
	DefaultRacketAccelRate    = 6000.0
	DefaultRacketMaxAccel     = 3000.0
	DefaultRacketMaxSpeed     = 600.0
	DefaultRacketDeceleration = 3000.0
	DefaultNormalOffset       = 50.0
	DefaultPaddleMotionFactor = 0.05 // seconds of paddle travel added to the bounce reference point
	DefaultMaxBounceAngle     = math.Pi / 3
	DefaultMaxServeAngle      = 0.0
	DefaultMaxFrameDelta      = 100 * time.Millisecond
	DefaultFPS                = 60
)

// Default key identifiers
const (
	DefaultPlayer1Up   = "KeyQ"
	DefaultPlayer1Down = "KeyA"
	DefaultPlayer2Up   = "ArrowUp"
	DefaultPlayer2Down = "ArrowDown"
)

// Config contains configuration for a pong match
type Config struct {
	Physics  PhysicsConfig  `json:"physics" toml:"physics"`
	Controls ControlsConfig `json:"controls" toml:"controls"`
	Loop     LoopConfig     `json:"loop" toml:"loop"`
}

// PhysicsConfig contains the simulation tuning values.
// Speeds are in px/s, accelerations in px/s², the accel rate in px/s³
// and angles in radians.
type PhysicsConfig struct {
	BallSpeed          float64  `json:"ballSpeed" toml:"ball_speed"`
	BallSpeedIncrement float64  `json:"ballSpeedIncrement" toml:"ball_speed_increment"`
	MaxBallSpeed       float64  `json:"maxBallSpeed" toml:"max_ball_speed"`
	BulletSpeed        float64  `json:"bulletSpeed" toml:"bullet_speed"`
	RacketAccelRate    float64  `json:"racketAccelRate" toml:"racket_accel_rate"`
	RacketMaxAccel     float64  `json:"racketMaxAccel" toml:"racket_max_accel"`
	RacketMaxSpeed     float64  `json:"racketMaxSpeed" toml:"racket_max_speed"`
	RacketDeceleration float64  `json:"racketDeceleration" toml:"racket_deceleration"`
	NormalOffset       float64  `json:"normalOffset" toml:"normal_offset"`
	PaddleMotionFactor float64  `json:"paddleMotionFactor" toml:"paddle_motion_factor"`
	MaxBounceAngle     float64  `json:"maxBounceAngle" toml:"max_bounce_angle"`
	MaxServeAngle      float64  `json:"maxServeAngle" toml:"max_serve_angle"`
	MaxFrameDelta      Duration `json:"maxFrameDelta" toml:"max_frame_delta"`
}

// ControlsConfig contains the key identifiers bound to each paddle
type ControlsConfig struct {
	Player1Up   string `json:"player1Up" toml:"player1_up"`
	Player1Down string `json:"player1Down" toml:"player1_down"`
	Player2Up   string `json:"player2Up" toml:"player2_up"`
	Player2Down string `json:"player2Down" toml:"player2_down"`
}

// Keys returns the four bound identifiers in player order
func (c ControlsConfig) Keys() []string {
	return []string{c.Player1Up, c.Player1Down, c.Player2Up, c.Player2Down}
}

// LoopConfig contains frame host settings
type LoopConfig struct {
	FPS int `json:"fps" toml:"fps"`
}

// Duration is a time.Duration that reads and writes as a string like "100ms".
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// Millis returns the duration as fractional milliseconds
func (d Duration) Millis() float64 {
	return float64(d.Duration) / float64(time.Millisecond)
}

// DefaultConfig returns a default match configuration
func DefaultConfig() *Config {
	return &Config{
		Physics: PhysicsConfig{
			BallSpeed:          DefaultBallSpeed,
			BallSpeedIncrement: DefaultBallSpeedIncrement,
			MaxBallSpeed:       DefaultMaxBallSpeed,
			BulletSpeed:        DefaultBulletSpeed,
			RacketAccelRate:    DefaultRacketAccelRate,
			RacketMaxAccel:     DefaultRacketMaxAccel,
			RacketMaxSpeed:     DefaultRacketMaxSpeed,
			RacketDeceleration: DefaultRacketDeceleration,
			NormalOffset:       DefaultNormalOffset,
			PaddleMotionFactor: DefaultPaddleMotionFactor,
			MaxBounceAngle:     DefaultMaxBounceAngle,
			MaxServeAngle:      DefaultMaxServeAngle,
			MaxFrameDelta:      Duration{DefaultMaxFrameDelta},
		},
		Controls: ControlsConfig{
			Player1Up:   DefaultPlayer1Up,
			Player1Down: DefaultPlayer1Down,
			Player2Up:   DefaultPlayer2Up,
			Player2Down: DefaultPlayer2Down,
		},
		Loop: LoopConfig{
			FPS: DefaultFPS,
		},
	}
}

// LoadConfig loads a configuration from a .json or .toml file.
// Values missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch format(path) {
	case "toml":
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return config, nil
}

// SaveConfig saves a configuration to a file, picking the format from the extension
func SaveConfig(config *Config, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	switch format(path) {
	case "toml":
		if err := toml.NewEncoder(file).Encode(config); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
	default:
		data, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		if _, err := file.Write(data); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
	}

	return nil
}

func format(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "json"
}
