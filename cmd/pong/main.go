// cmd/pong/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/frame"
	enginehost "github.com/opd-ai/go-pong/pkg/host/engo"
	"github.com/opd-ai/go-pong/pkg/logging"
	"github.com/opd-ai/go-pong/pkg/render"
	"github.com/opd-ai/go-pong/pkg/validation"
)

// Host names accepted by -host
const (
	hostHeadless = "headless"
	hostRealtime = "realtime"
	hostEngo     = "engo"
)

type options struct {
	configPath    string
	createDefault bool
	host          string
	duration      time.Duration
	seed          uint64
	width         int
	height        int
}

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	opts := parseCommandLineFlags()

	if opts.createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", opts.configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", opts.configPath,
		)
		return
	}

	cfg, err := loadConfig(ctx, logger, opts.configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", opts.configPath,
		)
		os.Exit(1)
	}

	matchID := logging.GenerateCorrelationID()
	ctx = logging.WithCorrelationID(ctx, matchID)
	renderer := render.NewLogRenderer(logger, matchID)
	engineOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithMatchID(matchID),
	}
	if opts.seed != 0 {
		engineOpts = append(engineOpts, engine.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed))))
	}

	logger.Info(ctx, "Starting match", "host", opts.host, "fps", cfg.Loop.FPS)

	switch opts.host {
	case hostHeadless:
		err = runHeadless(cfg, renderer, opts.duration, engineOpts)
	case hostRealtime:
		err = runRealtime(ctx, cfg, renderer, opts.duration, engineOpts)
	case hostEngo:
		runEngo(cfg, renderer, logger, opts, engineOpts)
	default:
		err = errors.New("unknown host " + opts.host)
	}
	if err != nil {
		logger.Error(ctx, "Match failed", err, "host", opts.host)
		os.Exit(1)
	}

	summary := renderer.Summary()
	logger.Info(ctx, "Match finished",
		"player1_score", summary.Player1Score,
		"player2_score", summary.Player2Score,
		"ball_updates", summary.BallUpdates,
	)
}

// parseCommandLineFlags parses the command line
func parseCommandLineFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "pong.toml", "Path to configuration file (.toml or .json)")
	flag.BoolVar(&opts.createDefault, "default", false, "Create default configuration file")
	flag.StringVar(&opts.host, "host", hostHeadless, "Frame host: 'headless', 'realtime' or 'engo'")
	flag.DurationVar(&opts.duration, "duration", time.Minute, "Match length for the headless and realtime hosts")
	flag.Uint64Var(&opts.seed, "seed", 0, "Serve random seed (0 picks one)")
	flag.IntVar(&opts.width, "width", int(config.FieldWidth), "Window width (engo only)")
	flag.IntVar(&opts.height, "height", int(config.FieldHeight), "Window height (engo only)")
	flag.Parse()
	return opts
}

// loadConfig reads the configuration file, falling back to defaults when it
// does not exist, then applies environment overrides and validates.
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, logging.WrapError(err, "failed to apply environment configuration")
	}
	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runHeadless simulates duration of play as fast as possible on a manual clock
func runHeadless(cfg *config.Config, renderer *render.LogRenderer, duration time.Duration, opts []engine.Option) error {
	clock := frame.NewManual(0)
	game, err := engine.NewGame(cfg, renderer.Callbacks(), clock, opts...)
	if err != nil {
		return err
	}
	defer game.Dispose()

	interval := 1000 / float64(cfg.Loop.FPS)
	frames := int(float64(duration.Milliseconds()) / interval)
	clock.Run(frames, interval)
	return nil
}

// runRealtime plays in real time until duration passes or a signal arrives
func runRealtime(ctx context.Context, cfg *config.Config, renderer *render.LogRenderer, duration time.Duration, opts []engine.Option) error {
	ticker := frame.NewTicker(cfg.Loop.FPS)
	game, err := engine.NewGame(cfg, renderer.Callbacks(), ticker, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	err = ticker.Run(ctx)
	game.Dispose()

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runEngo opens an engo window and plays with keyboard input until it closes
func runEngo(cfg *config.Config, renderer *render.LogRenderer, logger *logging.Logger, opts options, engineOpts []engine.Option) {
	scene := enginehost.NewMatchScene(cfg, renderer.Callbacks(), logger, engineOpts...)

	engo.Run(engo.RunOptions{
		Title:    "Go Pong",
		Width:    opts.width,
		Height:   opts.height,
		VSync:    true,
		FPSLimit: cfg.Loop.FPS,
	}, scene)
}
