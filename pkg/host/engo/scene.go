// pkg/host/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/logging"
)

// SceneType is the engo scene name
const SceneType = "PongScene"

// MatchScene runs one match inside engo. It adds no render systems:
// output goes through the engine callbacks.
type MatchScene struct {
	world *ecs.World

	config    *config.Config
	callbacks engine.Callbacks
	options   []engine.Option
	logger    *logging.Logger

	system *FrameSystem
	game   *engine.Game
}

// NewMatchScene creates a scene that starts a match with cfg on Setup
func NewMatchScene(cfg *config.Config, callbacks engine.Callbacks, logger *logging.Logger, opts ...engine.Option) *MatchScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &MatchScene{
		config:    cfg,
		callbacks: callbacks,
		options:   opts,
		logger:    logger,
		world:     &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (scene *MatchScene) Type() string {
	return SceneType
}

// Preload is called before the scene starts (required by Engo)
func (scene *MatchScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *MatchScene) Setup(u engo.Updater) {
	if world, ok := u.(*ecs.World); ok {
		scene.world = world
	}

	keys := scene.config.Controls.Keys()
	if err := RegisterKeys(engo.Input, keys); err != nil {
		panic("Failed to register keys: " + err.Error())
	}

	if err := scene.start(NewFrameSystem(keys, nil)); err != nil {
		panic("Failed to start match: " + err.Error())
	}
}

// start creates the game on system and adds system to the world
func (scene *MatchScene) start(system *FrameSystem) error {
	opts := append([]engine.Option{engine.WithLogger(scene.logger)}, scene.options...)
	game, err := engine.NewGame(scene.config, scene.callbacks, system, opts...)
	if err != nil {
		return err
	}
	system.SetTarget(game)

	scene.system = system
	scene.game = game
	scene.world.AddSystem(system)

	scene.logger.Info(context.Background(), "engo scene started", "match_id", game.MatchID())
	return nil
}

// Game returns the running match, or nil before Setup
func (scene *MatchScene) Game() *engine.Game {
	return scene.game
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *MatchScene) Exit() {
	if scene.game != nil {
		scene.game.Dispose()
	}
}
