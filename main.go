package main

import (
	"context"
	"errors"

	"wallcaster/internal/config"
	"wallcaster/internal/game"
	"wallcaster/internal/logging"
	"wallcaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	logger := logging.Must(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	// Load the scene and its textures
	scene, err := world.LoadSceneFile(context.Background(), cfg.Assets.SceneFile, logger)
	if err != nil {
		logger.Fatal("failed to load scene", zap.String("path", cfg.Assets.SceneFile), zap.Error(err))
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Display.TPS)

	g := game.NewGame(cfg, scene, logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", zap.Error(err))
	}
}
