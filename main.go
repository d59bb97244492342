package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/square-breathing/internal/assets"
	"github.com/iburimskiy/square-breathing/internal/audio"
	"github.com/iburimskiy/square-breathing/internal/breath"
	"github.com/iburimskiy/square-breathing/internal/config"
	"github.com/iburimskiy/square-breathing/internal/game"
	"github.com/iburimskiy/square-breathing/internal/logging"
)

var cueFiles = map[breath.Phase]string{
	breath.Inhale: config.InhaleCueFile,
	breath.Hold:   config.HoldCueFile,
	breath.Exhale: config.ExhaleCueFile,
}

func main() {
	logger, err := logging.New(config.LogLevel, config.LogDevelopment)
	if err != nil {
		panic(err)
	}

	if err := run(logger); err != nil {
		logger.Error("Breathing guide failed", zap.Error(err))
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(logger *zap.Logger) error {
	resolver := assets.Default(config.AssetsDir)
	files := make(map[breath.Phase]string, len(cueFiles))
	for phase, name := range cueFiles {
		path, err := resolver.Path(name)
		if err != nil {
			return fmt.Errorf("locate %s cue: %w", phase, err)
		}
		files[phase] = path
	}

	cues, err := audio.Load(files, logger)
	if err != nil {
		return err
	}
	if err := cues.Start(); err != nil {
		return err
	}
	defer cues.Close()

	g, err := game.New(game.Options{Cues: cues, Logger: logger})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	ebiten.SetVsyncEnabled(true)

	logger.Info("Starting breathing guide",
		zap.Float64("side_seconds", config.SideDuration),
		zap.Int("tps", config.TPS),
	)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}

	logger.Info("Session ended",
		zap.Duration("session", g.Session()),
		zap.Int("cycles", g.Cycles()),
	)
	return nil
}
