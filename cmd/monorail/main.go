// Package main is the entry point for the headless monorail driver. It builds
// the track from the configured control points and drives a vehicle along it,
// logging its pose.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/monorail/internal/config"
	"github.com/Faultbox/monorail/internal/logger"
	"github.com/Faultbox/monorail/internal/path"
	"github.com/Faultbox/monorail/internal/track"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Monorail ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	t, err := track.Load(cfg)
	if err != nil {
		logger.Error("failed to build track", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logEvery := t.Line.Len()
	err = t.Drive(ctx, t.NewVehicle(), cfg.Follower.TickRate, cfg.Follower.Laps, func(tick int, p path.Pose) {
		if tick%logEvery == 0 {
			logger.Debug("vehicle",
				zap.Int("tick", tick),
				zap.Int("index", p.Index),
				zap.Float32("x", p.Position.X),
				zap.Float32("y", p.Position.Y),
				zap.Float32("z", p.Position.Z),
				zap.Float32("heading", p.Heading))
		}
	})
	if err != nil {
		logger.Info("interrupted", zap.Error(err))
		return
	}

	logger.Info("drive finished", zap.Int("laps", cfg.Follower.Laps))
}
