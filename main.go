package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/config"
	"github.com/ytget/rickmorty/internal/logging"
	"github.com/ytget/rickmorty/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	logger, err := logging.New(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Rick and Morty App starting", zap.String("version", version))

	defaults, err := config.Load(os.Getenv(config.EnvConfigFile))
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}
	logger.Debug("configuration loaded", zap.String("config", defaults.String()))

	if err := ui.Run(defaults, logger); err != nil {
		logger.Error("application failed", zap.Error(err))
		os.Exit(1)
	}
}
