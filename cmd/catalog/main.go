package main

import (
	"context"
	"os"

	"github.com/yigit/coursecatalog/internal/config"
	"github.com/yigit/coursecatalog/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/coursecatalog/internal/session"
)

func main() {
	configPath, err := config.ResolvePath()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to resolve config path")
		os.Exit(1)
	}

	sess, err := session.NewSession(session.Options{
		ConfigPath: configPath,
		In:         os.Stdin,
		Out:        os.Stdout,
		LogOutput:  os.Stderr,
	})
	if err != nil {
		// Error details are logged within the bootstrap functions
		logger.Error().Err(err).Msg("Failed to initialize catalog session")
		os.Exit(1)
	}

	if err := sess.Run(context.Background()); err != nil {
		logger.Error().Err(err).Str("session", sess.ID()).Msg("Catalog session failed")
		os.Exit(1)
	}

	os.Exit(0)
}
