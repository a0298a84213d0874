package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/go-kit/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifestep/model"
	"github.com/sheikhrachel/lifestep/session"
	"github.com/sheikhrachel/lifestep/storage"
	"github.com/sheikhrachel/lifestep/utils"
)

// loadSessionConfig reads the optional config file, falling back to defaults
func loadSessionConfig() utils.Config {
	config, err := utils.LoadConfig(utils.DefaultConfigFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Using default configuration: %v\n", err)
		}
		return utils.DefaultConfig()
	}
	return config
}

// newSessionLogger builds the stderr logger, using the info level if the configured one is unknown
func newSessionLogger(config utils.Config) log.Logger {
	logger, err := utils.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Using log level %s: %v\n", utils.LevelInfo, err)
		logger, _ = utils.NewLogger(os.Stderr, utils.LevelInfo)
	}
	return logger
}

// initializeSession wires the terminal, the board store and the renderer into a controller
func initializeSession(config utils.Config, logger log.Logger) *session.Controller {
	return session.NewController(
		session.NewKeyInput(os.Stdin),
		storage.NewFileStore(),
		model.NewTextRenderer(os.Stdout),
		os.Stdout,
		logger,
		config,
	)
}

// describeSessionError turns a fatal session error into a message for the user
func describeSessionError(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("Starter file not found: %v", err)
	case errors.Is(err, model.ErrMalformedInput),
		errors.Is(err, model.ErrInvalidCell),
		errors.Is(err, model.ErrInvalidDimension):
		return fmt.Sprintf("Invalid starter file: %v", err)
	default:
		return fmt.Sprintf("Session failed: %v", err)
	}
}
