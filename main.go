package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/urfave/cli"
)

const version = "1.0.0"

func main() {
	app := cli.NewApp()
	app.Name = "lifestep"
	app.Usage = "step through Conway's Game of Life on a board loaded from a JSON file"
	app.Version = version
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cli.Context) error {
	config := loadSessionConfig()
	logger := newSessionLogger(config)

	// Handle Ctrl+C outside raw keystroke reads; a second signal falls back to the default behavior
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	controller := initializeSession(config, logger)
	if err := controller.Run(ctx); err != nil {
		level.Error(logger).Log("msg", "session failed", "err", err)
		return cli.NewExitError(describeSessionError(err), 1)
	}
	return nil
}
