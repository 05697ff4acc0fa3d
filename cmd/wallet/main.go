package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophwallet/internal/buildinfo"
	"github.com/dmitrijs2005/gophwallet/internal/client/cli"
	"github.com/dmitrijs2005/gophwallet/internal/client/config"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = closeLog() }()

	app, err := cli.NewApp(ctx, cfg, logger, buildinfo.Version())
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = app.Close() }()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "wallet stopped", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
