package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/thushan/recap/internal/app"
	"github.com/thushan/recap/internal/config"
	"github.com/thushan/recap/internal/logger"
	"github.com/thushan/recap/internal/util"
	"github.com/thushan/recap/internal/version"
)

func main() {
	if !util.ShouldUseColors() {
		pterm.DisableStyling()
	}

	// the splash and config dump share stdout with results, so only print them on request
	vlog := log.New(os.Stdout, "", 0)
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.PrintVersionInfo(true, vlog)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "--dump-config" {
		if err := cfg.Dump(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to dump configuration: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	logInstance, styledLogger, cleanup, err := logger.NewWithTheme(cfg.LoggerConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	slog.SetDefault(logInstance)

	styledLogger.Debug("Initialising", "version", version.Version, "pid", os.Getpid(), "config", cfg.Filename)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, styledLogger, os.Stdin, os.Stdout)
	if err != nil {
		logger.FatalForUser(styledLogger, "Cannot start", err)
	}

	if err := application.WithStatus(os.Stderr).Run(ctx); err != nil {
		logger.FatalForUser(styledLogger, "Recap failed", err)
	}
}
