package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pommel-dev/pathkit/internal/config"
	"github.com/pommel-dev/pathkit/internal/daemon"
	"github.com/pommel-dev/pathkit/internal/logging"
)

var (
	version = "0.1.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	projectRoot := flag.String("project", ".", "Project root directory")
	showVersion := flag.Bool("version", false, "Show version")
	logLevel := flag.String("log-level", "", "Override log.level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "Override log.format (text, json)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("pathkitd %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.LoadMerged(*projectRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}

	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	d, err := daemon.New(*projectRoot, cfg, logger)
	if err != nil {
		logger.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	// Run installs its own handlers for daemon.ShutdownSignals.
	logger.Info("starting pathkitd", "version", version, "project", *projectRoot)
	if err := d.Run(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("daemon error", "error", err)
		os.Exit(1)
	}

	logger.Info("pathkitd stopped")
}
