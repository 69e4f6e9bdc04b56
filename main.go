package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/edutrack/ledger-service/internal/cli"
	"github.com/edutrack/ledger-service/internal/config"
	"github.com/edutrack/ledger-service/internal/reporting"
	"github.com/edutrack/ledger-service/internal/repositories/filestore"
	"github.com/edutrack/ledger-service/internal/services"
	"github.com/edutrack/ledger-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)

	// Initialize repository
	repo, err := filestore.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer repo.Close()

	// Initialize validator and services
	v := validator.New()
	serviceManager := services.NewServiceManager(repo, logger, v)

	app := &cli.App{
		Config:   cfg,
		Logger:   logger,
		Services: serviceManager,
		Exporter: reporting.NewExporter(serviceManager.Attendance(), logger),
	}

	if err := cli.NewRootCommand(app).Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
