package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/gocomet/ride-matching/internal/command"
	"github.com/gocomet/ride-matching/internal/config"
	"github.com/gocomet/ride-matching/internal/repository/memory"
	"github.com/gocomet/ride-matching/internal/service/matching"
	"github.com/gocomet/ride-matching/internal/service/registry"
	"github.com/gocomet/ride-matching/internal/service/ridesharing"
	"github.com/gocomet/ride-matching/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Error: Input filename argument is required.")
		fmt.Fprintf(os.Stderr, "usage: %s <input-file>\n", os.Args[0])
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	appLogger = appLogger.With(logger.String("session_id", uuid.NewString()))
	appLogger.Info("Starting ride matching",
		logger.String("app", cfg.App.Name),
		logger.String("env", cfg.App.Env),
		logger.String("input", os.Args[1]),
	)

	input, err := os.Open(os.Args[1])
	if err != nil {
		appLogger.Fatal("Error reading file", logger.Err(err))
	}
	defer input.Close()

	// Wire repositories and services
	drivers := memory.NewDriverRepository()
	riders := memory.NewRiderRepository()
	rides := memory.NewRideRepository()

	matcher := matching.NewService(drivers, riders, appLogger, matching.DefaultConfig())
	dispatcher := command.NewDispatcher(
		registry.NewDriverService(drivers, appLogger),
		registry.NewRiderService(riders, appLogger),
		matcher,
		ridesharing.NewService(riders, drivers, rides, matcher, appLogger),
		os.Stdout,
		appLogger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := dispatcher.Run(ctx, input); err != nil {
		appLogger.Error("Command processing aborted", logger.Err(err))
		return
	}

	appLogger.Info("Command processing finished")
}
