// Command server runs the record store service that holds the account list.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"credit-tracker/internal/config"
	"credit-tracker/internal/database"
	"credit-tracker/internal/server"
)

func main() {
	rollback := flag.Int("rollback", 0, "roll back this many migrations and exit")
	flag.Parse()

	if err := config.LoadEnvFiles(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if *rollback > 0 {
		if err := rollbackMigrations(cfg, *rollback); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		return
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, db, logger, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err := srv.Run(ctx); err != nil {
		logger.Error("record store stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func rollbackMigrations(cfg *config.Config, steps int) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return database.NewMigrationRunner(sqlDB).Rollback(steps)
}
