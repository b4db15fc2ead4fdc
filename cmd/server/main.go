package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"work-scheduler-service/internal/adapters/memory"
	"work-scheduler-service/internal/adapters/seed"
	"work-scheduler-service/internal/api"
	"work-scheduler-service/internal/config"
	"work-scheduler-service/internal/domain"
	"work-scheduler-service/internal/platform/clock"
)

// main is the application composition root.
// It seeds the in-memory schedule store and starts the HTTP server that
// the display shell and editing surface talk to.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	store := memory.NewScheduleStore()
	if err := bootstrap(store, cfg.Seed.Path); err != nil {
		slog.Error("seed schedule failed", "error", err)
		os.Exit(1)
	}

	clk := clock.System{}
	router := api.NewRouter(store, clk)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("server listening", "port", cfg.Server.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// bootstrap fills the store from the seed file, or from the built-in demo
// schedule when no seed file exists. The store holds no state across
// restarts; this runs on every start.
func bootstrap(store *memory.ScheduleStore, seedPath string) error {
	ctx := context.Background()

	if _, err := os.Stat(seedPath); err == nil {
		slog.Info("seeding schedule from file", "path", seedPath)
		return seed.FromJSON(ctx, store, seedPath)
	}

	slog.Info("seed file not found, loading demo schedule", "path", seedPath)
	return seed.Load(ctx, store, seed.Demo(domain.DateOf(time.Now())))
}
