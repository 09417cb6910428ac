package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/interatlas/interatlas/internal/bootstrap"
	"github.com/interatlas/interatlas/internal/server"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Database setup failed")
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to build application dependencies")
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	srv := server.NewServer(cfg, router, dbPool, lgr)

	go func() {
		if err := srv.Run(); err != nil {
			lgr.Fatal().Err(err).Msg("Server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lgr.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		lgr.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}

	lgr.Info().Msg("Server exited cleanly")
}
