// cmd/worker/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"catalog-review-backend/internal/config"
	"catalog-review-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] Failed to load")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	// Initialize handlers
	handlers := initializeHandlers(cfg)

	// Perform health checks before taking work
	if err := checkRedis(cfg); err != nil {
		log.Fatal().Err(err).Msg("[Startup] Health check failed")
	}

	// Setup Asynq server
	srv := setupAsynqServer(cfg, handlers)

	// Wait for shutdown signal
	waitForShutdown(srv)
}

func waitForShutdown(srv *asynqServer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[Shutdown] Gracefully stopping")
	srv.Shutdown()
	log.Info().Msg("[Shutdown] Stopped")
}
