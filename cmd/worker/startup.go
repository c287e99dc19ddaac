// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"catalog-review-backend/internal/config"
	"catalog-review-backend/internal/infrastructure/cache"
)

// checkRedis verifies the queue backend is reachable before starting
func checkRedis(cfg *config.Config) error {
	client := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info().Str("redis", cfg.Redis.Host).Str("smtp", fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)).
		Msg("[Startup] Checking Redis connection")
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	log.Info().Msg("[Startup] Redis connection OK")
	return nil
}
