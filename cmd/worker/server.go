package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"catalog-review-backend/internal/config"
	"catalog-review-backend/internal/shared"
)

// asynqServer wraps asynq.Server with logging around its lifecycle
type asynqServer struct {
	*asynq.Server
}

func redisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
}

// setupAsynqServer creates the Asynq server and starts it in the background
func setupAsynqServer(cfg *config.Config, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Queues: map[string]int{
				shared.QueueDefault: 10,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("task_type", task.Type()).Msg("[Asynq] Task failed")
			}),
		},
	)

	go func() {
		log.Info().Msg("[Worker] Starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("[Worker] Failed")
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks and stops the server
func (s *asynqServer) Shutdown() {
	log.Info().Msg("[Worker] Shutting down")
	s.Server.Shutdown()
	log.Info().Msg("[Worker] Gracefully stopped")
}
