package main

import (
	"github.com/hibiken/asynq"

	"catalog-review-backend/internal/config"
	"catalog-review-backend/internal/infrastructure/email"
	emailjob "catalog-review-backend/internal/infrastructure/email/job"
	"catalog-review-backend/internal/shared"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	sendEmail *emailjob.SendEmailHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(cfg *config.Config) *HandlerRegistry {
	sender := email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)

	return &HandlerRegistry{
		sendEmail: emailjob.NewSendEmailHandler(sender),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeSendEmail, h.sendEmail.ProcessTask)
}
