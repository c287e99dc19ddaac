package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"catalog-review-backend/internal/shared"
)

// Sender delivers a single email
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ============================================
// Send Email Handler
// ============================================

type SendEmailHandler struct {
	sender Sender
}

func NewSendEmailHandler(sender Sender) *SendEmailHandler {
	return &SendEmailHandler{sender: sender}
}

func (h *SendEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.SendEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal SendEmail payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	log.Info().Str("to", payload.To).Str("subject", payload.Subject).Msg("Processing email")

	if err := h.sender.Send(ctx, payload.To, payload.Subject, payload.Body); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	log.Info().Str("to", payload.To).Msg("Email sent successfully")
	return nil
}
