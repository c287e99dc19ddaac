package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"catalog-review-backend/internal/shared"
)

// Enqueuer is the subset of *asynq.Client used by Mailer
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Mailer hands emails to the worker process. Tasks are not retried;
// a failed delivery surfaces in the worker log only.
type Mailer struct {
	client Enqueuer
}

func NewMailer(client Enqueuer) *Mailer {
	return &Mailer{client: client}
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(shared.SendEmailPayload{To: to, Subject: subject, Body: body})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeSendEmail, payload)
	info, err := m.client.EnqueueContext(ctx, task, asynq.Queue(shared.QueueDefault), asynq.MaxRetry(0))
	if err != nil {
		return fmt.Errorf("enqueue email: %w", err)
	}

	log.Debug().Str("task_id", info.ID).Str("to", to).Msg("Email task enqueued")
	return nil
}
