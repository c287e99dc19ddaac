package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"catalog-review-backend/pkg/store"
)

const attemptKeyPrefix = "auth:code_attempts:"

// AttemptLimiter counts failed confirmation code exchanges per username
// inside a fixed window. When the store is unreachable it fails open.
type AttemptLimiter struct {
	store       store.CounterStore
	maxAttempts int64
	window      time.Duration
}

func NewAttemptLimiter(s store.CounterStore, maxAttempts int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		store:       s,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

func attemptKey(username string) string {
	return attemptKeyPrefix + username
}

// Blocked reports whether username has used up its failed attempts
func (l *AttemptLimiter) Blocked(ctx context.Context, username string) bool {
	n, err := l.store.Get(ctx, attemptKey(username))
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("[AUTH] attempt store unavailable, allowing exchange")
		return false
	}
	return n >= l.maxAttempts
}

// RecordFailure increments the failure counter and arms the window on first failure
func (l *AttemptLimiter) RecordFailure(ctx context.Context, username string) {
	key := attemptKey(username)
	n, err := l.store.Increment(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("[AUTH] failed to record attempt")
		return
	}
	if n == 1 {
		if err := l.store.Expire(ctx, key, l.window); err != nil {
			log.Warn().Err(err).Str("username", username).Msg("[AUTH] failed to set attempt window")
		}
	}
}

// Reset clears the counter after a successful exchange
func (l *AttemptLimiter) Reset(ctx context.Context, username string) {
	if err := l.store.Delete(ctx, attemptKey(username)); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("[AUTH] failed to reset attempts")
	}
}
