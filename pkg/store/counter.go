package store

import (
	"context"
	"time"
)

// CounterStore is the key/value contract used for short-lived counters
// (attempt tracking). Implemented by Redis in infrastructure.
type CounterStore interface {
	// Get returns the counter value, 0 when the key does not exist
	Get(ctx context.Context, key string) (int64, error)

	// Increment atomically increments key and returns the new value
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets TTL on key
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Delete removes keys
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}
