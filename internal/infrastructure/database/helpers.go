package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Ping kiểm tra database connection có còn sống không
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close đóng tất cả connections trong pool. Safe to call multiple times.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool")
	db.Pool.Close()
	db.Pool = nil
	return nil
}

// PoolStats is the subset of pgxpool statistics reported by the health endpoint
type PoolStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
}

// Stats trả về snapshot của connection pool statistics
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		TotalConns:    raw.TotalConns(),
		IdleConns:     raw.IdleConns(),
		AcquiredConns: raw.AcquiredConns(),
		MaxConns:      raw.MaxConns(),
	}, nil
}
