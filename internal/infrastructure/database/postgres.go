package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DBConfig chứa tất cả các thông tin cấu hình để kết nối PostgreSQL
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	// Connection pool
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB wraps the pgx pool and its lifecycle
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

// NewPostgresDB tạo instance mới của PostgresDB. Pool is set by Connect.
func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{Config: config}
}

func (db *PostgresDB) buildConnectionString() string {
	sslMode := db.Config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.Username,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.DBName,
		sslMode,
	)
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// backoff returns RetryDelay * 2^(attempt-1)
func (db *PostgresDB) backoff(attempt int) time.Duration {
	return db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
}

// connectWithRetry retries with exponential backoff until MaxRetries is reached
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		log.Info().Int("attempt", attempt).Int("max", db.Config.MaxRetries).Msg("[DATABASE] Connection attempt")

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, err := pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Info().Int("attempt", attempt).Msg("[DATABASE] Connected")
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err
		log.Warn().Err(lastErr).Int("attempt", attempt).Msg("[DATABASE] Attempt failed")

		if attempt < db.Config.MaxRetries {
			delay := db.backoff(attempt)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

// Connect configures the pool and connects with retry
func (db *PostgresDB) Connect(ctx context.Context) error {
	log.Info().Str("host", db.Config.Host).Str("db", db.Config.DBName).Msg("[DATABASE] Initializing PostgreSQL connection")

	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool
	return nil
}
