package config

import (
	"fmt"
	"strconv"
	"time"

	"catalog-review-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig đọc config từ environment variables và trả về DBConfig
func LoadDatabaseConfig() (*database.DBConfig, error) {
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	durations := map[string]string{
		"DB_MAX_CONN_LIFETIME":   "5m",
		"DB_MAX_CONN_IDLE_TIME":  "1m",
		"DB_HEALTH_CHECK_PERIOD": "1m",
		"DB_RETRY_DELAY":         "1s",
		"DB_CONNECT_TIMEOUT":     "10s",
	}
	parsed := make(map[string]time.Duration, len(durations))
	for key, def := range durations {
		d, err := time.ParseDuration(getEnv(key, def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		parsed[key] = d
	}

	return &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              port,
		Username:          getEnv("DB_USER", "postgres"),
		Password:          getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "catalog_review"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   parsed["DB_MAX_CONN_LIFETIME"],
		MaxConnIdleTime:   parsed["DB_MAX_CONN_IDLE_TIME"],
		HealthCheckPeriod: parsed["DB_HEALTH_CHECK_PERIOD"],
		MaxRetries:        maxRetries,
		RetryDelay:        parsed["DB_RETRY_DELAY"],
		ConnectTimeout:    parsed["DB_CONNECT_TIMEOUT"],
	}, nil
}
