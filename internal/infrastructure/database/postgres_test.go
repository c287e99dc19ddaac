package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConnectionString(t *testing.T) {
	db := NewPostgresDB(&DBConfig{
		Host: "localhost", Port: 5432, Username: "u", Password: "p", DBName: "catalog",
	})

	assert.Equal(t, "postgresql://u:p@localhost:5432/catalog?sslmode=disable", db.buildConnectionString())
}

func TestConfigurePool(t *testing.T) {
	db := NewPostgresDB(&DBConfig{
		Host: "localhost", Port: 5432, Username: "u", Password: "p", DBName: "catalog",
		MaxConns: 10, MinConns: 2, MaxConnLifetime: time.Minute, ConnectTimeout: 3 * time.Second,
	})

	cfg, err := db.configurePool()
	require.NoError(t, err)
	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, time.Minute, cfg.MaxConnLifetime)
	assert.Equal(t, 3*time.Second, cfg.ConnConfig.ConnectTimeout)
}

func TestBackoffDoubles(t *testing.T) {
	db := NewPostgresDB(&DBConfig{RetryDelay: time.Second})

	assert.Equal(t, time.Second, db.backoff(1))
	assert.Equal(t, 2*time.Second, db.backoff(2))
	assert.Equal(t, 8*time.Second, db.backoff(4))
}

func TestUninitializedPool(t *testing.T) {
	db := NewPostgresDB(&DBConfig{})

	assert.Error(t, db.Ping(t.Context()))
	_, err := db.Stats()
	assert.Error(t, err)
	assert.NoError(t, db.Close())
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
