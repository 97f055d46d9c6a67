package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adrecon/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.BackendBadger, cfg.Store.Backend)
	assert.Equal(t, 8, cfg.Ingest.Workers)
	assert.Equal(t, 5*time.Minute, cfg.Badger.GCInterval)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 256, cfg.HTTP.RecentOutcomes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("INGEST_WORKERS", "3")
	t.Setenv("BADGER_IN_MEMORY", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, configs.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 3, cfg.Ingest.Workers)
	assert.True(t, cfg.Badger.InMemory)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerFormat(t *testing.T) {
	assert.Equal(t, "json", configs.Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "text", configs.Logger{Format: "yaml"}.SlogFormat())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "verbose"}.SlogLevel())

	opts := configs.Logger{Level: "warn", AddSource: true}.HandlerOptions()
	assert.Equal(t, slog.LevelWarn, opts.Level)
	assert.True(t, opts.AddSource)
}
