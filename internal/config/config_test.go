package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "backoffice", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, AuditDriverMemory, cfg.Audit.Driver)
	assert.Zero(t, cfg.Store.Latency())
	assert.False(t, cfg.Store.StrictTransitions)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "backoffice.events", cfg.Redis.EventsChannel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_LATENCY_MS", "250")
	t.Setenv("STRICT_STATUS_TRANSITIONS", "true")
	t.Setenv("AUDIT_DRIVER", "SQLite")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")
	t.Setenv("EXPORT_TZ_OFFSET_HOURS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.Store.Latency())
	assert.True(t, cfg.Store.StrictTransitions)
	assert.Equal(t, AuditDriverSQLite, cfg.Audit.Driver)
	assert.Zero(t, cfg.App.RequestTimeout())

	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, cfg.Export.Location()).Zone()
	assert.Zero(t, offset)
}

func TestLoadRejectsUnknownAuditDriver(t *testing.T) {
	t.Setenv("AUDIT_DRIVER", "mongo")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	_, err := Load()
	assert.Error(t, err)
}

func TestMalformedNumbersFallBack(t *testing.T) {
	t.Setenv("STORE_LATENCY_MS", "soon")
	t.Setenv("STRICT_STATUS_TRANSITIONS", "maybe")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Store.LatencyMS)
	assert.False(t, cfg.Store.StrictTransitions)
}
