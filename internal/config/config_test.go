package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REVALIDATE_SECRET", secret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, secret, cfg.Server.RevalidateSecret)
	assert.False(t, cfg.Server.MetricsEnabled)
	assert.False(t, cfg.Server.LatencyEnabled)
	assert.Empty(t, cfg.Cache.RedisAddr)
	assert.Equal(t, 30, cfg.Rate.Limit)
	assert.Equal(t, 60, cfg.Rate.WindowSeconds)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REVALIDATE_SECRET", secret)
	t.Setenv("PORT", "9090")
	t.Setenv("LATENCY_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RATE_LIMIT", "100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Server.LatencyEnabled)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 3, cfg.Cache.RedisDB)
	assert.Equal(t, 100, cfg.Rate.Limit)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("REVALIDATE_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Setenv("REVALIDATE_SECRET", "too-short")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv("REVALIDATE_SECRET", secret)
		t.Setenv("PORT", "eighty")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero rate window", func(t *testing.T) {
		t.Setenv("REVALIDATE_SECRET", secret)
		t.Setenv("RATE_WINDOW", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
