package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "AUTH_ENABLED", "RATE_LIMIT_PER_MINUTE", "REDIS_ADDR"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
}
