package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "fixhire", cfg.Postgres.Name)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "me", cfg.Zoom.UserID)
	assert.Equal(t, "Asia/Manila", cfg.Zoom.Timezone)
	assert.False(t, cfg.Zoom.Configured())
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ZOOM_ACCOUNT_ID", "acc")
	t.Setenv("ZOOM_CLIENT_ID", "cid")
	t.Setenv("ZOOM_CLIENT_SECRET", "secret")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.True(t, cfg.Zoom.Configured())
}

func TestAppConfig_SanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		Auth:   AuthConfig{SessionTTL: -time.Hour},
		OpenAI: OpenAIConfig{Model: "   "},
		Zoom:   ZoomConfig{AccountID: " acc ", ClientID: "cid"},
	}
	cfg.Sanitize()

	assert.Equal(t, defaultSessionTTL, cfg.Auth.SessionTTL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "acc", cfg.Zoom.AccountID)
	assert.False(t, cfg.Zoom.Configured())
	assert.Positive(t, cfg.HTTP.ReadTimeout)
	assert.Positive(t, cfg.HTTP.ShutdownTimeout)
}

func TestAppConfig_DevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
