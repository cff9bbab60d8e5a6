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

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
	assert.Equal(t, "database/votes.db", cfg.DatabasePath)
	assert.Equal(t, "gemini-pro", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.SummaryCacheTTL)
	assert.Equal(t, 30*time.Second, cfg.GeneratorTimeout)
	assert.Equal(t, 10, cfg.SummaryMinVotes)
	assert.Empty(t, cfg.AdminToken)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9999")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("SUMMARY_CACHE_TTL", "45s")
	t.Setenv("SUMMARY_MIN_VOTES", "5")
	t.Setenv("GEMINI_API_KEY", "key-123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, 45*time.Second, cfg.SummaryCacheTTL)
	assert.Equal(t, 5, cfg.SummaryMinVotes)
	assert.Equal(t, "key-123", cfg.GeminiAPIKey)
}
