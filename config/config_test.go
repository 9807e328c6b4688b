package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/accounts")
	t.Setenv("TOKEN_SECRET", "test-secret")

	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		require.NotNil(t, cfg)
		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "postgres://localhost:5432/accounts", cfg.DBURL)
		assert.Equal(t, "test-secret", cfg.TokenSecret)
		assert.Equal(t, int64(86400), cfg.TokenValiditySec)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("PORT", "9000")
		t.Setenv("TOKEN_VALIDITY", "3600")

		cfg := Load()
		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, int64(3600), cfg.TokenValiditySec)
	})

	t.Run("invalid validity falls back to default", func(t *testing.T) {
		t.Setenv("TOKEN_VALIDITY", "one-day")

		cfg := Load()
		assert.Equal(t, int64(86400), cfg.TokenValiditySec)
	})
}

func TestGetEnv(t *testing.T) {
	t.Run("missing key returns default", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnv("UNSET_TEST_KEY", "fallback"))
	})

	t.Run("set key wins", func(t *testing.T) {
		t.Setenv("SET_TEST_KEY", "value")
		assert.Equal(t, "value", getEnv("SET_TEST_KEY", "fallback"))
	})
}
