package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"SERVER_PORT", "SERVER_HOST",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_URL",
		"PREDICTOR_URL", "PREDICTOR_TIMEOUT_SECONDS", "RECOMMEND_CACHE_TTL_SECONDS",
		"DB_PASSWORD_FILE",
	} {
		os.Unsetenv(name)
	}
}

func TestLoadConfig(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "kitchenpal_test")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("PREDICTOR_URL", "http://ml:8600")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "kitchenpal_test", cfg.DBName)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "http://ml:8600", cfg.PredictorURL)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "kitchenpal", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 5*time.Second, cfg.PredictorTimeout)
	assert.Equal(t, 300*time.Second, cfg.RecommendCacheTTL)
}

func TestLoadConfigSecretFile(t *testing.T) {
	clearConfigEnv(t)
	secret := filepath.Join(t.TempDir(), "db_password")
	require.NoError(t, os.WriteFile(secret, []byte("s3cret\n"), 0o600))
	t.Setenv("DB_PASSWORD", "ignored")
	t.Setenv("DB_PASSWORD_FILE", secret)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.DBPassword)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("non-numeric port", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("SERVER_PORT", "eight thousand")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SERVER_PORT")
	})

	t.Run("bad predictor url", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("PREDICTOR_URL", "not a url")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PREDICTOR_URL")
	})

	t.Run("bad redis url scheme", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("REDIS_URL", "http://localhost:6379")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REDIS_URL")
	})

	t.Run("non-integer timeout", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("PREDICTOR_TIMEOUT_SECONDS", "soon")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PREDICTOR_TIMEOUT_SECONDS")
	})
}
