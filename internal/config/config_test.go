// File: internal/config/config_test.go
package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/app")
		t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
		t.Setenv("JWT_SECRET", "s3cret")

		cfg, err := Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Port)
		require.False(t, cfg.Debug)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, "user-center", cfg.AppName)
		require.Empty(t, cfg.AdminEmail)
		require.Equal(t, 4, cfg.WorkerCount)
		require.Equal(t, 64, cfg.NotifyQueueSize)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
		t.Setenv("JWT_SECRET", "s3cret")

		_, err := Load(context.Background())
		require.Error(t, err)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/app")
		t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("PORT", "9000")
		t.Setenv("DEBUG", "true")
		t.Setenv("ADMIN_EMAIL", "admin@example.com")

		cfg, err := Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, 9000, cfg.Port)
		require.True(t, cfg.Debug)
		require.Equal(t, "admin@example.com", cfg.AdminEmail)
	})
}
