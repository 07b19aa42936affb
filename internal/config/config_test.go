package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.RunAddress)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.AnalyticsRefresh)
	assert.Empty(t, cfg.AllowedOrigins, "cross-origin access is opt-in")
	assert.Empty(t, cfg.AdminLogin)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{"-a", ":9090", "-s", "flag-secret", "-t", "1h", "-admin-login", "root"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.RunAddress)
	assert.Equal(t, "flag-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "root", cfg.AdminLogin)
}

func TestLoad_EnvOverridesFlags(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ANALYTICS_REFRESH", "5s")
	t.Setenv("ALLOWED_ORIGINS", "https://admin.example.com,https://ops.example.com")

	cfg, err := Load([]string{"-a", ":9090", "-s", "flag-secret"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.RunAddress)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 5*time.Second, cfg.AnalyticsRefresh)
	assert.Equal(t, []string{"https://admin.example.com", "https://ops.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		_, err := Load([]string{"-nope"})
		require.Error(t, err)
	})

	t.Run("bad duration in env", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")
		_, err := Load(nil)
		require.Error(t, err)
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		_, err := Load([]string{"-t", "0s"})
		require.Error(t, err)
	})
}
