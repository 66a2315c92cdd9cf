package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		GoEnv:     "development",
		HTTPPort:  8080,
		JWTSecret: "0123456789abcdef0123456789abcdef",
		JWTExpiry: 24 * time.Hour,
		LogLevel:  "debug",
		LogFormat: "text",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	t.Run("BadPort", func(t *testing.T) {
		cfg := validConfig()
		cfg.HTTPPort = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("ShortSecret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		cfg := validConfig()
		cfg.LogLevel = "verbose"
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("CACHE_TTL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "development", cfg.GoEnv)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigParsesDurations(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("JWT_EXPIRY", "90m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiry)

	t.Setenv("JWT_EXPIRY", "ninety minutes")
	_, err = LoadConfig()
	require.Error(t, err)
}
