package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigLogLevel(t *testing.T) {
	t.Run("Defaults to info", func(t *testing.T) {
		os.Unsetenv("LOG_LEVEL")
		LoadConfig()
		assert.Equal(t, "info", Cfg.LogLevel)
	})

	t.Run("Honors LOG_LEVEL", func(t *testing.T) {
		os.Setenv("LOG_LEVEL", "debug")
		t.Cleanup(func() {
			os.Unsetenv("LOG_LEVEL")
			LoadConfig()
		})
		LoadConfig()
		assert.Equal(t, "debug", Cfg.LogLevel)
	})
}

func TestLoadConfigTokenLifespans(t *testing.T) {
	os.Setenv("JWT_TOKEN_LIFESPAN_HOURS", "2")
	os.Setenv("RESET_TOKEN_LIFESPAN_MINUTES", "30")
	t.Cleanup(func() {
		os.Unsetenv("JWT_TOKEN_LIFESPAN_HOURS")
		os.Unsetenv("RESET_TOKEN_LIFESPAN_MINUTES")
		LoadConfig()
	})

	LoadConfig()
	assert.Equal(t, 2*time.Hour, Cfg.JWTTokenLifespan)
	assert.Equal(t, 30*time.Minute, Cfg.ResetTokenLifespan)
}
