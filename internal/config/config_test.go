package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := NewFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestNewFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8090")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://prepper.example ,")

	cfg, err := NewFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, []string{"http://localhost:5173", "https://prepper.example"}, cfg.AllowedOrigins)
}

func TestNewFromEnv_BadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := NewFromEnv()

	assert.Error(t, err)
}
