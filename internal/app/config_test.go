package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":3001", cfg.HTTPAddr)
	assert.Equal(t, "dev-secret-change", cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.CORSAllow)
	assert.Equal(t, 30, cfg.RateMax)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOW", "https://a.example, https://b.example")
	t.Setenv("RATE_MAX", "5")
	t.Setenv("RATE_WINDOW_SEC", "10")

	cfg := LoadConfig()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllow)
	assert.Equal(t, 5, cfg.RateMax)
	assert.Equal(t, 10*time.Second, cfg.RateWindow)
}

func TestLoadConfig_BadIntFallsBack(t *testing.T) {
	t.Setenv("RATE_MAX", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 30, cfg.RateMax)
}
