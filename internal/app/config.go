package app

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Env       string
	HTTPAddr  string
	CORSAllow []string

	JWTSecret string

	// Handshake rate limit: RateMax upgrade attempts per RateWindow per IP.
	RateMax    int
	RateWindow time.Duration
}

func LoadConfig() Config {
	cfg := Config{
		Env:       getEnv("APP_ENV", "dev"),
		HTTPAddr:  getEnv("HTTP_ADDR", ":3001"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change"),
	}
	cfg.RateMax = getEnvInt("RATE_MAX", 30)
	cfg.RateWindow = time.Duration(getEnvInt("RATE_WINDOW_SEC", 60)) * time.Second
	// CORS allowlist
	allow := getEnv("CORS_ALLOW", "*")
	cfg.CORSAllow = splitCSV(allow)
	return cfg
}

// getEnv returns the env var or a default
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt parses an int env var with a fallback
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		var i int
		_, _ = fmt.Sscanf(v, "%d", &i)
		if i > 0 {
			return i
		}
	}
	return def
}

// splitCSV trims and filters a comma-separated list
func splitCSV(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
