package config

import (
	"os"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	Env      string
	HTTPAddr string

	// Upstream course-management API
	BackendBaseURL  string
	UpstreamTimeout time.Duration

	// Redis identity cache
	RedisAddr        string
	RedisPass        string
	IdentityCacheTTL time.Duration

	// Cookie flags; Secure is forced on outside development.
	CookieSecure bool
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	env := getEnv("ENV", "development")
	cookieSecure := env != "development"
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		cookieSecure = strings.ToLower(v) == "true"
	}

	return AppConfig{
		Env:      env,
		HTTPAddr: getEnv("HTTP_ADDR", ":3000"),

		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "http://localhost:8080"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),

		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPass:        getEnv("REDIS_PASS", ""),
		IdentityCacheTTL: getEnvDuration("IDENTITY_CACHE_TTL", 5*time.Minute),

		CookieSecure: cookieSecure,
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
