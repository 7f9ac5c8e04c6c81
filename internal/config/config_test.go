package config

import (
	"testing"
	"time"
)

func TestCookieSecureFollowsEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override string
		want     bool
	}{
		{name: "development defaults to insecure", env: "development", want: false},
		{name: "production defaults to secure", env: "production", want: true},
		{name: "development forced secure", env: "development", override: "true", want: true},
		{name: "production forced insecure", env: "production", override: "false", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", tt.env)
			t.Setenv("COOKIE_SECURE", tt.override)
			cfg := Load()
			if cfg.CookieSecure != tt.want {
				t.Fatalf("CookieSecure = %v, want %v", cfg.CookieSecure, tt.want)
			}
		})
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":4000")
	t.Setenv("BACKEND_BASE_URL", "http://api.example.edu")
	t.Setenv("UPSTREAM_TIMEOUT", "10s")
	t.Setenv("IDENTITY_CACHE_TTL", "90s")

	cfg := Load()
	if cfg.HTTPAddr != ":4000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.BackendBaseURL != "http://api.example.edu" {
		t.Fatalf("BackendBaseURL = %q", cfg.BackendBaseURL)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Fatalf("UpstreamTimeout = %v", cfg.UpstreamTimeout)
	}
	if cfg.IdentityCacheTTL != 90*time.Second {
		t.Fatalf("IdentityCacheTTL = %v", cfg.IdentityCacheTTL)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "not-a-duration")
	cfg := Load()
	if cfg.UpstreamTimeout != 30*time.Second {
		t.Fatalf("UpstreamTimeout = %v, want default 30s", cfg.UpstreamTimeout)
	}
}
