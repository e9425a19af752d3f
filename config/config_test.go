package config_test

import (
	"testing"
	"time"

	"omnixius-ai/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Errorf("expected default backend timeout 10s, got %s", cfg.Backend.Timeout)
	}
	if cfg.Chat.ModelTag != "omnixius-ai-v0" {
		t.Errorf("unexpected model tag %q", cfg.Chat.ModelTag)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected allowed origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("CHAT_MODEL_TAG", "custom-tag")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENVIRONMENT_NAME", "production")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Chat.ModelTag != "custom-tag" {
		t.Errorf("expected custom-tag, got %q", cfg.Chat.ModelTag)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected allowed origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.TestEndpoints.Enabled {
		t.Errorf("test endpoints must default to disabled in production")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "Zero timeout", key: "BACKEND_TIMEOUT", val: "0s"},
		{name: "Blank model tag", key: "CHAT_MODEL_TAG", val: "  "},
		{name: "Zero rate", key: "RATE_LIMIT_REQUESTS_PER_MIN", val: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := config.Load(); err == nil {
				t.Errorf("expected validation error for %s=%q", tc.key, tc.val)
			}
		})
	}
}
