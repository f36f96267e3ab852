package config

import (
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("QUILL_TEST_SET", "value")

	if got := GetEnvOrDefault("QUILL_TEST_SET", "fallback"); got != "value" {
		t.Errorf("expected env value, got %q", got)
	}
	if got := GetEnvOrDefault("QUILL_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestParseEnvInt(t *testing.T) {
	t.Setenv("QUILL_TEST_INT", "42")
	t.Setenv("QUILL_TEST_BAD_INT", "not-a-number")

	if got := parseEnvInt("QUILL_TEST_INT", 7); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := parseEnvInt("QUILL_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("expected default on malformed value, got %d", got)
	}
	if got := parseEnvInt("QUILL_TEST_MISSING_INT", 7); got != 7 {
		t.Errorf("expected default on missing value, got %d", got)
	}
}

func TestSetGeneratorURL(t *testing.T) {
	original := GetGeneratorURL()

	restore := SetGeneratorURL("http://127.0.0.1:9999/generate")
	if got := GetGeneratorURL(); got != "http://127.0.0.1:9999/generate" {
		t.Errorf("expected overridden URL, got %q", got)
	}

	restore()
	if got := GetGeneratorURL(); got != original {
		t.Errorf("expected restored URL %q, got %q", original, got)
	}
}

func TestGetRateLimitConfig(t *testing.T) {
	t.Setenv("RATELIMIT_ENABLED", "true")
	t.Setenv("RATELIMIT_INLINE", "120")

	cfg := GetRateLimitConfig("inline")
	if !cfg.Enabled {
		t.Error("expected rate limiting enabled")
	}
	if cfg.MaxHits != 120 {
		t.Errorf("expected 120 max hits, got %d", cfg.MaxHits)
	}
	if cfg.Window != time.Minute {
		t.Errorf("expected one minute window, got %v", cfg.Window)
	}

	unknown := GetRateLimitConfig("nonexistent")
	if unknown.Enabled {
		t.Error("expected unknown key to disable limiting")
	}
}
