package config

import (
	"os"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	os.Unsetenv("HTTP_TIMEOUT")
	os.Unsetenv("LOG_PATH")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 5 {
		t.Errorf("expected default timeout 5, got %d", cfg.HTTPTimeout)
	}
	if cfg.LogPath != ".log/app.log" {
		t.Errorf("expected default log path, got %q", cfg.LogPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default level info, got %q", cfg.LogLevel)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Timeout())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "30")
	t.Setenv("LOG_PATH", "/var/log/checks.log")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.HTTPTimeout)
	}
	if cfg.LogPath != "/var/log/checks.log" {
		t.Errorf("unexpected log path %q", cfg.LogPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("unexpected level %q", cfg.LogLevel)
	}
}

func TestFromEnvInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")

	if _, err := FromEnv(); err == nil {
		t.Error("expected an error for a non-numeric timeout")
	}
}
