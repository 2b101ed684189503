package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RAKH_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Address != ":8080" || cfg.Server.Prefix != "/v1" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected shutdown timeout: %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rakh.yaml")
	body := []byte("server:\n  address: \":9090\"\n  read_timeout: 3s\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("RAKH_CONFIG", path)
	t.Setenv("RAKH_SERVER_PREFIX", "/api")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Address != ":9090" {
		t.Fatalf("file value not applied: %q", cfg.Server.Address)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Fatalf("unexpected read timeout: %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.Prefix != "/api" {
		t.Fatalf("env override not applied: %q", cfg.Server.Prefix)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("RAKH_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Address: " "}, Log: LogConfig{Level: "info"}}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAddress) {
		t.Fatalf("expected ErrMissingAddress, got %v", err)
	}

	cfg = &Config{Server: ServerConfig{Address: ":80"}, Log: LogConfig{Level: "loud"}}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}

	cfg.Log.Level = "WARN"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
