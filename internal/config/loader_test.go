package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWritesAndReadsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %s", resolved)
	}
	if cfg.Addr != ":3000" || cfg.Mode != ModeRoom {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected shutdown timeout: %v", cfg.ShutdownTimeout)
	}

	// The loader materializes a default config file for next time.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CHATAPP_ADDR", ":9999")
	t.Setenv("CHATAPP_MODE", ModeDirect)

	cfg, _, err := Load(nil, filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("env override not applied: %+v", cfg)
	}
	if cfg.Mode != ModeDirect {
		t.Fatalf("mode override not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("CHATAPP_MODE", "broadcast")

	if _, _, err := Load(nil, filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Fatal("expected validation error for unknown mode")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.Addr = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty addr")
	}
}
