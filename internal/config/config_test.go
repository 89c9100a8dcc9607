package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.TickMs != 30 {
		t.Errorf("TickMs = %d, want 30", cfg.TickMs)
	}
	if cfg.RetryMs != 500 {
		t.Errorf("RetryMs = %d, want 500", cfg.RetryMs)
	}
	if cfg.CommitThreshold != 10 {
		t.Errorf("CommitThreshold = %d, want 10", cfg.CommitThreshold)
	}
	if cfg.Cooldown() != 1800*time.Millisecond {
		t.Errorf("Cooldown() = %s, want 1.8s", cfg.Cooldown())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MUSHTI_CONFIG", "")
	t.Setenv("MUSHTI_ADDR", ":9999")
	t.Setenv("MUSHTI_COMMIT_THRESHOLD", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.CommitThreshold != 5 {
		t.Errorf("CommitThreshold = %d, want 5", cfg.CommitThreshold)
	}
	// Untouched fields keep their defaults.
	if cfg.TickMs != 30 {
		t.Errorf("TickMs = %d, want default 30", cfg.TickMs)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "addr: \":7070\"\ntick_ms: 40\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("MUSHTI_CONFIG", path)
	t.Setenv("MUSHTI_ADDR", ":6060") // env wins over file

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":6060" {
		t.Errorf("Addr = %q, want env override :6060", cfg.Addr)
	}
	if cfg.TickMs != 40 {
		t.Errorf("TickMs = %d, want file value 40", cfg.TickMs)
	}
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("MUSHTI_CONFIG", "")
	t.Setenv("MUSHTI_TICK_MS", "0")

	if _, err := Load(); err == nil {
		t.Error("Load() with zero tick_ms should fail")
	}
}
