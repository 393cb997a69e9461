package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDumpConfigDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	content := `
hex = true
log_level = "debug"
	`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadDumpConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Hex {
		t.Fatalf("expected hex mode enabled")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestLoadDumpConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("log_level = \"warn\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadDumpConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Hex {
		t.Fatalf("expected hex mode to keep its default")
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestLoadDumpConfigMissingFile(t *testing.T) {
	if _, err := loadDumpConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
