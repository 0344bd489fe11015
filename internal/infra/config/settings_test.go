package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	cfg, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if cfg.Home() != ".runestone" {
		t.Errorf("Home() = %q", cfg.Home())
	}
	if cfg.SpecDir() != "specs" {
		t.Errorf("SpecDir() = %q", cfg.SpecDir())
	}
	if cfg.Strict() {
		t.Error("Strict() = true by default")
	}
	if cfg.StderrLevel() != "warn" {
		t.Errorf("StderrLevel() = %q", cfg.StderrLevel())
	}
	if cfg.ConfigSource() != "default" || cfg.SettingPath() != "" {
		t.Errorf("ConfigSource/SettingPath = %q/%q", cfg.ConfigSource(), cfg.SettingPath())
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "setting.json")
	if err := os.WriteFile(path, []byte(`{"strict": true, "stderr_level": "debug"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if !cfg.Strict() {
		t.Error("Strict() = false, want value from file")
	}
	if cfg.StderrLevel() != "debug" {
		t.Errorf("StderrLevel() = %q", cfg.StderrLevel())
	}
	// Absent fields still get defaults.
	if cfg.SpecDir() != "specs" {
		t.Errorf("SpecDir() = %q", cfg.SpecDir())
	}
	if cfg.ConfigSource() != "json" || cfg.SettingPath() != path {
		t.Errorf("ConfigSource/SettingPath = %q/%q", cfg.ConfigSource(), cfg.SettingPath())
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "setting.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(dir); err == nil {
		t.Error("expected error for malformed setting.json")
	}
}

func TestCreateDefaultSettings(t *testing.T) {
	var settings RawSettings
	if err := json.Unmarshal(CreateDefaultSettings(), &settings); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if settings.Home == nil || *settings.Home != ".runestone" {
		t.Errorf("home = %v", settings.Home)
	}
	if settings.Strict == nil || *settings.Strict {
		t.Errorf("strict = %v", settings.Strict)
	}
}
