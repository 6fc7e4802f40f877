package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UIScale != 1.0 {
		t.Fatalf("default ui scale: got %v", cfg.UIScale)
	}
	if !cfg.RichPresenceEnabled() {
		t.Fatal("rich presence should default to enabled")
	}
	if !cfg.AutoUpdateEnabled() {
		t.Fatal("auto update should default to enabled")
	}
}

func TestLoadNoLauncherDir(t *testing.T) {
	_, err := Load("")
	if !errors.Is(err, ErrNoLauncherDir) {
		t.Fatalf("expected ErrNoLauncherDir, got %v", err)
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	disabled := false
	cfg := Default()
	cfg.SelectedEntry = "vanilla-1.21"
	cfg.RichPresence = &disabled
	cfg.Theme = "dark"

	if err := cfg.Save(dir); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.SelectedEntry != "vanilla-1.21" {
		t.Fatalf("selected entry: got %q", loaded.SelectedEntry)
	}
	if loaded.RichPresenceEnabled() {
		t.Fatal("rich presence should be disabled after round trip")
	}
	if loaded.Theme != "dark" {
		t.Fatalf("theme: got %q", loaded.Theme)
	}
}

func TestNormalizeRepairsBadValues(t *testing.T) {
	dir := t.TempDir()
	raw := `{"version":"1","ui_scale":-2,"logging":{"retention_days":-5}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UIScale != 1.0 {
		t.Fatalf("ui scale not repaired: %v", cfg.UIScale)
	}
	if cfg.Logging.RetentionDays != 0 {
		t.Fatalf("retention not repaired: %v", cfg.Logging.RetentionDays)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("logging defaults not applied: %+v", cfg.Logging)
	}
}
