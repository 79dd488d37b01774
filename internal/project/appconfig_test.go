package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.BadgeDiameterMM = 32
	cfg.LayoutMode = "grid"
	cfg.Theme = "dark"
	cfg.RecentFiles = []string{"/tmp/a.png", "/tmp/b.jpg"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.BadgeDiameterMM != 32 {
		t.Errorf("expected BadgeDiameterMM=32, got %f", loaded.BadgeDiameterMM)
	}
	if loaded.LayoutMode != "grid" {
		t.Errorf("expected LayoutMode=grid, got %s", loaded.LayoutMode)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if len(loaded.RecentFiles) != 2 {
		t.Errorf("expected 2 recent files, got %d", len(loaded.RecentFiles))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.BadgeDiameterMM != defaults.BadgeDiameterMM {
		t.Errorf("expected default diameter %f, got %f", defaults.BadgeDiameterMM, cfg.BadgeDiameterMM)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	cfg := model.DefaultAppConfig()
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigClampsOutOfRangeValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// A hand-edited file with out-of-range values and null recent_files.
	data := []byte(`{"badge_diameter_mm":500,"spacing_mm":-3,"margin_mm":1,"recent_files":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.BadgeDiameterMM != model.MaxBadgeDiameterMM {
		t.Errorf("diameter should clamp to %v, got %v", model.MaxBadgeDiameterMM, cfg.BadgeDiameterMM)
	}
	if cfg.SpacingMM != model.MinSpacingMM {
		t.Errorf("spacing should clamp to %v, got %v", model.MinSpacingMM, cfg.SpacingMM)
	}
	if cfg.MarginMM != model.MinMarginMM {
		t.Errorf("margin should clamp to %v, got %v", model.MinMarginMM, cfg.MarginMM)
	}
	if cfg.RecentFiles == nil {
		t.Error("RecentFiles should not be nil after loading")
	}
}
