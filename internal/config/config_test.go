package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Widget.ProjectionDays != 10 {
		t.Errorf("projection days = %d, want 10", cfg.Widget.ProjectionDays)
	}
	if cfg.General.Currency != "USD" {
		t.Errorf("currency = %q, want USD", cfg.General.Currency)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Widget.ProjectionDays = 14
	cfg.Daemon.RefreshMinutes = 5
	cfg.Appearance.Theme = "flexoki-light"
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file not written")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Widget.ProjectionDays != 14 || got.Daemon.RefreshMinutes != 5 {
		t.Errorf("round trip lost values: %+v", got)
	}
	if got.Appearance.Theme != "flexoki-light" {
		t.Errorf("theme = %q", got.Appearance.Theme)
	}
}

func TestNonPositiveSettingsFallBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "pocketbook")
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
	raw := "[widget]\nprojection_days = 0\n\n[daemon]\nrefresh_minutes = -3\n"
	if err := os.WriteFile(filepath.Join(path, "config.toml"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Widget.ProjectionDays != 10 || cfg.Daemon.RefreshMinutes != 15 {
		t.Errorf("fallbacks not applied: %+v", cfg)
	}
}

func TestDataDirPrecedence(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "pocketbook") {
		t.Errorf("xdg data dir = %q", got)
	}

	cfg.General.DataDir = "/opt/books"
	if got := DataDir(cfg); got != "/opt/books" {
		t.Errorf("explicit data dir = %q", got)
	}
	if got := DBPath(cfg); got != filepath.Join("/opt/books", "pocketbook.db") {
		t.Errorf("db path = %q", got)
	}
}
