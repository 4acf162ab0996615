package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all pocketbook configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Widget     WidgetConfig     `toml:"widget"`
	Daemon     DaemonConfig     `toml:"daemon"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir  string `toml:"data_dir,omitempty"`
	Currency string `toml:"currency"`
}

// WidgetConfig holds widget snapshot settings.
type WidgetConfig struct {
	ProjectionDays int    `toml:"projection_days"`
	OutputDir      string `toml:"output_dir,omitempty"`
}

// DaemonConfig holds background refresher settings.
type DaemonConfig struct {
	RefreshMinutes int    `toml:"refresh_minutes"`
	ListenAddr     string `toml:"listen_addr,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "USD",
		},
		Widget: WidgetConfig{
			ProjectionDays: 10,
		},
		Daemon: DaemonConfig{
			RefreshMinutes: 15,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pocketbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pocketbook")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the database and widget snapshots.
// The configured value wins; otherwise the XDG data dir.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "pocketbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "pocketbook")
}

// DBPath returns the full path to the ledger database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "pocketbook.db")
}

// WidgetDir returns the directory widget snapshots are written to.
func WidgetDir(cfg Config) string {
	if cfg.Widget.OutputDir != "" {
		return cfg.Widget.OutputDir
	}
	return filepath.Join(DataDir(cfg), "widgets")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Widget.ProjectionDays <= 0 {
		cfg.Widget.ProjectionDays = DefaultConfig().Widget.ProjectionDays
	}
	if cfg.Daemon.RefreshMinutes <= 0 {
		cfg.Daemon.RefreshMinutes = DefaultConfig().Daemon.RefreshMinutes
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
