package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"qlauncher/internal/fileutil"
	"qlauncher/internal/paths"
)

// ErrNoLauncherDir indicates configuration could not be loaded because the
// data directory itself is unresolvable.
var ErrNoLauncherDir = errors.New("launcher directory not found")

// Config holds the launcher's global configuration, persisted as
// config.json in the data directory. The same file doubles as the
// "already initialized" marker checked by first-run detection and by the
// migration guard.
type Config struct {
	Version       string  `json:"version"`
	SelectedEntry string  `json:"selected_entry,omitempty"`
	Theme         string  `json:"theme,omitempty"`
	UIScale       float64 `json:"ui_scale,omitempty"`
	SidebarWidth  int     `json:"sidebar_width,omitempty"`

	// RichPresence toggles the peer-presence integration. Nil means unset,
	// which defaults to enabled.
	RichPresence *bool `json:"rich_presence,omitempty"`
	// AutoUpdate toggles the startup update check in builds that carry it.
	AutoUpdate *bool `json:"auto_update,omitempty"`

	Logging Logging `json:"logging"`
}

// Logging controls log output.
type Logging struct {
	Level         string `json:"level,omitempty"`
	Format        string `json:"format,omitempty"`
	RetentionDays int    `json:"retention_days,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Version: "1",
		UIScale: 1.0,
		Logging: Logging{Level: "info", Format: "console", RetentionDays: 14},
	}
}

// Load reads config.json from the data directory. A missing file yields the
// defaults without error (first run); a present but unreadable or malformed
// file is an error the caller reports and survives.
func Load(dataDir string) (*Config, error) {
	if dataDir == "" {
		return nil, ErrNoLauncherDir
	}

	data, err := os.ReadFile(paths.ConfigFile(dataDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration atomically to config.json.
func (c *Config) Save(dataDir string) error {
	if dataDir == "" {
		return ErrNoLauncherDir
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := fileutil.WriteFileAtomic(paths.ConfigFile(dataDir), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// RichPresenceEnabled reports whether the peer-presence task should run.
// Unset defaults to enabled.
func (c *Config) RichPresenceEnabled() bool {
	if c == nil || c.RichPresence == nil {
		return true
	}
	return *c.RichPresence
}

// AutoUpdateEnabled reports whether the user allows update checks.
// Unset defaults to enabled.
func (c *Config) AutoUpdateEnabled() bool {
	if c == nil || c.AutoUpdate == nil {
		return true
	}
	return *c.AutoUpdate
}

func (c *Config) normalize() {
	if c.UIScale <= 0 {
		c.UIScale = 1.0
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
