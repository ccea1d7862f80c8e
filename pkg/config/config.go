// Package config loads and persists the application settings document
// (settings.json). Defaults are written on first run; callers receive an
// explicit Config value rather than reading process-wide state.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const documentVersion = "1.0"

// DefaultDir returns the directory holding the settings and profile
// documents, ~/.config/chromactl on Linux and macOS.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chromactl"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "chromactl"), nil
}

// Application holds general application preferences.
type Application struct {
	AutoConnect    bool   `json:"auto_connect"`
	MinimizeToTray bool   `json:"minimize_to_tray"`
	CheckUpdates   bool   `json:"check_updates"`
	Theme          string `json:"theme"`
}

// OpenRGB holds the configured endpoint of the local OpenRGB SDK server.
// This is a fixed loopback endpoint, not a discovery protocol.
type OpenRGB struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	AutoConnect  bool   `json:"auto_connect"`
	ScanInterval int    `json:"scan_interval"` // seconds
}

// Razer holds Chroma SDK session preferences.
type Razer struct {
	AutoConnect bool `json:"auto_connect"`
	SDKTimeout  int  `json:"sdk_timeout"` // milliseconds
}

// Devices holds per-device defaults applied when a caller omits them.
type Devices struct {
	AutoSync          bool   `json:"auto_sync"`
	DefaultBrightness int    `json:"default_brightness"`
	DefaultSpeed      int    `json:"default_speed"`
	EvofoxPort        string `json:"evofox_port"` // serial bridge, e.g. COM5
}

// Config is the full settings document.
type Config struct {
	Application  Application `json:"application"`
	OpenRGB      OpenRGB     `json:"openrgb"`
	Razer        Razer       `json:"razer"`
	Devices      Devices     `json:"devices"`
	LastModified time.Time   `json:"last_modified"`
	Version      string      `json:"version"`
}

// Default returns the settings written on first run.
func Default() Config {
	return Config{
		Application: Application{
			AutoConnect:  true,
			CheckUpdates: true,
			Theme:        "dark",
		},
		OpenRGB: OpenRGB{
			Host:         "localhost",
			Port:         6742,
			AutoConnect:  true,
			ScanInterval: 30,
		},
		Razer: Razer{
			AutoConnect: true,
			SDKTimeout:  5000,
		},
		Devices: Devices{
			DefaultBrightness: 100,
			DefaultSpeed:      50,
		},
		Version: documentVersion,
	}
}

// Load reads the settings document at path. If the file does not exist the
// defaults are written there first and returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse settings: %w", err)
	}
	return cfg, nil
}

// Save writes the settings document atomically, stamping last_modified and
// the document version.
func Save(path string, cfg Config) error {
	cfg.LastModified = time.Now().UTC()
	cfg.Version = documentVersion

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
