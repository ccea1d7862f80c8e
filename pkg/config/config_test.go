package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OpenRGB.Host != "localhost" || cfg.OpenRGB.Port != 6742 {
		t.Errorf("openrgb defaults = %+v", cfg.OpenRGB)
	}
	if cfg.Razer.SDKTimeout != 5000 {
		t.Errorf("razer sdk_timeout = %d, want 5000", cfg.Razer.SDKTimeout)
	}
	if cfg.Devices.DefaultBrightness != 100 || cfg.Devices.DefaultSpeed != 50 {
		t.Errorf("device defaults = %+v", cfg.Devices)
	}
	if cfg.Version != "1.0" {
		t.Errorf("version = %q, want 1.0", cfg.Version)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults were not persisted: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	cfg := Default()
	cfg.OpenRGB.Port = 7000
	cfg.Devices.AutoSync = true
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.OpenRGB.Port != 7000 {
		t.Errorf("port = %d, want 7000", loaded.OpenRGB.Port)
	}
	if !loaded.Devices.AutoSync {
		t.Error("auto_sync not persisted")
	}
	if loaded.LastModified.IsZero() {
		t.Error("last_modified not stamped")
	}
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
