package profile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chromactl/pkg/color"
	"chromactl/pkg/device"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "profiles.json"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func gamingSettings() device.Settings {
	return device.Settings{
		Color:      color.Color{R: 0, G: 255, B: 128},
		Effect:     "breathing",
		Brightness: 80,
		Speed:      40,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)
	devices := []string{"razer", "msi"}

	if err := s.Save("Gaming", gamingSettings(), devices); err != nil {
		t.Fatal(err)
	}

	p, err := s.Load("Gaming")
	if err != nil {
		t.Fatal(err)
	}
	if p.Settings() != gamingSettings() {
		t.Errorf("loaded settings = %+v, want %+v", p.Settings(), gamingSettings())
	}
	if len(p.SelectedDevices) != 2 || p.SelectedDevices[0] != "razer" || p.SelectedDevices[1] != "msi" {
		t.Errorf("selected devices = %v", p.SelectedDevices)
	}
	if p.Created.IsZero() {
		t.Error("created timestamp not set")
	}
	if p.Version != "1.0" {
		t.Errorf("version = %q", p.Version)
	}
}

func TestSaveRejectsInvalidEffect(t *testing.T) {
	s := newStore(t)
	if err := s.Save("Keep", gamingSettings(), nil); err != nil {
		t.Fatal(err)
	}

	bad := gamingSettings()
	bad.Effect = "disco"
	err := s.Save("Bad", bad, nil)
	if !errors.Is(err, device.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	// Existing profiles must be untouched by the failed save.
	names := s.List()
	if len(names) != 1 || names[0] != "Keep" {
		t.Errorf("profiles after failed save = %v, want [Keep]", names)
	}
}

func TestSaveRejectsInvalidColor(t *testing.T) {
	s := newStore(t)
	bad := gamingSettings()
	bad.Color.R = 999
	if err := s.Save("Bad", bad, nil); !errors.Is(err, device.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestDeleteThenLoadNotFound(t *testing.T) {
	s := newStore(t)
	if err := s.Save("Gaming", gamingSettings(), []string{"razer"}); err != nil {
		t.Fatal(err)
	}

	ok, err := s.Delete("Gaming")
	if err != nil || !ok {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", ok, err)
	}

	if _, err := s.Load("Gaming"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after delete: err = %v, want ErrNotFound", err)
	}

	ok, err = s.Delete("Gaming")
	if err != nil || ok {
		t.Errorf("second Delete = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save("Night", gamingSettings(), []string{"gskill"}); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	p, err := reopened.Load("Night")
	if err != nil {
		t.Fatal(err)
	}
	if p.Effect != "breathing" {
		t.Errorf("effect = %q", p.Effect)
	}
}

func TestDocumentFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save("Gaming", gamingSettings(), []string{"razer", "msi"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["version"] != "1.0" {
		t.Errorf("document version = %v", doc["version"])
	}
	if _, ok := doc["last_modified"]; !ok {
		t.Error("document missing last_modified")
	}

	profiles := doc["profiles"].(map[string]any)
	gaming := profiles["Gaming"].(map[string]any)
	rawColor := gaming["color"].([]any)
	if len(rawColor) != 3 || rawColor[1].(float64) != 255 {
		t.Errorf("color wire form = %v, want [0, 255, 128]", rawColor)
	}
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	src := newStore(t)
	if err := src.Save("Gaming", gamingSettings(), []string{"razer"}); err != nil {
		t.Fatal(err)
	}
	other := gamingSettings()
	other.Effect = "wave"
	if err := src.Save("Work", other, []string{"msi"}); err != nil {
		t.Fatal(err)
	}

	exportPath := filepath.Join(dir, "export.json")
	if err := src.Export(exportPath); err != nil {
		t.Fatal(err)
	}

	dst := newStore(t)
	n, err := dst.Import(exportPath, false)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("imported = %d, want 2", n)
	}

	p, err := dst.Load("Work")
	if err != nil {
		t.Fatal(err)
	}
	if p.Effect != "wave" {
		t.Errorf("imported effect = %q", p.Effect)
	}
}

func TestImportSkipsInvalidEntries(t *testing.T) {
	dir := t.TempDir()
	importPath := filepath.Join(dir, "import.json")
	doc := `{
		"export_date": "2026-01-01T00:00:00Z",
		"application": "chromactl",
		"version": "1.0",
		"profiles": {
			"good": {"color": [10, 20, 30], "effect": "static", "brightness": 50, "speed": 50},
			"bad_effect": {"color": [10, 20, 30], "effect": "disco", "brightness": 50, "speed": 50},
			"bad_color": {"color": [300, 0, 0], "effect": "static", "brightness": 50, "speed": 50}
		}
	}`
	if err := os.WriteFile(importPath, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	s := newStore(t)
	n, err := s.Import(importPath, false)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("imported = %d, want 1", n)
	}
	if _, err := s.Load("good"); err != nil {
		t.Errorf("good profile missing: %v", err)
	}
	if _, err := s.Load("bad_effect"); !errors.Is(err, ErrNotFound) {
		t.Error("invalid effect entry was imported")
	}
}

func TestImportRespectsOverwriteFlag(t *testing.T) {
	dir := t.TempDir()
	importPath := filepath.Join(dir, "import.json")
	doc := `{
		"profiles": {
			"Gaming": {"color": [1, 2, 3], "effect": "static", "brightness": 10, "speed": 10}
		}
	}`
	if err := os.WriteFile(importPath, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	s := newStore(t)
	if err := s.Save("Gaming", gamingSettings(), nil); err != nil {
		t.Fatal(err)
	}

	n, err := s.Import(importPath, false)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("imported = %d, want 0 without overwrite", n)
	}
	p, _ := s.Load("Gaming")
	if p.Effect != "breathing" {
		t.Error("existing profile was overwritten")
	}

	n, err = s.Import(importPath, true)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("imported = %d, want 1 with overwrite", n)
	}
	p, _ = s.Load("Gaming")
	if p.Effect != "static" {
		t.Error("overwrite did not replace profile")
	}
}

func TestImportRejectsMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	importPath := filepath.Join(dir, "import.json")
	if err := os.WriteFile(importPath, []byte(`{"profiles": {"x": {"color": "red", "effect": "static"}}}`), 0600); err != nil {
		t.Fatal(err)
	}

	s := newStore(t)
	if _, err := s.Import(importPath, false); err == nil {
		t.Error("expected schema validation error for non-array color")
	}
}

func TestPruneOlderThan(t *testing.T) {
	s := newStore(t)
	if err := s.Save("fresh", gamingSettings(), nil); err != nil {
		t.Fatal(err)
	}

	// Backdate a second profile past the cutoff.
	s.mu.Lock()
	old := s.doc.Profiles["fresh"]
	old.Created = time.Now().UTC().AddDate(0, 0, -400)
	next := s.cloneProfiles()
	next["stale"] = old
	if err := s.persist(next); err != nil {
		s.mu.Unlock()
		t.Fatal(err)
	}
	s.mu.Unlock()

	removed, err := s.PruneOlderThan(365)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, err := s.Load("stale"); !errors.Is(err, ErrNotFound) {
		t.Error("stale profile survived prune")
	}
	if _, err := s.Load("fresh"); err != nil {
		t.Error("fresh profile was pruned")
	}
}
