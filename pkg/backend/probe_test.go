package backend

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"chromactl/pkg/color"
	"chromactl/pkg/device"
)

// touch creates an empty file standing in for a vendor utility install.
func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestProbedScanFindsInstalledUtility(t *testing.T) {
	dir := t.TempDir()
	exe := touch(t, dir, "MysticLight.exe")

	c := NewMSI(filepath.Join(dir, "missing.exe"), exe)
	descs, err := c.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(descs) != 1 {
		t.Fatalf("got %d descriptors, want 1", len(descs))
	}
	d := descs[0]
	if d.Key != "msi" || d.Backend != "msi" || d.Category != device.CategoryMotherboard {
		t.Errorf("unexpected descriptor: %+v", d)
	}
}

func TestProbedScanUnavailableWhenNotInstalled(t *testing.T) {
	dir := t.TempDir()
	c := NewLianLi(filepath.Join(dir, "nope.exe"))

	_, err := c.Scan(context.Background())
	if !errors.Is(err, device.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestProbedApplyValidatesFirst(t *testing.T) {
	dir := t.TempDir()
	exe := touch(t, dir, "ASRRGBLED.exe")
	c := NewASRock(exe)

	bad := device.Settings{
		Color:      color.Color{R: 0, G: 0, B: 0},
		Effect:     "static",
		Brightness: 101,
		Speed:      50,
	}
	if err := c.Apply(context.Background(), "asrock", bad); !errors.Is(err, device.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	good := device.Settings{
		Color:      color.Color{R: 255, G: 0, B: 128},
		Effect:     "breathing",
		Brightness: 80,
		Speed:      40,
	}
	if err := c.Apply(context.Background(), "asrock", good); err != nil {
		t.Fatalf("Apply: %v", err)
	}
}

func TestVendorDescriptorKeys(t *testing.T) {
	dir := t.TempDir()
	exe := touch(t, dir, "vendor.exe")

	cases := []struct {
		ctrl device.Controller
		key  string
	}{
		{NewLianLi(exe), "lian_li"},
		{NewMSI(exe), "msi"},
		{NewGSkill(exe), "gskill"},
		{NewASRock(exe), "asrock"},
	}
	for _, tc := range cases {
		descs, err := tc.ctrl.Scan(context.Background())
		if err != nil {
			t.Fatalf("%s Scan: %v", tc.key, err)
		}
		if descs[0].Key != tc.key {
			t.Errorf("key = %q, want %q", descs[0].Key, tc.key)
		}
		if descs[0].Backend != tc.ctrl.Name() {
			t.Errorf("%s: descriptor backend %q != controller name %q", tc.key, descs[0].Backend, tc.ctrl.Name())
		}
		if len(tc.ctrl.SupportedEffects()) == 0 {
			t.Errorf("%s: no supported effects", tc.key)
		}
	}
}
