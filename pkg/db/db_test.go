package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"chromactl/pkg/color"
	"chromactl/pkg/device"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return database
}

func TestMigrateIsIdempotent(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	version, err := database.SchemaVersion(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if version != currentSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestDeviceSnapshotReplace(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()
	store := database.Devices()

	first := []device.Descriptor{
		{Key: "razer", Name: "Razer Basilisk Mouse", Backend: "razer", Category: device.CategoryMouse, Zones: 4, Effects: []string{"static", "breathing"}},
		{Key: "msi", Name: "MSI Motherboard", Backend: "msi", Category: device.CategoryMotherboard, Zones: 8, Effects: []string{"static"}},
	}
	if err := store.ReplaceSnapshot(ctx, first); err != nil {
		t.Fatalf("ReplaceSnapshot: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d devices, want 2", len(got))
	}
	if got[0].Key != "msi" || got[1].Key != "razer" {
		t.Errorf("unexpected order: %s, %s", got[0].Key, got[1].Key)
	}
	if got[1].Zones != 4 || got[1].Category != device.CategoryMouse {
		t.Errorf("razer row round-trip mismatch: %+v", got[1])
	}
	if len(got[1].Effects) != 2 {
		t.Errorf("effects round-trip mismatch: %v", got[1].Effects)
	}

	// A rescan replaces, never merges.
	second := []device.Descriptor{first[0]}
	if err := store.ReplaceSnapshot(ctx, second); err != nil {
		t.Fatal(err)
	}
	got, err = store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Key != "razer" {
		t.Errorf("snapshot after replace = %v, want only razer", got)
	}
}

func TestApplyHistoryRecordAndRecent(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()
	store := database.History()

	s := device.Settings{
		Color:      color.Color{R: 255, G: 0, B: 128},
		Effect:     "breathing",
		Brightness: 80,
		Speed:      40,
	}
	if err := store.Record(ctx, "razer", s, true, ""); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(ctx, "msi", s, false, "backend unavailable"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d records, want 2", len(recent))
	}
	// Newest first.
	if recent[0].DeviceKey != "msi" || recent[0].OK {
		t.Errorf("unexpected newest record: %+v", recent[0])
	}
	if recent[1].Color != "#ff0080" {
		t.Errorf("color stored as %q, want #ff0080", recent[1].Color)
	}
}

func TestApplyHistoryPrune(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()
	store := database.History()

	s := device.Off()
	if err := store.Record(ctx, "razer", s, true, ""); err != nil {
		t.Fatal(err)
	}

	// Backdate the row past the cutoff.
	old := time.Now().UTC().Add(-48 * time.Hour).Format(time.DateTime)
	if _, err := database.ExecContext(ctx, `UPDATE apply_history SET applied_at = ?`, old); err != nil {
		t.Fatal(err)
	}

	n, err := store.Prune(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d rows, want 1", n)
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("got %d records after prune, want 0", len(recent))
	}
}

func TestRecorderBridgesStores(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()
	rec := database.NewRecorder()

	descs := []device.Descriptor{
		{Key: "gskill", Name: "G.Skill AURA RGB RAM", Backend: "gskill", Category: device.CategoryRAM, Zones: 4, Effects: []string{"static"}},
	}
	if err := rec.RecordScan(ctx, descs); err != nil {
		t.Fatalf("RecordScan: %v", err)
	}
	if err := rec.RecordApply(ctx, "gskill", device.Off(), true, ""); err != nil {
		t.Fatalf("RecordApply: %v", err)
	}

	stored, err := database.Devices().List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0].Key != "gskill" {
		t.Errorf("snapshot = %v, want gskill", stored)
	}
	recent, err := database.History().Recent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].DeviceKey != "gskill" {
		t.Errorf("history = %v, want gskill record", recent)
	}
}
