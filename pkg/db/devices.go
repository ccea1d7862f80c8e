package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"chromactl/pkg/device"
)

// DeviceStore persists the latest scan snapshot.
type DeviceStore interface {
	ReplaceSnapshot(ctx context.Context, descriptors []device.Descriptor) error
	List(ctx context.Context) ([]device.Descriptor, error)
}

// Devices returns a DeviceStore for this database.
func (db *DB) Devices() DeviceStore {
	return &deviceStore{db: db}
}

type deviceStore struct {
	db *DB
}

// ReplaceSnapshot swaps the stored snapshot for the given one in a single
// transaction, matching the in-memory replace semantics of a scan.
func (s *deviceStore) ReplaceSnapshot(ctx context.Context, descriptors []device.Descriptor) error {
	return s.db.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM devices`); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
		for _, d := range descriptors {
			effects, err := json.Marshal(d.Effects)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO devices (key, name, backend, category, zones, effects)
				VALUES (?, ?, ?, ?, ?, ?)
			`, d.Key, d.Name, d.Backend, string(d.Category), d.Zones, string(effects))
			if err != nil {
				return fmt.Errorf("failed to store device %s: %w", d.Key, err)
			}
		}
		return nil
	})
}

func (s *deviceStore) List(ctx context.Context) ([]device.Descriptor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, name, backend, category, zones, effects
		FROM devices ORDER BY key
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []device.Descriptor
	for rows.Next() {
		var d device.Descriptor
		var category, effects string
		if err := rows.Scan(&d.Key, &d.Name, &d.Backend, &category, &d.Zones, &effects); err != nil {
			return nil, err
		}
		d.Category = device.Category(category)
		if err := json.Unmarshal([]byte(effects), &d.Effects); err != nil {
			return nil, fmt.Errorf("failed to decode effects for %s: %w", d.Key, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ApplyRecord is one persisted apply outcome.
type ApplyRecord struct {
	ID         int64
	DeviceKey  string
	Color      string
	Effect     string
	Brightness int
	Speed      int
	OK         bool
	Detail     string
	AppliedAt  time.Time
}

// HistoryStore persists per-device apply outcomes.
type HistoryStore interface {
	Record(ctx context.Context, key string, s device.Settings, ok bool, detail string) error
	Recent(ctx context.Context, limit int) ([]*ApplyRecord, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}

// History returns a HistoryStore for this database.
func (db *DB) History() HistoryStore {
	return &historyStore{db: db}
}

type historyStore struct {
	db *DB
}

func (s *historyStore) Record(ctx context.Context, key string, set device.Settings, ok bool, detail string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO apply_history (device_key, color, effect, brightness, speed, ok, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, key, set.Color.Hex(), set.Effect, set.Brightness, set.Speed, ok, detail)
	if err != nil {
		return fmt.Errorf("failed to record apply: %w", err)
	}
	return nil
}

func (s *historyStore) Recent(ctx context.Context, limit int) ([]*ApplyRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, device_key, color, effect, brightness, speed, ok, detail, applied_at
		FROM apply_history ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*ApplyRecord
	for rows.Next() {
		r := &ApplyRecord{}
		var appliedAt string
		if err := rows.Scan(&r.ID, &r.DeviceKey, &r.Color, &r.Effect, &r.Brightness, &r.Speed, &r.OK, &r.Detail, &appliedAt); err != nil {
			return nil, err
		}
		r.AppliedAt, _ = time.Parse(time.DateTime, appliedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *historyStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.DateTime)
	result, err := s.db.ExecContext(ctx, `DELETE FROM apply_history WHERE applied_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Recorder adapts the stores to the registry's persistence hook.
type Recorder struct {
	devices DeviceStore
	history HistoryStore
}

// NewRecorder builds a Recorder over this database.
func (db *DB) NewRecorder() *Recorder {
	return &Recorder{devices: db.Devices(), history: db.History()}
}

func (r *Recorder) RecordScan(ctx context.Context, descriptors []device.Descriptor) error {
	return r.devices.ReplaceSnapshot(ctx, descriptors)
}

func (r *Recorder) RecordApply(ctx context.Context, key string, s device.Settings, ok bool, detail string) error {
	return r.history.Record(ctx, key, s, ok, detail)
}
