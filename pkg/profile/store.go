package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"chromactl/pkg/device"
)

// Store owns the profile document. All read-modify-write sequences are
// serialized behind a mutex, and the document is replaced atomically on disk
// so a failed write never leaves a corrupt or partial file.
type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

// Open loads the profile document at path, creating an empty one if the file
// does not exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path, doc: emptyDocument()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile store: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse profile store: %w", err)
	}
	if doc.Profiles == nil {
		doc.Profiles = make(map[string]Profile)
	}
	s.doc = doc
	return s, nil
}

// Save validates the settings and writes/overwrites the named profile with a
// fresh creation timestamp. Invalid data is rejected before anything is
// persisted.
func (s *Store) Save(name string, settings device.Settings, selectedKeys []string) error {
	p := Profile{
		Color:           settings.Color,
		Effect:          settings.Effect,
		Brightness:      settings.Brightness,
		Speed:           settings.Speed,
		SelectedDevices: append([]string(nil), selectedKeys...),
		Created:         time.Now().UTC(),
		Version:         documentVersion,
	}
	if err := p.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cloneProfiles()
	next[name] = p
	if err := s.persist(next); err != nil {
		return err
	}

	log.Info().Str("profile", name).Msg("profile saved")
	return nil
}

// Load returns a copy of the named profile, or ErrNotFound.
func (s *Store) Load(name string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.doc.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	p.SelectedDevices = append([]string(nil), p.SelectedDevices...)
	return p, nil
}

// List returns the saved profile names, sorted.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.doc.Profiles))
	for name := range s.doc.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Delete removes the named profile. It reports false when the profile was
// absent; a persistence failure is returned as an error with the store left
// unmodified.
func (s *Store) Delete(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doc.Profiles[name]; !ok {
		return false, nil
	}

	next := s.cloneProfiles()
	delete(next, name)
	if err := s.persist(next); err != nil {
		return false, err
	}

	log.Info().Str("profile", name).Msg("profile deleted")
	return true, nil
}

// PruneOlderThan deletes profiles whose creation age exceeds the given number
// of days and returns how many were removed.
func (s *Store) PruneOlderThan(days int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	next := s.cloneProfiles()
	removed := 0
	for name, p := range next {
		if p.Created.Before(cutoff) {
			delete(next, name)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}

	if err := s.persist(next); err != nil {
		return 0, err
	}

	log.Info().Int("removed", removed).Int("days", days).Msg("pruned old profiles")
	return removed, nil
}

// Export writes all profiles to path as an interchange document.
func (s *Store) Export(path string) error {
	s.mu.Lock()
	exp := exportDocument{
		ExportDate:  time.Now().UTC(),
		Application: "chromactl",
		Version:     documentVersion,
		Profiles:    s.cloneProfiles(),
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	log.Info().Str("path", path).Int("profiles", len(exp.Profiles)).Msg("profiles exported")
	return nil
}

// Import merges profiles from an export document at path. Each entry is
// validated with the same rules as Save; entries that fail validation are
// skipped, not fatal. Existing names are kept unless overwrite is set.
// Returns the number of profiles imported.
func (s *Store) Import(path string, overwrite bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read import file: %w", err)
	}

	if err := validateDocument(data); err != nil {
		return 0, fmt.Errorf("invalid import document: %w", err)
	}

	var imp exportDocument
	if err := json.Unmarshal(data, &imp); err != nil {
		return 0, fmt.Errorf("parse import file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cloneProfiles()
	imported := 0
	for name, p := range imp.Profiles {
		if _, exists := next[name]; exists && !overwrite {
			continue
		}
		if err := p.validate(); err != nil {
			log.Warn().Str("profile", name).Err(err).Msg("skipping invalid imported profile")
			continue
		}
		if p.Version == "" {
			p.Version = documentVersion
		}
		next[name] = p
		imported++
	}

	if imported == 0 {
		return 0, nil
	}
	if err := s.persist(next); err != nil {
		return 0, err
	}

	log.Info().Int("imported", imported).Str("path", path).Msg("profiles imported")
	return imported, nil
}

// cloneProfiles returns a shallow copy of the profile map so a failed persist
// never leaves memory and disk disagreeing. Caller must hold s.mu.
func (s *Store) cloneProfiles() map[string]Profile {
	next := make(map[string]Profile, len(s.doc.Profiles))
	for name, p := range s.doc.Profiles {
		next[name] = p
	}
	return next
}

// persist writes the document atomically and commits it to memory only on
// success. Caller must hold s.mu.
func (s *Store) persist(profiles map[string]Profile) error {
	doc := document{
		Profiles:     profiles,
		LastModified: time.Now().UTC(),
		Version:      documentVersion,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write profile store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace profile store: %w", err)
	}

	s.doc = doc
	return nil
}
