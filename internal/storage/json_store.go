package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"habitflow/internal/migration"
	"habitflow/internal/models"
)

// Store is the on-disk document: profiles are kept raw so that records
// written by older versions survive untouched until their next save.
type Store struct {
	Version  int                        `json:"version"`
	Profiles map[string]json.RawMessage `json:"profiles"`
}

// JSONStore persists profiles in a single indent-marshaled JSON file. It is
// the default backend and mirrors the product's original file format.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  2,
		Profiles: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitflow init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Profiles == nil {
		s.store.Profiles = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// LoadProfile returns the stored profile migrated into the current schema.
// A malformed stored document is not an error: the migrator substitutes
// defaults for anything it cannot read.
func (s *JSONStore) LoadProfile(userID string) (models.Profile, error) {
	if s.store == nil {
		return models.Profile{}, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.store.Profiles[userID]
	if !ok {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrNotFound, userID)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		doc = nil
	}
	return migration.Profile(doc), nil
}

func (s *JSONStore) SaveProfile(userID string, profile models.Profile) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}

	s.store.Profiles[userID] = data
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
