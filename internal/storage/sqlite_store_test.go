package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"habitflow/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitflow.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	profile := models.DefaultProfile()
	profile.XP = 115
	rec := profile.Day("2024-06-01")
	rec.HabitCompletion["Deep Work"] = true
	rec.TrainingLog.Type = models.TrainingCardio
	profile.SetDay("2024-06-01", rec)

	if err := store.SaveProfile("default", profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	loaded, err := store.LoadProfile("default")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if loaded.XP != 115 {
		t.Errorf("XP not persisted: %d", loaded.XP)
	}
	day := loaded.History["2024-06-01"]
	if !day.HabitCompletion["Deep Work"] {
		t.Error("habit completion not persisted")
	}
	if day.TrainingLog.Type != models.TrainingCardio {
		t.Errorf("training type not persisted: %v", day.TrainingLog.Type)
	}
}

func TestSQLiteStore_UpsertIsLastWriterWins(t *testing.T) {
	store := newTestSQLiteStore(t)

	first := models.DefaultProfile()
	first.XP = 10
	if err := store.SaveProfile("default", first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := models.DefaultProfile()
	second.XP = 20
	if err := store.SaveProfile("default", second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := store.LoadProfile("default")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if loaded.XP != 20 {
		t.Errorf("expected last write to win, got XP %d", loaded.XP)
	}
}

func TestSQLiteStore_ProfilesAreIsolated(t *testing.T) {
	store := newTestSQLiteStore(t)

	alice := models.DefaultProfile()
	alice.XP = 1
	bob := models.DefaultProfile()
	bob.XP = 2

	if err := store.SaveProfile("alice", alice); err != nil {
		t.Fatalf("save alice: %v", err)
	}
	if err := store.SaveProfile("bob", bob); err != nil {
		t.Fatalf("save bob: %v", err)
	}

	got, err := store.LoadProfile("alice")
	if err != nil {
		t.Fatalf("load alice: %v", err)
	}
	if got.XP != 1 {
		t.Errorf("alice got bob's data: XP %d", got.XP)
	}
}

func TestSQLiteStore_LoadProfileNotFound(t *testing.T) {
	store := newTestSQLiteStore(t)

	_, err := store.LoadProfile("nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStore_LoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected an error loading an uninitialized store")
	}
}

func TestSQLiteStore_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "habitflow.db")

	first := NewSQLiteStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	profile := models.DefaultProfile()
	profile.XP = 300
	if err := first.SaveProfile("default", profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := NewSQLiteStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load after restart failed: %v", err)
	}
	defer second.Close()

	loaded, err := second.LoadProfile("default")
	if err != nil {
		t.Fatalf("LoadProfile after restart failed: %v", err)
	}
	if loaded.XP != 300 {
		t.Errorf("XP lost across restart: %d", loaded.XP)
	}
}
