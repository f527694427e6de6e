package migration

import (
	"database/sql"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testMigrations() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE profiles (user_id TEXT PRIMARY KEY, data TEXT NOT NULL);`),
		},
		"002_add_updated_at.sql": &fstest.MapFile{
			Data: []byte(`ALTER TABLE profiles ADD COLUMN updated_at TEXT;`),
		},
	}
}

func TestRunner_AppliesAllPending(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testMigrations())

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected schema version 2, got %d", version)
	}

	// The migrated schema must actually be usable.
	if _, err := db.Exec(`INSERT INTO profiles (user_id, data, updated_at) VALUES ('u', '{}', 'now')`); err != nil {
		t.Errorf("migrated schema rejected an insert: %v", err)
	}
}

func TestRunner_SecondApplyIsNoop(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testMigrations())

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected no migrations on re-apply, got %d", applied)
	}
}

func TestRunner_FreshDatabaseIsVersionZero(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testMigrations())

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 on fresh database, got %d", version)
	}
}

func TestRunner_FailedMigrationRollsBack(t *testing.T) {
	db := openTestDB(t)
	broken := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE profiles (user_id TEXT PRIMARY KEY);`),
		},
		"002_broken.sql": &fstest.MapFile{
			Data: []byte(`THIS IS NOT SQL;`),
		},
	}
	runner := NewRunner(db, broken)

	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("expected Apply to fail on broken migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied before the failure, got %d", applied)
	}

	version, verr := runner.CurrentVersion()
	if verr != nil {
		t.Fatalf("CurrentVersion failed: %v", verr)
	}
	if version != 1 {
		t.Errorf("version should stay at the last successful migration, got %d", version)
	}
}

func TestRunner_RejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testMigrations())
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Simulate a database touched by a newer build.
	if _, err := db.Exec(`DELETE FROM schema_version`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (99)`); err != nil {
		t.Fatal(err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected ValidateVersion to reject a newer schema")
	}
	if _, err := runner.Apply(nil); err == nil {
		t.Error("expected Apply to reject a newer schema")
	}
}

func TestReadMigrations_Validation(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name    string
		fs      fstest.MapFS
		wantErr string
	}{
		{
			name: "bad filename",
			fs: fstest.MapFS{
				"init.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
			},
			wantErr: "invalid migration filename",
		},
		{
			name: "non numeric version",
			fs: fstest.MapFS{
				"abc_init.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
			},
			wantErr: "invalid version number",
		},
		{
			name: "duplicate version",
			fs: fstest.MapFS{
				"001_a.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
				"001_b.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
			},
			wantErr: "duplicate migration version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(db, tt.fs)
			_, err := runner.ReadMigrations()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReadMigrations_SortedByVersion(t *testing.T) {
	db := openTestDB(t)
	fs := fstest.MapFS{
		"010_third.sql":  &fstest.MapFile{Data: []byte(`SELECT 1;`)},
		"002_second.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
		"001_first.sql":  &fstest.MapFile{Data: []byte(`SELECT 1;`)},
	}
	runner := NewRunner(db, fs)

	migrations, err := runner.ReadMigrations()
	if err != nil {
		t.Fatalf("ReadMigrations failed: %v", err)
	}
	want := []int{1, 2, 10}
	for i, m := range migrations {
		if m.Version != want[i] {
			t.Errorf("position %d: expected version %d, got %d", i, want[i], m.Version)
		}
	}
	if migrations[2].Name != "third" {
		t.Errorf("name not parsed: %q", migrations[2].Name)
	}
}
