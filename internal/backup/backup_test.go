package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "hrportal.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO settings VALUES ('timezone', 'Asia/Kolkata')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return dbPath
}

func fixedClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(time.Minute)
		return now
	}
}

func TestCreate(t *testing.T) {
	mgr := NewManager(setupTestDB(t))

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if filepath.Dir(path) != mgr.Dir() {
		t.Errorf("backup written to %s, want inside %s", path, mgr.Dir())
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open backup: %v", err)
	}
	defer db.Close()

	var tz string
	if err := db.QueryRow(`SELECT value FROM settings WHERE key = 'timezone'`).Scan(&tz); err != nil {
		t.Fatalf("failed to query backup: %v", err)
	}
	if tz != "Asia/Kolkata" {
		t.Errorf("timezone = %q, want Asia/Kolkata", tz)
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error for a missing database")
	}
}

func TestCreateSameSecond(t *testing.T) {
	mgr := NewManager(setupTestDB(t))
	at := time.Date(2026, 1, 7, 10, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return at }

	first, err := mgr.Create()
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if first == second {
		t.Fatalf("both snapshots written to %s", first)
	}

	snaps, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snaps) != 2 || snaps[0].Path != second {
		t.Errorf("List() = %+v, want %s first", snaps, second)
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	mgr := NewManager(setupTestDB(t))
	mgr.now = fixedClock(time.Date(2026, 1, 7, 10, 0, 0, 0, time.Local))

	var paths []string
	for i := 0; i < Keep+2; i++ {
		p, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		paths = append(paths, p)
	}

	snaps, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snaps) != Keep {
		t.Fatalf("expected %d snapshots after pruning, got %d", Keep, len(snaps))
	}
	if snaps[0].Path != paths[len(paths)-1] {
		t.Errorf("newest snapshot = %s, want %s", snaps[0].Path, paths[len(paths)-1])
	}
	if _, err := os.Stat(paths[0]); !os.IsNotExist(err) {
		t.Errorf("oldest snapshot %s was not pruned", paths[0])
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	mgr := NewManager(setupTestDB(t))
	if err := os.MkdirAll(mgr.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "hrportal-garbage.db", "other-20260107-100000.db"} {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	snaps, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected no snapshots, got %+v", snaps)
	}
}

func TestListWithoutDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "hrportal.db"))
	snaps, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if snaps != nil {
		t.Errorf("expected nil, got %+v", snaps)
	}
}
