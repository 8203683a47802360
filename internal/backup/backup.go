package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/logger"
)

const (
	// Keep is how many snapshots survive a prune
	Keep = 5
	// DirName is the snapshot directory inside the data directory
	DirName = "backups"

	stampFormat = "20060102-150405"
)

// Snapshot is one saved copy of the local database
type Snapshot struct {
	Path    string
	TakenAt time.Time
	Size    int64
}

// Manager snapshots the local database before destructive resets. The
// database only holds settings, the session and offline caches, so a
// handful of snapshots is enough.
type Manager struct {
	dbPath string
	dir    string
	now    func() time.Time
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath: dbPath,
		dir:    filepath.Join(filepath.Dir(dbPath), DirName),
		now:    time.Now,
	}
}

// Dir returns the snapshot directory
func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) name(t time.Time) string {
	return constants.AppName + "-" + t.Format(stampFormat) + ".db"
}

// Create writes a consistent copy of the database with VACUUM INTO and
// prunes old snapshots. The database must exist.
func (m *Manager) Create() (string, error) {
	if _, err := os.Stat(m.dbPath); err != nil {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	taken := m.now()
	dest := filepath.Join(m.dir, m.name(taken))
	for i := 1; fileExists(dest); i++ {
		dest = filepath.Join(m.dir, fmt.Sprintf("%s-%d.db", strings.TrimSuffix(m.name(taken), ".db"), i))
	}

	db, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}

	if err := m.Prune(Keep); err != nil {
		logger.Warn("failed to prune old backups", "err", err)
	}
	logger.Info("database backed up", "path", dest)
	return dest, nil
}

// List returns snapshots newest first. Files that do not look like
// snapshots are ignored.
func (m *Manager) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	prefix := constants.AppName + "-"
	var out []Snapshot
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".db") {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".db")
		if len(stamp) > len(stampFormat) {
			stamp = stamp[:len(stampFormat)]
		}
		taken, err := time.ParseInLocation(stampFormat, stamp, time.Local)
		if err != nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Snapshot{Path: filepath.Join(m.dir, name), TakenAt: taken, Size: info.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TakenAt.Equal(out[j].TakenAt) {
			// same second: the counter suffix marks the later copy
			if len(out[i].Path) != len(out[j].Path) {
				return len(out[i].Path) > len(out[j].Path)
			}
			return out[i].Path > out[j].Path
		}
		return out[i].TakenAt.After(out[j].TakenAt)
	})
	return out, nil
}

// Prune deletes all but the newest keep snapshots
func (m *Manager) Prune(keep int) error {
	snaps, err := m.List()
	if err != nil {
		return err
	}
	for i := keep; i < len(snaps); i++ {
		if err := os.Remove(snaps[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", snaps[i].Path, err)
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
