package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/hrportal/internal/migration"
	"github.com/julianstephens/hrportal/internal/storage"
	"github.com/julianstephens/hrportal/migrations"
)

var _ storage.Provider = (*Store)(nil)

// Store is the SQLite implementation of storage.Provider
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init creates the database if needed, migrates it and seeds default
// settings. It is safe to run on an existing database.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	if _, err := migration.NewRunner(s.db, sub).Apply(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return s.seedSettings()
}

// Load opens an initialized database and checks its schema version
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'hrportal init' first")
	}
	if err := s.open(); err != nil {
		return err
	}

	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, sub).Validate()
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; the TUI polls from several goroutines.
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

// Close releases the connection. Closing twice is a no-op.
func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying connection, nil before Init or Load
func (s *Store) GetDB() *sql.DB {
	return s.db
}
