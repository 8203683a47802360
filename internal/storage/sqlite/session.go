package sqlite

import (
	"database/sql"
	"errors"

	"github.com/julianstephens/hrportal/internal/storage"
)

func (s *Store) GetSessionValue(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM session WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	return value, err
}

func (s *Store) SetSessionValue(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO session (key, value) VALUES (?, ?)", key, value)
	return err
}

// DeleteSessionValues removes the given keys; missing keys are ignored
func (s *Store) DeleteSessionValues(keys ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, k := range keys {
		if _, err := tx.Exec("DELETE FROM session WHERE key = ?", k); err != nil {
			return err
		}
	}
	return tx.Commit()
}
