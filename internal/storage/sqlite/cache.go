package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/storage"
)

// SaveHistory replaces the cached day logs for an employee
func (s *Store) SaveHistory(employeeID string, logs []models.DayLog, fetchedAt time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM history_cache WHERE employee_id = ?", employeeID); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO history_cache (employee_id, date, payload, fetched_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	stamp := fetchedAt.UTC().Format(time.RFC3339)
	for _, log := range logs {
		payload, err := json.Marshal(log)
		if err != nil {
			return fmt.Errorf("failed to encode day log %s: %w", log.Date, err)
		}
		if _, err := stmt.Exec(employeeID, log.Date, string(payload), stamp); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetHistory returns the cached day logs, newest first, and when they
// were fetched. ErrNotFound means nothing is cached.
func (s *Store) GetHistory(employeeID string) ([]models.DayLog, time.Time, error) {
	rows, err := s.db.Query(
		"SELECT payload, fetched_at FROM history_cache WHERE employee_id = ? ORDER BY date DESC",
		employeeID,
	)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	var (
		logs      []models.DayLog
		fetchedAt time.Time
	)
	for rows.Next() {
		var payload, stamp string
		if err := rows.Scan(&payload, &stamp); err != nil {
			return nil, time.Time{}, err
		}
		var log models.DayLog
		if err := json.Unmarshal([]byte(payload), &log); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to decode cached day log: %w", err)
		}
		logs = append(logs, log)
		if fetchedAt.IsZero() {
			fetchedAt, _ = time.Parse(time.RFC3339, stamp)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}
	if len(logs) == 0 {
		return nil, time.Time{}, storage.ErrNotFound
	}
	return logs, fetchedAt, nil
}

// SaveHolidays replaces the holiday cache
func (s *Store) SaveHolidays(holidays []models.Holiday) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM holiday_cache"); err != nil {
		return err
	}
	for _, h := range holidays {
		if _, err := tx.Exec("INSERT OR REPLACE INTO holiday_cache (date, name, type) VALUES (?, ?, ?)", h.Date, h.Name, h.Type); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) GetHolidays() ([]models.Holiday, error) {
	rows, err := s.db.Query("SELECT date, name, type FROM holiday_cache ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Holiday
	for rows.Next() {
		var h models.Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.Type); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
