package sqlite

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
)

// DefaultSettings are written by Init when a key is missing
func DefaultSettings() models.Settings {
	return models.Settings{
		ShiftStart:            constants.DefaultShiftStart,
		ShiftEnd:              constants.DefaultShiftEnd,
		LateGraceMin:          constants.DefaultLateGraceMin,
		EarlyThresholdMin:     constants.DefaultEarlyThresholdMin,
		FullDayMin:            constants.DefaultFullDayMin,
		Timezone:              constants.DefaultTimezone,
		SessionBackend:        constants.DefaultSessionBackend,
		BalanceMode:           constants.DefaultBalanceMode,
		PollRequestsSec:       constants.DefaultPollRequestsSec,
		PollRegularizationSec: constants.DefaultPollRegularizationSec,
		PollDashboardSec:      constants.DefaultPollDashboardSec,
	}
}

func settingsMap(s models.Settings) map[string]string {
	return map[string]string{
		constants.SettingShiftStart:            s.ShiftStart,
		constants.SettingShiftEnd:              s.ShiftEnd,
		constants.SettingLateGraceMin:          strconv.Itoa(s.LateGraceMin),
		constants.SettingEarlyThresholdMin:     strconv.Itoa(s.EarlyThresholdMin),
		constants.SettingFullDayMin:            strconv.Itoa(s.FullDayMin),
		constants.SettingTimezone:              s.Timezone,
		constants.SettingSessionBackend:        s.SessionBackend,
		constants.SettingBalanceMode:           s.BalanceMode,
		constants.SettingPollRequestsSec:       strconv.Itoa(s.PollRequestsSec),
		constants.SettingPollRegularizationSec: strconv.Itoa(s.PollRegularizationSec),
		constants.SettingPollDashboardSec:      strconv.Itoa(s.PollDashboardSec),
	}
}

// seedSettings fills in any missing key without touching saved values
func (s *Store) seedSettings() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range settingsMap(DefaultSettings()) {
		if _, err := tx.Exec("INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := DefaultSettings()
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		if err := applySetting(&settings, key, value); err != nil {
			return models.Settings{}, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}
	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}
	return settings, nil
}

func applySetting(s *models.Settings, key, value string) error {
	ints := map[string]*int{
		constants.SettingLateGraceMin:          &s.LateGraceMin,
		constants.SettingEarlyThresholdMin:     &s.EarlyThresholdMin,
		constants.SettingFullDayMin:            &s.FullDayMin,
		constants.SettingPollRequestsSec:       &s.PollRequestsSec,
		constants.SettingPollRegularizationSec: &s.PollRegularizationSec,
		constants.SettingPollDashboardSec:      &s.PollDashboardSec,
	}
	if p, ok := ints[key]; ok {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}
		*p = n
		return nil
	}

	switch key {
	case constants.SettingShiftStart:
		s.ShiftStart = value
	case constants.SettingShiftEnd:
		s.ShiftEnd = value
	case constants.SettingTimezone:
		s.Timezone = value
	case constants.SettingSessionBackend:
		s.SessionBackend = value
	case constants.SettingBalanceMode:
		s.BalanceMode = value
	}
	return nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range settingsMap(settings) {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return tx.Commit()
}
