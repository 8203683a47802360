package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/hrportal/internal/models"
)

// ErrNotFound is returned when a cached value is absent
var ErrNotFound = errors.New("not found")

// Provider is the local store behind settings, the session and the
// offline caches.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	SessionStore

	// Attendance history cache
	SaveHistory(employeeID string, logs []models.DayLog, fetchedAt time.Time) error
	GetHistory(employeeID string) ([]models.DayLog, time.Time, error)

	// Holiday cache
	SaveHolidays([]models.Holiday) error
	GetHolidays() ([]models.Holiday, error)

	// Utils
	GetConfigPath() string
}

// SessionStore is the key/value table behind the session object
type SessionStore interface {
	GetSessionValue(key string) (string, error)
	SetSessionValue(key, value string) error
	DeleteSessionValues(keys ...string) error
}
