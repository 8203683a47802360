package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/storage"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "hrportal.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitSeedsDefaults(t *testing.T) {
	store := setupStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("GetSettings() = %+v, want defaults", settings)
	}
	if settings.ShiftStart != "09:30" || settings.PollRequestsSec != 5 {
		t.Errorf("unexpected defaults: %+v", settings)
	}
}

func TestInitKeepsSavedSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hrportal.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	s := DefaultSettings()
	s.ShiftStart = "10:00"
	s.BalanceMode = constants.BalanceModeGross
	if err := store.SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	store.Close()

	again := NewStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init() failed: %v", err)
	}
	defer again.Close()
	got, err := again.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.ShiftStart != "10:00" || got.BalanceMode != constants.BalanceModeGross {
		t.Errorf("re-init overwrote settings: %+v", got)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}

func TestLoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hrportal.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	store.Close()

	loaded := NewStore(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer loaded.Close()
	if _, err := loaded.GetSettings(); err != nil {
		t.Errorf("GetSettings() after Load failed: %v", err)
	}
}

func TestCloseTwice(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "hrportal.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("first Close() = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
	if store.GetDB() != nil {
		t.Error("GetDB() should be nil after Close")
	}
}

func TestSessionValues(t *testing.T) {
	store := setupStore(t)

	if _, err := store.GetSessionValue(constants.SessionKeyUser); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetSessionValue() on empty table error = %v", err)
	}

	if err := store.SetSessionValue(constants.SessionKeyLastRoute, "/feed"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetSessionValue(constants.SessionKeyLastRoute, "/leave"); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetSessionValue(constants.SessionKeyLastRoute)
	if err != nil || got != "/leave" {
		t.Errorf("GetSessionValue() = %q, %v", got, err)
	}

	if err := store.DeleteSessionValues(constants.SessionKeyLastRoute, "never-set"); err != nil {
		t.Fatalf("DeleteSessionValues() failed: %v", err)
	}
	if _, err := store.GetSessionValue(constants.SessionKeyLastRoute); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("key survived delete: %v", err)
	}
}

func TestHistoryCache(t *testing.T) {
	store := setupStore(t)

	if _, _, err := store.GetHistory("E1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("empty cache error = %v", err)
	}

	fetched := time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)
	logs := []models.DayLog{
		{Date: "2026-01-05", Status: constants.DayPresent, CheckIn: "09:30 AM", CheckOut: "06:30 PM"},
		{Date: "2026-01-06", Status: constants.DayPresent, CheckIn: "09:45 AM", CheckOut: "-",
			Logs: []models.SessionPair{{In: "09:45 AM"}}},
	}
	if err := store.SaveHistory("E1", logs, fetched); err != nil {
		t.Fatalf("SaveHistory() failed: %v", err)
	}
	if err := store.SaveHistory("E2", logs[:1], fetched); err != nil {
		t.Fatal(err)
	}

	got, at, err := store.GetHistory("E1")
	if err != nil {
		t.Fatalf("GetHistory() failed: %v", err)
	}
	if len(got) != 2 || got[0].Date != "2026-01-06" || len(got[0].Logs) != 1 {
		t.Errorf("GetHistory() = %+v", got)
	}
	if !at.Equal(fetched) {
		t.Errorf("fetchedAt = %v, want %v", at, fetched)
	}

	// A refresh replaces, not appends
	if err := store.SaveHistory("E1", logs[:1], fetched.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	got, _, _ = store.GetHistory("E1")
	if len(got) != 1 {
		t.Errorf("after refresh %d rows, want 1", len(got))
	}
}

func TestHolidayCache(t *testing.T) {
	store := setupStore(t)

	holidays := []models.Holiday{
		{Date: "2026-01-26", Name: "Republic Day", Type: "National"},
		{Date: "2026-01-14", Name: "Pongal"},
	}
	if err := store.SaveHolidays(holidays); err != nil {
		t.Fatalf("SaveHolidays() failed: %v", err)
	}
	got, err := store.GetHolidays()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "Pongal" || got[1].Type != "National" {
		t.Errorf("GetHolidays() = %+v", got)
	}
}
