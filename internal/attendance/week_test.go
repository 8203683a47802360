package attendance

import (
	"testing"
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
)

func TestMergeWeek(t *testing.T) {
	rows := []models.DayLog{
		dayLog("2026-01-05", "09:20 AM", "06:30 PM", 30),
		dayLog("2026-01-07", "09:45 AM", "-", 0),
		dayLog("2025-12-31", "09:00 AM", "06:00 PM", 0),
	}

	week := MergeWeek(rows, testNow)
	if len(week) != 7 {
		t.Fatalf("MergeWeek() returned %d rows, want 7", len(week))
	}
	if week[0].Date != "2026-01-05" || week[6].Date != "2026-01-11" {
		t.Errorf("week spans %s..%s, want 2026-01-05..2026-01-11", week[0].Date, week[6].Date)
	}
	if week[0].CheckIn != "09:20 AM" {
		t.Errorf("Monday should use the server row, got %+v", week[0])
	}
	if week[1].Status != constants.DayNotMarked || week[1].CheckIn != "-" {
		t.Errorf("Tuesday should be a placeholder, got %+v", week[1])
	}
	if !week[5].IsWeekend || !week[6].IsWeekend || week[4].IsWeekend {
		t.Error("placeholder weekend flags are wrong")
	}
}

func TestFilterRangeLast30Days(t *testing.T) {
	rows := []models.DayLog{dayLog("2026-01-06", "09:30 AM", "06:30 PM", 0)}

	got := FilterRange(rows, Last30Days(), testNow)
	if len(got) != 30 {
		t.Fatalf("got %d rows, want 30", len(got))
	}
	if got[0].Date != "2026-01-07" || got[29].Date != "2025-12-09" {
		t.Errorf("range = %s..%s", got[0].Date, got[29].Date)
	}
	if got[1].CheckIn != "09:30 AM" {
		t.Errorf("server row not merged: %+v", got[1])
	}
}

func TestFilterRangeMonth(t *testing.T) {
	tests := []struct {
		name      string
		month     time.Month
		wantLen   int
		wantFirst string
	}{
		{"current month stops at today", time.January, 7, "2026-01-07"},
		{"future month is empty", time.March, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRange(nil, ForMonth(tt.month), testNow)
			if len(got) != tt.wantLen {
				t.Fatalf("got %d rows, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].Date != tt.wantFirst {
				t.Errorf("first row = %s, want %s", got[0].Date, tt.wantFirst)
			}
		})
	}

	// A completed month: June 2026 seen from December
	dec := time.Date(2026, 12, 15, 9, 0, 0, 0, time.UTC)
	june := FilterRange(nil, ForMonth(time.June), dec)
	if len(june) != 30 || june[0].Date != "2026-06-30" || june[29].Date != "2026-06-01" {
		t.Errorf("june window wrong: %d rows", len(june))
	}
}

func TestParseMonth(t *testing.T) {
	for _, in := range []string{"jan", "JAN", "January", "1"} {
		m, err := ParseMonth(in)
		if err != nil || m != time.January {
			t.Errorf("ParseMonth(%q) = %v, %v", in, m, err)
		}
	}
	if _, err := ParseMonth("smarch"); err == nil {
		t.Error("expected error")
	}
}

func TestWeeklySummary(t *testing.T) {
	rows := []models.DayLog{
		// 8h effective, on time
		dayLog("2026-01-05", "09:20 AM", "06:20 PM", 60),
		// 9h effective, late
		dayLog("2026-01-06", "09:45 AM", "06:45 PM", 0),
		// previous week
		dayLog("2026-01-02", "09:00 AM", "06:00 PM", 0),
		// not checked in yet
		dayLog("2026-01-07", "-", "-", 0),
	}

	s := WeeklySummary(rows, testNow, DefaultPolicy())
	if s.PresentDays != 2 {
		t.Fatalf("PresentDays = %d, want 2", s.PresentDays)
	}
	if s.AvgEffective != "8h 30m" {
		t.Errorf("AvgEffective = %q, want %q", s.AvgEffective, "8h 30m")
	}
	if s.OnTime() != "50%" {
		t.Errorf("OnTime() = %q, want 50%%", s.OnTime())
	}

	empty := WeeklySummary(nil, testNow, DefaultPolicy())
	if empty.AvgEffective != "0h 00m" || empty.OnTime() != "0%" {
		t.Errorf("empty summary = %+v", empty)
	}
}
