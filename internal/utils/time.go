package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) as midnight in loc.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ParseDate parses a date string (YYYY-MM-DD) in UTC.
func ParseDate(dateStr string) (time.Time, error) {
	return ParseDateInLocation(dateStr, time.UTC)
}

// FormatDate formats t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// SameDay reports whether two instants fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOf returns midnight of the Monday that starts t's week.
// Sunday belongs to the week that began six days earlier.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// IsWeekend reports whether t falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DateRange returns every date from start to end inclusive. It returns nil
// when end is before start.
func DateRange(start, end time.Time) []time.Time {
	start, end = StartOfDay(start), StartOfDay(end)
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ParseClock parses a 12-hour "hh:mm AM/PM" time into minutes after midnight.
// "12:xx AM" is 0:xx and "12:xx PM" is 12:xx. A value without a meridiem is
// read as 24-hour time. ok is false for "-", empty or malformed input.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == constants.EmptyValue {
		return 0, false
	}

	fields := strings.Fields(s)
	parts := strings.Split(fields[0], ":")
	if len(parts) < 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}

	if len(fields) > 1 {
		if hours < 1 || hours > 12 {
			return 0, false
		}
		if hours == 12 {
			hours = 0
		}
		switch strings.ToUpper(fields[1]) {
		case "AM":
		case "PM":
			hours += 12
		default:
			return 0, false
		}
	} else if hours < 0 || hours > 23 {
		return 0, false
	}

	return hours*60 + minutes, true
}

// FormatClock renders minutes after midnight as "hh:mm AM/PM"
func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format(constants.ClockFormat)
}

// ParseTimeToMinutes parses a 24-hour "HH:MM" string into minutes after midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesOfDay returns t's minutes after midnight
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatHours renders a minute count as "{h}h {mm}m" with zero-padded minutes.
func FormatHours(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// FormatHoursShort renders a minute count as "{h}h {m}m" without padding.
func FormatHoursShort(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// timestampLayouts are the server timestamp shapes, zoned first
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	constants.DateFormat,
}

// ParseTimestamp parses a server timestamp. Values without a zone are UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
