package attendance

import (
	"fmt"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// Policy holds the shift rules every attendance view classifies against.
// One Policy is shared by all screens so thresholds cannot drift apart.
type Policy struct {
	ShiftStartMin    int // minutes after midnight
	ShiftEndMin      int
	LateGraceMinutes int // arrivals up to this many minutes after shift start are on time
	EarlyMinutes     int // arrivals more than this many minutes before shift start are early
	FullDayMinutes   int
}

// DefaultPolicy returns the 09:30-18:30, nine-hour shift
func DefaultPolicy() Policy {
	start, _ := utils.ParseTimeToMinutes(constants.DefaultShiftStart)
	end, _ := utils.ParseTimeToMinutes(constants.DefaultShiftEnd)
	return Policy{
		ShiftStartMin:    start,
		ShiftEndMin:      end,
		LateGraceMinutes: constants.DefaultLateGraceMin,
		EarlyMinutes:     constants.DefaultEarlyThresholdMin,
		FullDayMinutes:   constants.DefaultFullDayMin,
	}
}

// PolicyFromSettings builds a Policy from persisted settings, using
// defaults for zero values.
func PolicyFromSettings(s models.Settings) (Policy, error) {
	p := DefaultPolicy()
	if s.ShiftStart != "" {
		m, err := utils.ParseTimeToMinutes(s.ShiftStart)
		if err != nil {
			return Policy{}, fmt.Errorf("invalid shift start %q: %w", s.ShiftStart, err)
		}
		p.ShiftStartMin = m
	}
	if s.ShiftEnd != "" {
		m, err := utils.ParseTimeToMinutes(s.ShiftEnd)
		if err != nil {
			return Policy{}, fmt.Errorf("invalid shift end %q: %w", s.ShiftEnd, err)
		}
		p.ShiftEndMin = m
	}
	if s.LateGraceMin < 0 || s.EarlyThresholdMin < 0 {
		return Policy{}, fmt.Errorf("grace and early thresholds must not be negative")
	}
	p.LateGraceMinutes = s.LateGraceMin
	if s.EarlyThresholdMin > 0 {
		p.EarlyMinutes = s.EarlyThresholdMin
	}
	if s.FullDayMin > 0 {
		p.FullDayMinutes = s.FullDayMin
	}
	return p, nil
}

// ShiftRange renders the shift as "09:30 AM - 06:30 PM"
func (p Policy) ShiftRange() string {
	return utils.FormatClock(p.ShiftStartMin) + " - " + utils.FormatClock(p.ShiftEndMin)
}

// Classify returns the arrival status and its color for a check-in time
func (p Policy) Classify(checkInMin int) (constants.ArrivalStatus, string) {
	diff := checkInMin - p.ShiftStartMin
	switch {
	case diff > p.LateGraceMinutes:
		return constants.ArrivalLate, constants.ColorLate
	case diff < -p.EarlyMinutes:
		return constants.ArrivalEarly, constants.ColorEarly
	default:
		return constants.ArrivalOnTime, constants.ColorOnTime
	}
}
