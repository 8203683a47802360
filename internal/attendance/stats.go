package attendance

import (
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// MissedCheckOutLabel marks a past day with a check-in and no check-out
const MissedCheckOutLabel = "Missed Check-Out"

// Stats is the derived view of one day log
type Stats struct {
	Gross            string
	Effective        string
	GrossMinutes     int
	BreakMinutes     int
	EffectiveMinutes int
	Arrival          constants.ArrivalStatus
	ArrivalColor     string
	ScheduledHours   string
	Progress         float64 // 0..100 of a full day

	OffDay         bool // weekend, holiday, leave or never checked in
	Live           bool // today's open session measured against now
	MissedCheckOut bool
	HasDuration    bool
}

func offDay() Stats {
	return Stats{
		Gross:          constants.EmptyValue,
		Effective:      constants.EmptyValue,
		Arrival:        constants.EmptyValue,
		ScheduledHours: constants.EmptyValue,
		OffDay:         true,
	}
}

// Compute derives gross, break and effective time, arrival status and the
// progress ratio for a day log. now decides whether an open session is
// today's live session or a missed check-out on a past day.
func Compute(log models.DayLog, now time.Time, p Policy) Stats {
	if log.IsWeekend || log.IsHoliday || log.LeaveType != "" || !log.HasCheckIn() {
		return offDay()
	}
	checkIn, ok := utils.ParseClock(log.CheckIn)
	if !ok {
		return offDay()
	}

	day, err := utils.ParseDateInLocation(log.Date, now.Location())
	if err != nil {
		return offDay()
	}

	s := Stats{
		Gross:          constants.EmptyValue,
		Effective:      constants.EmptyValue,
		ScheduledHours: scheduledHours(day, p),
	}
	s.Arrival, s.ArrivalColor = p.Classify(checkIn)

	checkOut, ok := utils.ParseClock(log.CheckOut)
	if !ok {
		today := utils.StartOfDay(now)
		switch {
		case day.Equal(today):
			checkOut = utils.MinutesOfDay(now)
			s.Live = true
		case day.Before(today):
			s.MissedCheckOut = true
			return s
		default:
			return s
		}
	}

	gross := checkOut - checkIn
	if gross < 0 {
		gross += 24 * 60
	}
	brk := BreakMinutes(log)
	eff := gross - brk
	if eff < 0 {
		eff = 0
	}

	s.HasDuration = true
	s.GrossMinutes = gross
	s.BreakMinutes = brk
	s.EffectiveMinutes = eff
	s.Gross = utils.FormatHoursShort(gross)
	s.Effective = utils.FormatHours(eff)
	s.Progress = progress(eff, p.FullDayMinutes)
	return s
}

// BreakMinutes sums the gaps between consecutive sessions when the day has
// more than one, and otherwise trusts the server's break figure.
func BreakMinutes(log models.DayLog) int {
	if len(log.Logs) <= 1 {
		return log.BreakMinutes
	}
	total := 0
	for i := 1; i < len(log.Logs); i++ {
		prevOut, ok1 := utils.ParseClock(log.Logs[i-1].Out)
		nextIn, ok2 := utils.ParseClock(log.Logs[i].In)
		if !ok1 || !ok2 {
			continue
		}
		gap := nextIn - prevOut
		if gap < 0 {
			gap += 24 * 60
		}
		total += gap
	}
	return total
}

func progress(effective, fullDay int) float64 {
	if fullDay <= 0 {
		return 0
	}
	pct := float64(effective) / float64(fullDay) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func scheduledHours(day time.Time, p Policy) string {
	if utils.IsWeekend(day) {
		return constants.EmptyValue
	}
	return utils.FormatHours(p.FullDayMinutes)
}

// StatusLabel is the row label for a log: the missed check-out flag wins
// over the server's status.
func StatusLabel(log models.DayLog, s Stats) string {
	if s.MissedCheckOut {
		return MissedCheckOutLabel
	}
	if log.Status != "" {
		return log.Status
	}
	return constants.DayNotMarked
}

// Today turns the server's live status into a day log for date so it can
// go through Compute like any history row.
func Today(st models.AttendanceStatus, date string) models.DayLog {
	log := models.DayLog{
		Date:         date,
		CheckIn:      orEmpty(st.CheckIn),
		CheckOut:     orEmpty(st.CheckOut),
		BreakMinutes: st.BreakMinutes,
		Status:       constants.DayNotMarked,
	}
	if log.HasCheckIn() {
		log.Status = constants.DayPresent
	}
	if st.ClockedIn() {
		log.CheckOut = constants.EmptyValue
	}
	return log
}

func orEmpty(s string) string {
	if s == "" {
		return constants.EmptyValue
	}
	return s
}
