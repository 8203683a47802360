package attendance

import (
	"fmt"
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// Timing is the day card for one selected day of the week
type Timing struct {
	Day      string // "Monday"
	Date     string // "05 Jan"
	Range    string
	Duration string
	Break    string
	Progress float64
}

// ActiveTiming summarizes a day for the week strip. Days without a
// check-in show the scheduled shift.
func ActiveTiming(log models.DayLog, now time.Time, p Policy) Timing {
	day, err := utils.ParseDateInLocation(log.Date, now.Location())
	if err != nil {
		return Timing{}
	}
	t := Timing{
		Day:  day.Weekday().String(),
		Date: day.Format("02 Jan"),
	}

	if utils.IsWeekend(day) || log.Status == constants.DayHoliday || log.IsHoliday {
		t.Range = constants.DayWeeklyOff
		if log.Status == constants.DayHoliday || log.IsHoliday {
			t.Range = constants.DayHoliday
		}
		t.Duration = constants.EmptyValue
		t.Break = constants.EmptyValue
		return t
	}

	if !log.HasCheckIn() {
		t.Range = p.ShiftRange()
		t.Duration = utils.FormatHours(p.FullDayMinutes)
		t.Break = constants.DefaultBreakLabel
		return t
	}

	s := Compute(log, now, p)
	out := log.CheckOut
	if !log.HasCheckOut() {
		out = "??"
	}
	t.Range = log.CheckIn + " - " + out
	t.Duration = s.Effective
	t.Break = fmt.Sprintf("%d min", log.BreakMinutes)
	t.Progress = s.Progress
	return t
}

// SegmentKind distinguishes work from break on the day bar
type SegmentKind string

const (
	SegmentWork  SegmentKind = "work"
	SegmentBreak SegmentKind = "break"
)

// Segment is one proportional slice of the day bar
type Segment struct {
	Kind  SegmentKind
	Width float64 // percent of the span from first in to last out
}

// Segments splits a day into work and break slices proportional to the span
// from the first check-in to the last check-out (or now for an open session).
// Without session detail a single work slice carries the progress ratio.
func Segments(log models.DayLog, now time.Time, p Policy) []Segment {
	if len(log.Logs) == 0 {
		return []Segment{{Kind: SegmentWork, Width: Compute(log, now, p).Progress}}
	}

	start, ok := utils.ParseClock(log.Logs[0].In)
	if !ok {
		return nil
	}
	last := log.Logs[len(log.Logs)-1]
	end, ok := utils.ParseClock(last.Out)
	if !ok {
		end, ok = utils.ParseClock(log.CheckOut)
	}
	if !ok {
		end = utils.MinutesOfDay(now)
	}

	span := end - start
	if span <= 0 {
		span = 1
	}
	width := func(mins int) float64 { return float64(mins) / float64(span) * 100 }

	var segs []Segment
	for i, session := range log.Logs {
		in, inOK := utils.ParseClock(session.In)
		out, outOK := utils.ParseClock(session.Out)
		if !outOK {
			out = end
			if i < len(log.Logs)-1 {
				if next, ok := utils.ParseClock(log.Logs[i+1].In); ok {
					out = next
				}
			}
		}

		if i > 0 {
			prevOut, ok := utils.ParseClock(log.Logs[i-1].Out)
			if ok && inOK && in > prevOut {
				segs = append(segs, Segment{Kind: SegmentBreak, Width: width(in - prevOut)})
			}
		}
		if inOK && out > in {
			segs = append(segs, Segment{Kind: SegmentWork, Width: width(out - in)})
		}
	}
	return segs
}
