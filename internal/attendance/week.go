package attendance

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// FilterKind selects which window of history a log view shows
type FilterKind int

const (
	FilterLast30Days FilterKind = iota
	FilterMonth
)

// Filter is a history window. Month is only read for FilterMonth.
type Filter struct {
	Kind  FilterKind
	Month time.Month
}

// Last30Days is the default history window
func Last30Days() Filter { return Filter{Kind: FilterLast30Days} }

// ForMonth returns a window covering one month of the current year
func ForMonth(m time.Month) Filter { return Filter{Kind: FilterMonth, Month: m} }

// ParseMonth accepts "jan", "January" or "1"
func ParseMonth(s string) (time.Month, error) {
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) || s == fmt.Sprint(int(m)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid month %q", s)
}

// Placeholder is the row shown for a day the server has no record of
func Placeholder(day time.Time) models.DayLog {
	log := models.DayLog{
		Date:      utils.FormatDate(day),
		Status:    constants.DayNotMarked,
		CheckIn:   constants.EmptyValue,
		CheckOut:  constants.EmptyValue,
		IsWeekend: utils.IsWeekend(day),
	}
	if log.IsWeekend {
		log.Status = constants.DayWeeklyOff
	}
	return log
}

func index(rows []models.DayLog) map[string]models.DayLog {
	byDate := make(map[string]models.DayLog, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r
	}
	return byDate
}

func fill(days []time.Time, byDate map[string]models.DayLog) []models.DayLog {
	out := make([]models.DayLog, 0, len(days))
	for _, d := range days {
		if r, ok := byDate[utils.FormatDate(d)]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, Placeholder(d))
	}
	return out
}

// MergeWeek returns the seven days of today's week, Monday first, using
// server rows where present and placeholders elsewhere.
func MergeWeek(rows []models.DayLog, today time.Time) []models.DayLog {
	monday := utils.MondayOf(today)
	return fill(utils.DateRange(monday, monday.AddDate(0, 0, 6)), index(rows))
}

// FilterRange returns the rows for a history window, newest first, with
// placeholders for unrecorded days. A month window stops at today and a
// month later in the year than today yields no rows.
func FilterRange(rows []models.DayLog, f Filter, today time.Time) []models.DayLog {
	today = utils.StartOfDay(today)

	var days []time.Time
	switch f.Kind {
	case FilterMonth:
		first := time.Date(today.Year(), f.Month, 1, 0, 0, 0, 0, today.Location())
		if first.After(today) {
			return nil
		}
		last := first.AddDate(0, 1, -1)
		if last.After(today) {
			last = today
		}
		days = utils.DateRange(first, last)
	default:
		days = utils.DateRange(today.AddDate(0, 0, -29), today)
	}

	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return fill(days, index(rows))
}

// Summary is the current-week rollup shown on the personal stats card
type Summary struct {
	PresentDays      int
	OnTimeDays       int
	AvgMinutes       int
	AvgEffective     string // "{h}h {mm}m"
	OnTimePercentage int
}

// OnTime renders the on-time share as "NN%"
func (s Summary) OnTime() string {
	return fmt.Sprintf("%d%%", s.OnTimePercentage)
}

// WeeklySummary averages effective time and the on-time share over the
// days since Monday that have a measurable duration.
func WeeklySummary(rows []models.DayLog, now time.Time, p Policy) Summary {
	return Summarize(rows, utils.MondayOf(now), now, p)
}

// Summarize is WeeklySummary over any window starting at from
func Summarize(rows []models.DayLog, from, now time.Time, p Policy) Summary {
	from = utils.StartOfDay(from)
	sum := Summary{AvgEffective: utils.FormatHours(0)}

	total := 0
	for _, r := range rows {
		day, err := utils.ParseDateInLocation(r.Date, now.Location())
		if err != nil || day.Before(from) || day.After(now) {
			continue
		}
		s := Compute(r, now, p)
		if !s.HasDuration {
			continue
		}
		sum.PresentDays++
		total += s.EffectiveMinutes
		if s.Arrival == constants.ArrivalOnTime {
			sum.OnTimeDays++
		}
	}

	if sum.PresentDays == 0 {
		return sum
	}
	sum.AvgMinutes = total / sum.PresentDays
	sum.AvgEffective = utils.FormatHours(sum.AvgMinutes)
	sum.OnTimePercentage = int(math.Round(float64(sum.OnTimeDays) / float64(sum.PresentDays) * 100))
	return sum
}
