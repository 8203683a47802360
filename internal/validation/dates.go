package validation

import (
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// HolidaySet indexes holidays by date
func HolidaySet(holidays []models.Holiday) map[string]models.Holiday {
	set := make(map[string]models.Holiday, len(holidays))
	for _, h := range holidays {
		set[h.Date] = h
	}
	return set
}

// checkDays flags every Sunday and holiday between from and to inclusive.
// kind prefixes the message ("Leave", "WFH").
func checkDays(vr *ValidationResult, kind string, from, to time.Time, holidays []models.Holiday) {
	set := HolidaySet(holidays)
	for _, day := range utils.DateRange(from, to) {
		iso := utils.FormatDate(day)
		named := day.Format(constants.DisplayDateFormat)
		if day.Weekday() == time.Sunday {
			vr.add(ConflictSunday, "", iso,
				"%s requests are not allowed on Sundays. %s is a Sunday.", kind, named)
			continue
		}
		if h, ok := set[iso]; ok {
			name := h.Name
			if name == "" {
				name = constants.DayHoliday
			}
			vr.add(ConflictHoliday, "", iso,
				"%s requests are not allowed on holidays. %s is a holiday (%s).", kind, named, name)
		}
	}
}

// dateRange parses and orders a from/to pair, recording conflicts. ok is
// false when the range cannot be checked any further.
func dateRange(vr *ValidationResult, fromStr, toStr string) (from, to time.Time, ok bool) {
	from, err := utils.ParseDate(fromStr)
	if err != nil {
		vr.add(ConflictInvalidFormat, "fromDate", "", "Invalid From Date %q (want YYYY-MM-DD).", fromStr)
		return from, to, false
	}
	to, err = utils.ParseDate(toStr)
	if err != nil {
		vr.add(ConflictInvalidFormat, "toDate", "", "Invalid To Date %q (want YYYY-MM-DD).", toStr)
		return from, to, false
	}
	if to.Before(from) {
		vr.add(ConflictDateOrder, "toDate", "", "To Date cannot be earlier than From Date.")
		return from, to, false
	}
	return from, to, true
}
