package leave

import (
	"strconv"
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/utils"
)

// NormalizeSession maps legacy "Session 1"/"Session 2" labels and empty
// values onto the three session names.
func NormalizeSession(s string) string {
	switch s {
	case "Session 1", constants.SessionFirstHalf:
		return constants.SessionFirstHalf
	case "Session 2", constants.SessionSecondHalf:
		return constants.SessionSecondHalf
	default:
		return constants.SessionFullDay
	}
}

// RequestedDays counts the days a leave request consumes. A single day with
// a half-day session is 0.5; a multi-day request loses half a day for each
// end that is not a full day. It returns 0 when to is before from.
func RequestedDays(from, to time.Time, fromSession, toSession string) float64 {
	from, to = utils.StartOfDay(from), utils.StartOfDay(to)
	if to.Before(from) {
		return 0
	}
	days := float64(len(utils.DateRange(from, to)))

	fromSession, toSession = NormalizeSession(fromSession), NormalizeSession(toSession)
	if days == 1 {
		if fromSession != constants.SessionFullDay {
			return 0.5
		}
		return 1
	}
	if fromSession != constants.SessionFullDay {
		days -= 0.5
	}
	if toSession != constants.SessionFullDay {
		days -= 0.5
	}
	return days
}

// FormatDays renders a day count without trailing zeros ("1", "2.5")
func FormatDays(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
