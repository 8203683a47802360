package leave

import (
	"fmt"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// Status colors for history rows
const (
	ColorApproved = "#16a34a"
	ColorRejected = "#dc2626"
	ColorPending  = "#d97706"
)

// HistoryRow is a leave request formatted for the history table
type HistoryRow struct {
	ID          int
	Code        string
	Type        string
	Dates       string // "Mon, 05-01-2026" or "Mon, 05-01-2026 to Wed, 07-01-2026"
	Sessions    string // "05 Jan (First Half) - 07 Jan (Full Day)"
	Days        string
	Reason      string
	Status      constants.RequestStatus
	StatusColor string
}

// StatusColor picks the badge color for a request status
func StatusColor(s constants.RequestStatus) string {
	switch s {
	case constants.StatusApproved:
		return ColorApproved
	case constants.StatusRejected:
		return ColorRejected
	default:
		return ColorPending
	}
}

func historyDate(s string) string {
	d, err := utils.ParseDate(s)
	if err != nil {
		return s
	}
	return d.Format(constants.HistoryDateFormat)
}

func shortDate(s string) string {
	d, err := utils.ParseDate(s)
	if err != nil {
		return s
	}
	return d.Format("02 Jan")
}

// HistoryRows formats leave history for display, preserving order
func HistoryRows(history []models.LeaveRequest) []HistoryRow {
	rows := make([]HistoryRow, 0, len(history))
	for _, r := range history {
		row := HistoryRow{
			ID:          r.ID,
			Code:        r.Type,
			Type:        Name(r.Type),
			Days:        FormatDays(r.Days),
			Reason:      r.Reason,
			Status:      r.Status,
			StatusColor: StatusColor(r.Status),
		}

		to := r.ToDate
		if to == "" {
			to = r.FromDate
		}
		if r.FromDate == to {
			row.Dates = historyDate(r.FromDate)
			row.Sessions = fmt.Sprintf("%s (%s)", shortDate(r.FromDate), NormalizeSession(r.FromSession))
		} else {
			row.Dates = historyDate(r.FromDate) + " to " + historyDate(to)
			row.Sessions = fmt.Sprintf("%s (%s) - %s (%s)",
				shortDate(r.FromDate), NormalizeSession(r.FromSession),
				shortDate(to), NormalizeSession(r.ToSession))
		}
		rows = append(rows, row)
	}
	return rows
}

// FilterStatus returns the requests with the given status
func FilterStatus(history []models.LeaveRequest, status constants.RequestStatus) []models.LeaveRequest {
	var out []models.LeaveRequest
	for _, r := range history {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}
