package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/leave"
	"github.com/julianstephens/hrportal/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// Table renders rows under headers with a rounded border
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// Colored paints s with a hex color
func Colored(s, hex string) string {
	if hex == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

// StatusBadge colors a request status
func StatusBadge(status constants.RequestStatus) string {
	return Colored(string(status), leave.StatusColor(status))
}

// ArrivalBadge colors an arrival status
func ArrivalBadge(status constants.ArrivalStatus) string {
	switch status {
	case constants.ArrivalOnTime:
		return Colored(string(status), constants.ColorOnTime)
	case constants.ArrivalLate:
		return Colored(string(status), constants.ColorLate)
	case constants.ArrivalEarly:
		return Colored(string(status), constants.ColorEarly)
	}
	return string(status)
}

// Bar draws a fixed-width progress bar for pct in [0,100]
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// MessageOr returns the server's acknowledgement text, or fallback when
// it sent none
func MessageOr(resp *models.MessageResponse, fallback string) string {
	if resp != nil && resp.Message != "" {
		return resp.Message
	}
	return fallback
}
