package week

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
)

var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(16)

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Width(24)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	missedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	durationStyle = lipgloss.NewStyle().Width(9)
)

func meter(pct float64, width int) string {
	filled := max(0, min(width, int(pct/100*float64(width))))
	return strings.Repeat("▮", filled) + strings.Repeat("▯", width-filled)
}

// Model shows the current week's attendance, Monday first
type Model struct {
	viewport viewport.Model
	Rows     []models.DayLog
	Summary  attendance.Summary
	now      time.Time
	policy   attendance.Policy
	loaded   bool
}

func New(width, height int, p attendance.Policy) Model {
	return Model{viewport: viewport.New(width, height), policy: p}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return "Loading attendance..."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetHistory merges the history into this week and rerenders
func (m *Model) SetHistory(rows []models.DayLog, now time.Time) {
	m.now = now
	m.Rows = attendance.MergeWeek(rows, now)
	m.Summary = attendance.WeeklySummary(rows, now, m.policy)
	m.loaded = true
	m.Render()
}

func (m *Model) Render() {
	if !m.loaded {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Avg effective %s · on time %s · %d days present\n\n",
		m.Summary.AvgEffective, m.Summary.OnTime(), m.Summary.PresentDays)
	for _, day := range m.Rows {
		t := attendance.ActiveTiming(day, m.now, m.policy)
		s := attendance.Compute(day, m.now, m.policy)
		arrival := ""
		if s.Arrival != constants.EmptyValue {
			arrival = lipgloss.NewStyle().Foreground(lipgloss.Color(s.ArrivalColor)).Render(string(s.Arrival))
		}
		label := attendance.StatusLabel(day, s)
		if s.MissedCheckOut {
			label = missedStyle.Render(label)
		} else {
			label = statusStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s %s %s %s %s %s\n",
			dayStyle.Render(t.Day+" "+t.Date),
			rangeStyle.Render(t.Range),
			meter(s.Progress, 10),
			durationStyle.Render(t.Duration),
			arrival,
			label,
		)
	}
	m.viewport.SetContent(b.String())
}
