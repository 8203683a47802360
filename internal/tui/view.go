package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/leave"
	"github.com/julianstephens/hrportal/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	if m.loading[m.state] {
		content = m.spinner.View() + " Loading..."
	} else {
		switch m.state {
		case constants.StateDashboard:
			content = m.viewDashboard()
		case constants.StateMe:
			content = m.week.View()
		case constants.StateLeave:
			content = m.viewLeave()
		case constants.StateFeed:
			content = m.feedList.View()
		case constants.StateRequests:
			content = m.viewRequests()
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var out []string
	for _, t := range tabs {
		title := t.title
		if t.state == constants.StateRequests {
			if n := m.badge.Count(); n > 0 {
				title = fmt.Sprintf("%s (%d)", title, n)
			}
		}
		if m.state == t.state {
			out = append(out, activeTabStyle.Render(title))
		} else {
			out = append(out, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m Model) viewStatus() string {
	switch {
	case m.err != "":
		return dangerStyle.Render(m.err)
	case m.notice != "":
		return mutedStyle.Render(m.notice)
	}
	return ""
}

func (m Model) viewDashboard() string {
	today := attendance.Today(m.status, utils.FormatDate(m.now))
	stats := attendance.Compute(today, m.now, m.deps.Policy)

	state := "Clocked out"
	if m.status.ClockedIn() {
		state = successStyle.Render("Clocked in")
	}

	if today.HasCheckIn() {
		state += " · first in " + today.CheckIn
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Hi %s · %s", m.user.DisplayName(), m.now.Format("Mon 02 Jan 15:04:05"))),
		"",
		state,
		fmt.Sprintf("Shift     %s", m.deps.Policy.ShiftRange()),
		fmt.Sprintf("Effective %s   Gross %s   Break %s", stats.Effective, stats.Gross, utils.FormatHours(stats.BreakMinutes)),
	}
	if stats.Arrival != constants.EmptyValue {
		lines = append(lines, "Arrival   "+colored(string(stats.Arrival), stats.ArrivalColor))
	}
	lines = append(lines, m.progress.ViewAs(stats.Progress/100))

	if p := m.personal; p != nil {
		lines = append(lines, "",
			fmt.Sprintf("Avg working hours %s", p.AvgWorkingHours),
			fmt.Sprintf("This week %s · last week %s · %s",
				utils.FormatHours(p.ThisWeekMins), utils.FormatHours(p.LastWeekMins), p.DiffLabel),
		)
	}
	if len(m.balances) > 0 {
		lines = append(lines, "", titleStyle.Render("Leave"))
		for _, it := range m.balances {
			pct := 0.0
			if it.Total > 0 {
				pct = it.Available / it.Total * 100
			}
			lines = append(lines, fmt.Sprintf("%-18s %s %s/%s", it.Name, bar(pct, 12),
				leave.FormatDays(it.Available), leave.FormatDays(it.Total)))
		}
	}
	if len(m.upcoming) > 0 {
		lines = append(lines, "", titleStyle.Render("Upcoming holidays"))
		for _, h := range m.upcoming {
			lines = append(lines, fmt.Sprintf("%s  %s", h.Date, h.Name))
		}
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewLeave() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Balances") + "\n")
	for _, it := range m.balances {
		fmt.Fprintf(&b, "%-22s %5s available", it.Name, leave.FormatDays(it.Available))
		if it.Pending > 0 {
			fmt.Fprintf(&b, " · %s pending", leave.FormatDays(it.Pending))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total available: %s\n\n", leave.FormatDays(leave.TotalAvailable(m.balances)))
	b.WriteString(m.leaveTbl.View())
	return b.String()
}

func (m Model) viewRequests() string {
	title := "My WFH requests"
	if m.user.CanApprove() {
		title = fmt.Sprintf("Waiting for you (%d)", len(m.queue.Get()))
	}
	head := titleStyle.Render(title)
	if n := m.badge.Count(); n > 0 {
		head += "\n" + mutedStyle.Render(fmt.Sprintf("%d regularization request(s) pending, see 'hrportal regularization list'", n))
	}
	if len(m.queueTbl.Rows()) == 0 {
		return head + "\n\nNothing here."
	}
	return head + "\n\n" + m.queueTbl.View()
}

// bar draws a fixed-width meter for pct in [0,100]
func bar(pct float64, width int) string {
	filled := max(0, min(width, int(pct/100*float64(width))))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
