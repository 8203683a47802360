package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/errors"
	"github.com/julianstephens/hrportal/internal/feed"
	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(40, max(10, msg.Width-20))
		body := max(3, msg.Height-6)
		m.feedList.SetSize(msg.Width-4, body)
		m.week.SetSize(msg.Width-4, body)
		m.leaveTbl.SetHeight(max(3, body-8))
		m.queueTbl.SetHeight(max(3, body-2))
		return m, nil

	case tickMsg:
		m.now = m.deps.Clock.Now().In(m.deps.Location)
		m.syncFeed()
		m.syncQueue()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pollMsg:
		if msg.seq != m.polls.seq[msg.kind] {
			return m, nil
		}
		return m, m.poll(msg.kind)

	case resultMsg:
		if !m.polls.settle(msg.kind, msg.seq) {
			logger.Debug("dropped stale poll result", "kind", msg.kind)
			return m, nil
		}
		m.apply(msg.msg)
		return m, m.schedule(msg.kind)

	case clockMsg:
		m.busy = false
		if msg.err != nil {
			m.err = errors.Message(msg.err)
			return m, nil
		}
		verb := "in"
		if msg.result.Type == constants.ClockOut {
			verb = "out"
		}
		m.err = ""
		m.notice = fmt.Sprintf("Clocked %s at %s (%s)", verb, m.now.Format(constants.ClockFormat), msg.result.Location)
		m.status = m.deps.Clock.Status()
		return m, tea.Batch(m.poll(pollDashboard), m.poll(pollHistory))

	case likeMsg:
		if msg.err != nil {
			m.err = errors.Message(msg.err)
		} else if !msg.accepted {
			m.notice = "Like was not saved"
		}
		m.syncFeed()
		return m, nil

	case decisionMsg:
		if msg.err != nil {
			m.queue.Rollback(msg.ticket)
			m.err = errors.Message(msg.err)
		} else {
			m.queue.Commit(msg.ticket)
			m.err = ""
			m.notice = fmt.Sprintf("%s request %d %s.", kindLabel(msg.item.Kind), msg.item.ID, pastTense(msg.action))
		}
		m.syncQueue()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// apply folds a fetch result into the model
func (m *Model) apply(msg tea.Msg) {
	switch msg := msg.(type) {
	case dashboardMsg:
		m.loading[constants.StateDashboard] = false
		if msg.status != nil {
			m.status = *msg.status
		}
		if msg.personal != nil {
			m.personal = msg.personal
		}
		if msg.holidays != nil {
			m.upcoming = upcoming(msg.holidays, m.now, 3)
		}
		m.report(msg.err)
	case historyMsg:
		m.loading[constants.StateMe] = false
		if msg.err == nil {
			m.week.SetHistory(msg.logs, m.now)
			if msg.cached {
				m.notice = "Showing cached attendance"
			}
		}
		m.report(msg.err)
	case feedMsg:
		m.loading[constants.StateFeed] = false
		m.syncFeed()
		m.report(msg.err)
	case requestsMsg:
		m.loading[constants.StateLeave] = false
		m.loading[constants.StateRequests] = false
		if msg.err == nil {
			m.balances = msg.balances
			m.history = msg.history
			m.wfh = msg.wfh
			m.syncLeave()
			m.syncQueue()
		}
		m.report(msg.err)
	case badgeMsg:
		m.report(msg.err)
	}
}

// report surfaces a poll failure without dropping data already shown
func (m *Model) report(err error) {
	if err == nil {
		return
	}
	logger.Warn("tui poll failed", "err", err)
	m.err = errors.Message(err)
}

func (m *Model) syncFeed() {
	m.feedList.SetPosts(feed.View(m.feed.Posts(), m.user.Identifier(), m.now))
}

func (m *Model) syncLeave() {
	rows := make([]table.Row, 0, len(m.history))
	for _, h := range m.history {
		rows = append(rows, table.Row{h.Type, h.Dates, h.Days, string(h.Status)})
	}
	m.leaveTbl.SetRows(rows)
}

func (m *Model) syncQueue() {
	if m.user.CanApprove() {
		q := m.queue.Get()
		rows := make([]table.Row, 0, len(q))
		for _, p := range q {
			rows = append(rows, table.Row{p.Kind, p.Name, p.Dates, p.Days, p.Note})
		}
		m.queueTbl.SetRows(rows)
		return
	}
	rows := make([]table.Row, 0, len(m.wfh))
	for _, w := range m.wfh {
		rows = append(rows, table.Row{"wfh", m.user.DisplayName(), w.FromDate + " - " + w.ToDate, "", string(w.Status) + " · " + w.Reason})
	}
	m.queueTbl.SetRows(rows)
}

func (m Model) selectedPending() (pending, bool) {
	q := m.queue.Get()
	i := m.queueTbl.Cursor()
	if i < 0 || i >= len(q) {
		return pending{}, false
	}
	return q[i], true
}

func (m *Model) switchTab(next constants.SessionState) {
	m.state = next
	m.notice = ""
	if err := m.deps.Session.SetRoute(routeForState(next)); err != nil {
		logger.Warn("failed to save last route", "err", err)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The feed filter owns the keyboard while it is open
	if m.state == constants.StateFeed && m.feedList.Filtering() {
		var cmd tea.Cmd
		m.feedList, cmd = m.feedList.Update(msg)
		return m, cmd
	}

	n := constants.SessionState(len(tabs))
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.polls.stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.switchTab((m.state + 1) % n)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.switchTab((m.state - 1 + n) % n)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.err = ""
		return m, m.refresh()
	}

	switch m.state {
	case constants.StateDashboard:
		if key.Matches(msg, m.keys.Clock) && !m.busy {
			m.busy = true
			m.notice = "Locating..."
			return m, m.toggleClock()
		}
	case constants.StateMe:
		var cmd tea.Cmd
		m.week, cmd = m.week.Update(msg)
		return m, cmd
	case constants.StateLeave:
		var cmd tea.Cmd
		m.leaveTbl, cmd = m.leaveTbl.Update(msg)
		return m, cmd
	case constants.StateFeed:
		if key.Matches(msg, m.keys.Like) {
			if p, ok := m.feedList.Selected(); ok {
				return m, m.like(p.ID)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.feedList, cmd = m.feedList.Update(msg)
		return m, cmd
	case constants.StateRequests:
		if m.user.CanApprove() && (key.Matches(msg, m.keys.Approve) || key.Matches(msg, m.keys.Reject)) {
			item, ok := m.selectedPending()
			if !ok {
				return m, nil
			}
			cmd := m.decide(item, key.Matches(msg, m.keys.Approve))
			m.syncQueue()
			return m, cmd
		}
		var cmd tea.Cmd
		m.queueTbl, cmd = m.queueTbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh refetches whatever feeds the current tab
func (m Model) refresh() tea.Cmd {
	switch m.state {
	case constants.StateMe:
		return m.poll(pollHistory)
	case constants.StateFeed:
		return m.poll(pollFeed)
	case constants.StateLeave, constants.StateRequests:
		return m.poll(pollRequests)
	default:
		return tea.Batch(m.poll(pollDashboard), m.poll(pollRegularization))
	}
}

// upcoming returns up to n holidays from today on, soonest first
func upcoming(hs []models.Holiday, now time.Time, n int) []models.Holiday {
	today := utils.FormatDate(now)
	var out []models.Holiday
	for _, h := range hs {
		if h.Date >= today {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func kindLabel(kind string) string {
	if kind == "wfh" {
		return "WFH"
	}
	return "Leave"
}

func pastTense(action string) string {
	if action == constants.ActionApprove {
		return "approved"
	}
	return "rejected"
}
