package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/hrportal/internal/clock"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/leave"
	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/syncstate"
)

type dashboardMsg struct {
	status   *models.AttendanceStatus
	personal *models.PersonalStats
	holidays []models.Holiday
	err      error
}

type historyMsg struct {
	logs   []models.DayLog
	cached bool
	err    error
}

type feedMsg struct{ err error }

type requestsMsg struct {
	balances []leave.BalanceItem
	history  []leave.HistoryRow
	wfh      []models.WFHRequest
	err      error
}

type badgeMsg struct{ err error }

type clockMsg struct {
	result *clock.Result
	err    error
}

type likeMsg struct {
	postID   int
	accepted bool
	err      error
}

type decisionMsg struct {
	item   pending
	action string
	ticket syncstate.Ticket
	err    error
}

// loader returns the fetch for k. It only captures pointers and values
// so it can run off the update loop.
func (m Model) loader(k pollKind) func(ctx context.Context) tea.Msg {
	switch k {
	case pollDashboard:
		return m.loadDashboard
	case pollHistory:
		return m.loadHistory
	case pollFeed:
		return m.loadFeed
	case pollRequests:
		return m.loadRequests
	default:
		return m.loadBadge
	}
}

func (m Model) loadDashboard(ctx context.Context) tea.Msg {
	var msg dashboardMsg
	msg.err = syncstate.FetchAll(ctx,
		func(ctx context.Context) error {
			st, err := m.deps.Clock.Sync(ctx)
			msg.status = st
			return err
		},
		func(ctx context.Context) error {
			ps, err := m.deps.API.Attendance.PersonalStats(ctx, m.user.Identifier())
			msg.personal = ps
			return err
		},
		func(ctx context.Context) error {
			// holidays are decoration here; a failure must not fail the group
			hs, err := m.holidays.Holidays(ctx)
			if err != nil {
				logger.Debug("holidays unavailable", "err", err)
				return nil
			}
			msg.holidays = hs
			return nil
		},
	)
	return msg
}

// loadHistory refreshes the history cache and falls back to it offline
func (m Model) loadHistory(ctx context.Context) tea.Msg {
	id := m.user.Identifier()
	logs, err := m.deps.API.Attendance.History(ctx, id)
	if err == nil {
		if cerr := m.deps.Store.SaveHistory(id, logs, m.deps.Clock.Now()); cerr != nil {
			logger.Warn("failed to cache attendance history", "err", cerr)
		}
		return historyMsg{logs: logs}
	}
	cached, _, cerr := m.deps.Store.GetHistory(id)
	if cerr != nil {
		return historyMsg{err: err}
	}
	return historyMsg{logs: cached, cached: true}
}

func (m Model) loadFeed(ctx context.Context) tea.Msg {
	_, err := m.feed.Refresh(ctx)
	return feedMsg{err: err}
}

func (m Model) loadRequests(ctx context.Context) tea.Msg {
	mode, err := leave.ParseMode(m.deps.Settings.BalanceMode)
	if err != nil {
		mode = leave.ModeNet
	}
	id := m.user.Identifier()

	var (
		history  []models.LeaveRequest
		balances []models.LeaveBalanceEntry
		wfh      []models.WFHRequest
		queue    []pending
	)
	tok := m.queue.BeginFetch()
	fns := []func(context.Context) error{
		func(ctx context.Context) (err error) {
			history, err = m.deps.API.Leave.List(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			balances, err = m.deps.API.Leave.Balance(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			wfh, err = m.deps.API.WFH.List(ctx, id)
			return err
		},
	}
	if m.user.CanApprove() {
		fns = append(fns, func(ctx context.Context) error {
			q, err := m.loadQueue(ctx)
			queue = q
			return err
		})
	}
	if err := syncstate.FetchAll(ctx, fns...); err != nil {
		return requestsMsg{err: fmt.Errorf("failed to load requests: %w", err)}
	}
	if m.user.CanApprove() && !m.queue.Reconcile(tok, queue) {
		logger.Debug("dropped stale approval queue")
	}
	return requestsMsg{
		balances: leave.Aggregate(history, balances, mode),
		history:  leave.HistoryRows(history),
		wfh:      wfh,
	}
}

func (m Model) loadQueue(ctx context.Context) ([]pending, error) {
	var (
		leaves []models.LeaveRequest
		wfh    []models.WFHRequest
	)
	err := syncstate.FetchAll(ctx,
		func(ctx context.Context) (err error) {
			leaves, err = m.deps.API.Leave.Pending(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			wfh, err = m.deps.API.WFH.Pending(ctx)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	out := make([]pending, 0, len(leaves)+len(wfh))
	for _, r := range leaves {
		out = append(out, pending{
			Kind:  "leave",
			ID:    r.ID,
			Name:  r.EmployeeName,
			Dates: r.FromDate + " - " + r.ToDate,
			Days:  leave.FormatDays(r.Days),
			Note:  leave.Name(r.Type),
		})
	}
	for _, r := range wfh {
		out = append(out, pending{
			Kind:  "wfh",
			ID:    r.ID,
			Name:  r.EmployeeName,
			Dates: r.FromDate + " - " + r.ToDate,
			Note:  r.Reason,
		})
	}
	return out, nil
}

func (m Model) loadBadge(ctx context.Context) tea.Msg {
	err := m.badge.Refresh(ctx, func(ctx context.Context) (int, error) {
		q, err := clock.LoadQueues(ctx, m.deps.API.Attendance, m.user)
		if err != nil {
			return 0, err
		}
		return q.Pending(m.user.CanApprove()), nil
	})
	return badgeMsg{err: err}
}

func (m Model) toggleClock() tea.Cmd {
	ctx := m.ctx
	svc := m.deps.Clock
	return func() tea.Msg {
		res, err := svc.Toggle(ctx)
		return clockMsg{result: res, err: err}
	}
}

func (m Model) like(postID int) tea.Cmd {
	ctx := m.ctx
	svc := m.feed
	return func() tea.Msg {
		ok, err := svc.ToggleLike(ctx, postID)
		return likeMsg{postID: postID, accepted: ok, err: err}
	}
}

// decide drops item from the queue at once and sends the action. The
// update loop commits or rolls back the removal when the reply lands.
func (m Model) decide(item pending, approve bool) tea.Cmd {
	action := constants.ActionReject
	if approve {
		action = constants.ActionApprove
	}
	remove := func(q []pending) []pending {
		out := q[:0:0]
		for _, p := range q {
			if p.Kind != item.Kind || p.ID != item.ID {
				out = append(out, p)
			}
		}
		return out
	}
	restore := func(q []pending) []pending {
		return append(q, item)
	}
	tk := m.queue.Mutate(remove, restore)

	ctx := m.ctx
	api := m.deps.API
	return func() tea.Msg {
		var err error
		if item.Kind == "wfh" {
			err = api.WFH.Action(ctx, item.ID, action)
		} else {
			err = api.Leave.Action(ctx, item.ID, action)
		}
		return decisionMsg{item: item, action: action, ticket: tk, err: err}
	}
}
