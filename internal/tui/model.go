package tui

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/hrportal/internal/api"
	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/clock"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/feed"
	"github.com/julianstephens/hrportal/internal/leave"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/session"
	"github.com/julianstephens/hrportal/internal/storage"
	"github.com/julianstephens/hrportal/internal/syncstate"
	"github.com/julianstephens/hrportal/internal/tui/components/feedlist"
	"github.com/julianstephens/hrportal/internal/tui/components/week"
)

// Deps is everything the TUI reads from or writes to
type Deps struct {
	API      *api.Client
	Session  *session.Session
	Store    storage.Provider
	Clock    *clock.Service
	Settings models.Settings
	Policy   attendance.Policy
	Location *time.Location
}

var tabs = []struct {
	title string
	state constants.SessionState
	route string
}{
	{"Dashboard", constants.StateDashboard, constants.RouteDashboard},
	{"Me", constants.StateMe, constants.RouteMe},
	{"Leave", constants.StateLeave, constants.RouteLeave},
	{"Feed", constants.StateFeed, constants.RouteFeed},
	{"Requests", constants.StateRequests, constants.RouteRequests},
}

// pending is one leave or WFH request waiting for this user's decision
type pending struct {
	Kind  string // "leave" or "wfh"
	ID    int
	Name  string
	Dates string
	Days  string
	Note  string
}

type Model struct {
	ctx  context.Context
	deps Deps
	user models.User

	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	progress progress.Model
	polls    *polls

	feed     *feed.Service
	feedList feedlist.Model
	week     week.Model
	badge    *syncstate.RegularizationBadge
	queue    *syncstate.Store[[]pending]

	now      time.Time
	status   models.AttendanceStatus
	personal *models.PersonalStats
	holidays *storage.CachedHolidays
	upcoming []models.Holiday
	balances []leave.BalanceItem
	history  []leave.HistoryRow
	wfh      []models.WFHRequest
	leaveTbl table.Model
	queueTbl table.Model

	loading  map[constants.SessionState]bool
	busy     bool
	notice   string
	err      string
	quitting bool
	width    int
	height   int
}

// NewModel builds the TUI for user, opening on the last visited tab
func NewModel(ctx context.Context, user models.User, deps Deps) Model {
	if deps.Location == nil {
		deps.Location = time.Local
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:      ctx,
		deps:     deps,
		user:     user,
		state:    stateForRoute(deps.Session.LastRoute()),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		polls:    newPolls(),
		feed:     feed.NewService(deps.API.Feed, user),
		feedList: feedlist.New(0, 0),
		week:     week.New(0, 0, deps.Policy),
		badge:    syncstate.NewRegularizationBadge(),
		holidays: &storage.CachedHolidays{API: deps.API.Attendance, Store: deps.Store},
		queue:    syncstate.NewStore[[]pending](nil, func(p []pending) []pending { return slices.Clone(p) }),
		now:      deps.Clock.Now().In(deps.Location),
		leaveTbl: newTable([]table.Column{
			{Title: "Type", Width: 18},
			{Title: "Dates", Width: 36},
			{Title: "Days", Width: 5},
			{Title: "Status", Width: 10},
		}),
		queueTbl: newTable([]table.Column{
			{Title: "Kind", Width: 6},
			{Title: "Employee", Width: 20},
			{Title: "Dates", Width: 24},
			{Title: "Days", Width: 5},
			{Title: "Note", Width: 30},
		}),
		loading: map[constants.SessionState]bool{
			constants.StateDashboard: true,
			constants.StateMe:        true,
			constants.StateLeave:     true,
			constants.StateFeed:      true,
			constants.StateRequests:  true,
		},
	}
	return m
}

func newTable(cols []table.Column) table.Model {
	t := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(10))
	s := table.DefaultStyles()
	s.Selected = s.Selected.Foreground(activeTabStyle.GetForeground()).Bold(true)
	t.SetStyles(s)
	return t
}

func stateForRoute(route string) constants.SessionState {
	for _, t := range tabs {
		if t.route == route {
			return t.state
		}
	}
	return constants.StateDashboard
}

func routeForState(s constants.SessionState) string {
	for _, t := range tabs {
		if t.state == s {
			return t.route
		}
	}
	return constants.RouteDashboard
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	switch m.state {
	case constants.StateDashboard:
		keys = append(keys, m.keys.Clock)
	case constants.StateFeed:
		keys = append(keys, m.keys.Like)
	case constants.StateRequests:
		if m.user.CanApprove() {
			keys = append(keys, m.keys.Approve, m.keys.Reject)
		}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case constants.StateDashboard:
		actions = []key.Binding{m.keys.Clock}
	case constants.StateFeed:
		actions = []key.Binding{m.keys.Like}
	case constants.StateRequests:
		if m.user.CanApprove() {
			actions = []key.Binding{m.keys.Approve, m.keys.Reject}
		}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tick(),
		m.poll(pollDashboard),
		m.poll(pollHistory),
		m.poll(pollFeed),
		m.poll(pollRequests),
		m.poll(pollRegularization),
	)
}
