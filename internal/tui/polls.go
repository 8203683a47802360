package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type pollKind int

const (
	pollDashboard pollKind = iota
	pollHistory
	pollFeed
	pollRequests
	pollRegularization
)

func (k pollKind) String() string {
	return [...]string{"dashboard", "history", "feed", "requests", "regularization"}[k]
}

// polls stamps every fetch with a sequence number per kind. Starting a
// fetch cancels the previous one of the same kind, and a result whose
// stamp is no longer current is dropped.
type polls struct {
	seq    map[pollKind]uint64
	cancel map[pollKind]context.CancelFunc
}

func newPolls() *polls {
	return &polls{
		seq:    make(map[pollKind]uint64),
		cancel: make(map[pollKind]context.CancelFunc),
	}
}

func (p *polls) begin(parent context.Context, k pollKind) (context.Context, uint64) {
	if cancel, ok := p.cancel[k]; ok {
		cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	p.seq[k]++
	p.cancel[k] = cancel
	return ctx, p.seq[k]
}

// settle reports whether seq is the latest fetch of k and releases it
func (p *polls) settle(k pollKind, seq uint64) bool {
	if p.seq[k] != seq {
		return false
	}
	if cancel, ok := p.cancel[k]; ok {
		cancel()
		delete(p.cancel, k)
	}
	return true
}

func (p *polls) stop() {
	for k, cancel := range p.cancel {
		cancel()
		delete(p.cancel, k)
	}
}

// resultMsg carries a fetch result with its stamp
type resultMsg struct {
	kind pollKind
	seq  uint64
	msg  tea.Msg
}

// pollMsg asks for another fetch of kind. It is ignored when a fetch
// started after it was scheduled.
type pollMsg struct {
	kind pollKind
	seq  uint64
}

// tickMsg drives the live clock on the dashboard
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func seconds(n int) time.Duration {
	return time.Duration(max(1, n)) * time.Second
}

// interval maps a poll kind to its configured period
func (m Model) interval(k pollKind) time.Duration {
	switch k {
	case pollRequests:
		return seconds(m.deps.Settings.PollRequestsSec)
	case pollRegularization:
		return seconds(m.deps.Settings.PollRegularizationSec)
	default:
		return seconds(m.deps.Settings.PollDashboardSec)
	}
}

// schedule queues the next fetch of k
func (m Model) schedule(k pollKind) tea.Cmd {
	seq := m.polls.seq[k]
	return tea.Tick(m.interval(k), func(time.Time) tea.Msg {
		return pollMsg{kind: k, seq: seq}
	})
}

// poll starts a fetch of k now
func (m Model) poll(k pollKind) tea.Cmd {
	load := m.loader(k)
	ctx, seq := m.polls.begin(m.ctx, k)
	return func() tea.Msg {
		return resultMsg{kind: k, seq: seq, msg: load(ctx)}
	}
}
