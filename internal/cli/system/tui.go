package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/session"
	"github.com/julianstephens/hrportal/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	user, err := sess.User()
	if err != nil {
		return session.ErrNotLoggedIn
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	policy, err := ctx.Policy()
	if err != nil {
		return err
	}

	deps := tui.Deps{
		API:      ctx.API,
		Session:  sess,
		Store:    ctx.Store,
		Clock:    ctx.ClockService(user),
		Settings: settings,
		Policy:   policy,
		Location: ctx.Location(),
	}
	p := tea.NewProgram(tui.NewModel(ctx.Context(), user, deps), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
