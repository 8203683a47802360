package attendance

import (
	"path/filepath"

	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/report"
)

type ExportCmd struct {
	Month   string `help:"Month to export (defaults to the current month)."`
	Dir     string `help:"Directory to write the workbook to." default:"." type:"path"`
	Offline bool   `help:"Read the local cache instead of the server."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	policy, err := ctx.Policy()
	if err != nil {
		return err
	}

	now := ctx.Clock()
	month := now.Month()
	if c.Month != "" {
		if month, err = attendance.ParseMonth(c.Month); err != nil {
			return err
		}
	}

	hist, err := ctx.History(user, c.Offline)
	if err != nil {
		return err
	}

	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, report.Filename(user, month, now.Year()))
	if err := report.ExportMonth(path, user, hist.Logs, month, now, policy); err != nil {
		return err
	}
	ctx.Printf("Exported %s %d to %s\n", month, now.Year(), path)
	return nil
}
