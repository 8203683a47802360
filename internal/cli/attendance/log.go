package attendance

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/utils"
)

type LogCmd struct {
	Month   string `help:"Show one month of the current year (Jan, 01, January)."`
	Offline bool   `help:"Read the local cache instead of the server."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	policy, err := ctx.Policy()
	if err != nil {
		return err
	}

	filter := attendance.Last30Days()
	if c.Month != "" {
		m, err := attendance.ParseMonth(c.Month)
		if err != nil {
			return err
		}
		filter = attendance.ForMonth(m)
	}

	hist, err := ctx.History(user, c.Offline)
	if err != nil {
		return err
	}

	now := ctx.Clock()
	rows := attendance.FilterRange(hist.Logs, filter, now)
	if len(rows) == 0 {
		ctx.Println("No attendance records for this period.")
		return nil
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		s := attendance.Compute(r, now, policy)
		day, _ := utils.ParseDateInLocation(r.Date, now.Location())
		breakLabel := constants.EmptyValue
		if s.HasDuration {
			breakLabel = fmt.Sprintf("%d min", s.BreakMinutes)
		}
		table = append(table, []string{
			day.Format(constants.HistoryDateFormat),
			attendance.StatusLabel(r, s),
			r.CheckIn,
			r.CheckOut,
			s.Gross,
			breakLabel,
			s.Effective,
			cli.ArrivalBadge(s.Arrival),
		})
	}
	ctx.Println(cli.Table([]string{"Date", "Status", "In", "Out", "Gross", "Break", "Effective", "Arrival"}, table))

	if hist.Cached {
		ctx.Println(cli.MutedStyle.Render("Showing cached data from " + humanize.RelTime(hist.FetchedAt, now, "ago", "from now")))
	}
	return nil
}
