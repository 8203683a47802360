package attendance

import (
	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/cli"
)

type WeekCmd struct {
	Offline bool `help:"Read the local cache instead of the server."`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	policy, err := ctx.Policy()
	if err != nil {
		return err
	}
	hist, err := ctx.History(user, c.Offline)
	if err != nil {
		return err
	}

	now := ctx.Clock()
	week := attendance.MergeWeek(hist.Logs, now)
	rows := make([][]string, 0, len(week))
	for _, d := range week {
		t := attendance.ActiveTiming(d, now, policy)
		rows = append(rows, []string{t.Day, t.Date, t.Range, t.Duration, t.Break, cli.Bar(t.Progress, 10)})
	}
	ctx.Println(cli.Table([]string{"Day", "Date", "Timing", "Duration", "Break", "Progress"}, rows))

	sum := attendance.WeeklySummary(hist.Logs, now, policy)
	ctx.Printf("Avg effective: %s   On time: %s   Present days: %d\n", sum.AvgEffective, sum.OnTime(), sum.PresentDays)
	return nil
}
