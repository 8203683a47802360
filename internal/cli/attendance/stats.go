package attendance

import (
	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/utils"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	policy, err := ctx.Policy()
	if err != nil {
		return err
	}

	ps, err := ctx.API.Attendance.PersonalStats(ctx.Context(), user.Identifier())
	if err != nil {
		return err
	}
	ctx.Println(cli.TitleStyle.Render("This week"))
	ctx.Printf("  Worked:        %s\n", utils.FormatHours(ps.ThisWeekMins))
	ctx.Printf("  Last week:     %s\n", utils.FormatHours(ps.LastWeekMins))
	if ps.DiffLabel != "" {
		ctx.Printf("  Change:        %s (%s)\n", ps.DiffLabel, ps.DiffStatus)
	}
	if ps.AvgWorkingHours != "" {
		ctx.Printf("  Server avg:    %s\n", ps.AvgWorkingHours)
	}

	hist, err := ctx.History(user, false)
	if err != nil {
		return err
	}
	sum := attendance.WeeklySummary(hist.Logs, ctx.Clock(), policy)
	ctx.Printf("  Avg effective: %s\n", sum.AvgEffective)
	ctx.Printf("  On time:       %s of %d days\n", sum.OnTime(), sum.PresentDays)
	return nil
}
