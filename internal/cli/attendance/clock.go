package attendance

import (
	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/utils"
)

type ClockCmd struct{}

func (c *ClockCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}

	svc := ctx.ClockService(user)
	res, err := svc.Toggle(ctx.Context())
	if err != nil {
		return err
	}

	verb := "Clocked in"
	if res.Type == constants.ClockOut {
		verb = "Clocked out"
	}
	at := res.Response.Time
	if at == "" {
		at = ctx.Clock().Format(constants.ClockFormat)
	}
	ctx.Printf("%s at %s\n", verb, at)
	ctx.Printf("  Location: %s\n", res.Location)
	if res.Response.Message != "" {
		ctx.Printf("  %s\n", cli.MutedStyle.Render(res.Response.Message))
	}
	if res.Type == constants.ClockOut && res.Response.Summary.WorkedHours != "" {
		ctx.Printf("  Worked:   %s\n", res.Response.Summary.WorkedHours)
	}
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	policy, err := ctx.Policy()
	if err != nil {
		return err
	}

	svc := ctx.ClockService(user)
	st, err := svc.Sync(ctx.Context())
	if err != nil {
		return err
	}

	state := "Clocked out"
	if st.ClockedIn() {
		state = "Clocked in"
	}
	ctx.Println(cli.TitleStyle.Render(state))
	ctx.Printf("  Shift:     %s\n", policy.ShiftRange())

	now := ctx.Clock()
	today := attendance.Today(*st, utils.FormatDate(now))
	stats := attendance.Compute(today, now, policy)
	ctx.Printf("  Check-in:  %s\n", today.CheckIn)
	ctx.Printf("  Check-out: %s\n", today.CheckOut)
	if stats.OffDay {
		return nil
	}
	ctx.Printf("  Arrival:   %s\n", cli.ArrivalBadge(stats.Arrival))
	ctx.Printf("  Gross:     %s\n", stats.Gross)
	ctx.Printf("  Break:     %d min\n", stats.BreakMinutes)
	ctx.Printf("  Effective: %s\n", stats.Effective)
	ctx.Printf("  Progress:  %s %.0f%%\n", cli.Bar(stats.Progress, 20), stats.Progress)
	if st.CanClock != nil && !*st.CanClock && st.DisabledReason != "" {
		ctx.Printf("  %s\n", cli.MutedStyle.Render(st.DisabledReason))
	}
	return nil
}
