package attendance

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/clock"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/syncstate"
	"github.com/julianstephens/hrportal/internal/validation"
)

type RegularizeCmd struct {
	Date     string `arg:"" help:"Day with the missed check-out (YYYY-MM-DD)."`
	CheckOut string `name:"check-out" required:"" help:"Actual check-out time, e.g. \"06:30 PM\"."`
	Reason   string `required:"" help:"Why the check-out was missed."`
}

func (c *RegularizeCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	req := models.RegularizationRequest{
		EmployeeID:   user.Identifier(),
		Date:         c.Date,
		CheckOutTime: c.CheckOut,
		Reason:       c.Reason,
	}
	resp, err := clock.Regularize(ctx.Context(), ctx.API.Attendance, validation.New(), req, ctx.Clock())
	if err != nil {
		return err
	}
	msg := resp.Message
	if msg == "" {
		msg = "Regularization request submitted."
	}
	ctx.Println(msg)
	return nil
}

type RegularizationListCmd struct {
	Team  bool `help:"Show the team queue instead of your own requests."`
	All   bool `help:"Include decided requests."`
	Watch bool `help:"Keep polling at the poll_regularization_sec interval until interrupted."`
}

func (c *RegularizationListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	if c.Team && !user.CanApprove() {
		ctx.Println(cli.MutedStyle.Render("Your role may not see team requests; the server decides."))
	}
	render := func(rc context.Context) error {
		return c.render(rc, ctx, user)
	}
	if !c.Watch {
		return render(ctx.Context())
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	return ctx.Watch("regularizations", cli.PollInterval(settings.PollRegularizationSec), render)
}

func (c *RegularizationListCmd) render(rc context.Context, ctx *cli.Context, user models.User) error {
	q, err := clock.LoadQueues(rc, ctx.API.Attendance, user)
	if err != nil {
		return err
	}
	list := q.Own
	if c.Team {
		if !user.CanApprove() {
			if list, err = ctx.API.Attendance.Regularizations(rc, user.Identifier(), clock.ScopeTeam); err != nil {
				return err
			}
		} else {
			list = q.Team
		}
	}

	rows := make([][]string, 0, len(list))
	for _, r := range list {
		if !c.All && r.Status != constants.StatusPending {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprint(r.ID), r.EmployeeName, r.Date, r.CheckIn, r.RequestedCheckout, r.Reason, cli.StatusBadge(r.Status),
		})
	}
	if len(rows) == 0 {
		ctx.Println("No regularization requests.")
	} else {
		ctx.Println(cli.Table([]string{"ID", "Employee", "Date", "In", "Requested Out", "Reason", "Status"}, rows))
	}
	ctx.Printf("Pending: %d\n", q.Pending(user.CanApprove()))
	return nil
}

type RegularizationApproveCmd struct {
	ID int `arg:"" help:"Request ID."`
}

func (c *RegularizationApproveCmd) Run(ctx *cli.Context) error {
	return decide(ctx, c.ID, string(constants.StatusApproved))
}

type RegularizationRejectCmd struct {
	ID int `arg:"" help:"Request ID."`
}

func (c *RegularizationRejectCmd) Run(ctx *cli.Context) error {
	return decide(ctx, c.ID, string(constants.StatusRejected))
}

func decide(ctx *cli.Context, id int, action string) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	badge := syncstate.NewRegularizationBadge()
	err = badge.Refresh(ctx.Context(), func(rctx context.Context) (int, error) {
		q, err := clock.LoadQueues(rctx, ctx.API.Attendance, user)
		return q.Pending(user.CanApprove()), err
	})
	if err != nil {
		logger.Debug("regularization badge refresh failed", "err", err)
	}
	if err := clock.Decide(ctx.Context(), ctx.API.Attendance, badge, id, action); err != nil {
		return err
	}
	ctx.Printf("Regularization %d %s. %d pending.\n", id, strings.ToLower(action), badge.Count())
	return nil
}
