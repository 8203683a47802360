package requests

import (
	"context"
	"fmt"

	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
)

type WFHListCmd struct {
	Status string `help:"Only show requests with this status (Pending, Approved, Rejected)."`
}

func (c *WFHListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	list, err := ctx.API.WFH.List(ctx.Context(), user.Identifier())
	if err != nil {
		return err
	}
	return printWFH(ctx, list, c.Status, false)
}

type WFHApplyCmd struct {
	From     string `arg:"" help:"First day (YYYY-MM-DD)."`
	To       string `arg:"" optional:"" help:"Last day (YYYY-MM-DD), defaults to the first day."`
	Reason   string `help:"Reason for working from home."`
	NotifyTo string `help:"Who should be told."`
}

func (c *WFHApplyCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	if c.To == "" {
		c.To = c.From
	}
	if c.NotifyTo == "" {
		c.NotifyTo = user.TeamLeadName
	}
	if err := ctx.Ask("Reason", &c.Reason, nil); err != nil {
		return err
	}
	if err := ctx.Ask("Notify", &c.NotifyTo, nil); err != nil {
		return err
	}

	resp, err := ctx.Submitter().ApplyWFH(ctx.Context(), models.WFHApplication{
		EmployeeID: user.Identifier(),
		FromDate:   c.From,
		ToDate:     c.To,
		Reason:     c.Reason,
		NotifyTo:   c.NotifyTo,
	})
	if err != nil {
		return err
	}
	ctx.Println(cli.MessageOr(resp, "WFH request submitted."))
	return nil
}

type WFHPendingCmd struct {
	Watch bool `help:"Keep polling at the poll_requests_sec interval until interrupted."`
}

func (c *WFHPendingCmd) Run(ctx *cli.Context) error {
	if err := advise(ctx); err != nil {
		return err
	}
	render := func(rc context.Context) error {
		list, err := ctx.API.WFH.Pending(rc)
		if err != nil {
			return err
		}
		return printWFH(ctx, list, "", true)
	}
	if !c.Watch {
		return render(ctx.Context())
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	return ctx.Watch("wfh-pending", cli.PollInterval(settings.PollRequestsSec), render)
}

type WFHApproveCmd struct {
	ID int `arg:"" help:"Request ID."`
}

func (c *WFHApproveCmd) Run(ctx *cli.Context) error {
	return act(ctx, "WFH", c.ID, constants.ActionApprove, ctx.API.WFH.Action)
}

type WFHRejectCmd struct {
	ID int `arg:"" help:"Request ID."`
}

func (c *WFHRejectCmd) Run(ctx *cli.Context) error {
	return act(ctx, "WFH", c.ID, constants.ActionReject, ctx.API.WFH.Action)
}

func printWFH(ctx *cli.Context, list []models.WFHRequest, status string, withEmployee bool) error {
	want := parseStatus(status)
	headers := []string{"ID", "From", "To", "Reason", "Status"}
	if withEmployee {
		headers = append([]string{"Employee"}, headers...)
	}

	rows := make([][]string, 0, len(list))
	for _, r := range list {
		if status != "" && r.Status != want {
			continue
		}
		row := []string{fmt.Sprint(r.ID), r.FromDate, r.ToDate, r.Reason, cli.StatusBadge(r.Status)}
		if withEmployee {
			row = append([]string{r.EmployeeName}, row...)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		ctx.Println("No WFH requests.")
		return nil
	}
	ctx.Println(cli.Table(headers, rows))
	return nil
}
