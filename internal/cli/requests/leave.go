package requests

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/leave"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/syncstate"
)

type LeaveListCmd struct {
	Status string `help:"Only show requests with this status (Pending, Approved, Rejected)."`
	Watch  bool   `help:"Keep polling at the poll_requests_sec interval until interrupted."`
}

func (c *LeaveListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	render := func(rc context.Context) error {
		return c.render(rc, ctx, user.Identifier())
	}
	if !c.Watch {
		return render(ctx.Context())
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	return ctx.Watch("leave-list", cli.PollInterval(settings.PollRequestsSec), render)
}

func (c *LeaveListCmd) render(rc context.Context, ctx *cli.Context, employeeID string) error {
	history, err := ctx.API.Leave.List(rc, employeeID)
	if err != nil {
		return err
	}
	if c.Status != "" {
		history = leave.FilterStatus(history, parseStatus(c.Status))
	}
	if len(history) == 0 {
		ctx.Println("No leave requests.")
		return nil
	}

	rows := make([][]string, 0, len(history))
	for _, r := range leave.HistoryRows(history) {
		rows = append(rows, []string{fmt.Sprint(r.ID), r.Type, r.Dates, r.Sessions, r.Days, r.Reason, cli.Colored(string(r.Status), r.StatusColor)})
	}
	ctx.Println(cli.Table([]string{"ID", "Type", "Dates", "Sessions", "Days", "Reason", "Status"}, rows))
	return nil
}

type LeaveBalanceCmd struct{}

func (c *LeaveBalanceCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	mode, err := leave.ParseMode(settings.BalanceMode)
	if err != nil {
		return err
	}

	var (
		history  []models.LeaveRequest
		balances []models.LeaveBalanceEntry
	)
	err = syncstate.FetchAll(ctx.Context(),
		func(rctx context.Context) error {
			var err error
			history, err = ctx.API.Leave.List(rctx, user.Identifier())
			return err
		},
		func(rctx context.Context) error {
			var err error
			balances, err = ctx.API.Leave.Balance(rctx, user.Identifier())
			return err
		},
	)
	if err != nil {
		return fmt.Errorf("failed to load leave balance: %w", err)
	}

	items := leave.Aggregate(history, balances, mode)
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Name,
			leave.FormatDays(it.Available),
			leave.FormatDays(it.Consumed),
			leave.FormatDays(it.Pending),
			leave.FormatDays(it.Total),
		})
	}
	ctx.Println(cli.Table([]string{"Type", "Available", "Consumed", "Pending", "Total"}, rows))
	ctx.Printf("Total available: %s\n", leave.FormatDays(leave.TotalAvailable(items)))
	return nil
}

type LeaveApplyCmd struct {
	Type        string `arg:"" help:"Leave type code (cl, sl, el, ...)."`
	From        string `arg:"" help:"First day (YYYY-MM-DD)."`
	To          string `arg:"" optional:"" help:"Last day (YYYY-MM-DD), defaults to the first day."`
	FromSession string `help:"Session on the first day: full, first or second." default:"full"`
	ToSession   string `help:"Session on the last day: full, first or second." default:"full"`
	Reason      string `help:"Reason for the leave."`
	NotifyTo    string `help:"Who else should be told."`
}

func (c *LeaveApplyCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	t, err := leave.ParseType(c.Type)
	if err != nil {
		return err
	}
	if err := ctx.Ask("Reason", &c.Reason, nil); err != nil {
		return err
	}

	app := models.LeaveApplication{
		EmployeeID:  user.Identifier(),
		Type:        t.Code,
		FromDate:    c.From,
		ToDate:      c.To,
		FromSession: sessionName(c.FromSession),
		ToSession:   sessionName(c.ToSession),
		Reason:      c.Reason,
		NotifyTo:    c.NotifyTo,
	}
	resp, err := ctx.Submitter().ApplyLeave(ctx.Context(), app)
	if err != nil {
		return err
	}
	ctx.Println(cli.MessageOr(resp, fmt.Sprintf("%s request submitted.", t.Name)))
	return nil
}

type LeavePendingCmd struct{}

func (c *LeavePendingCmd) Run(ctx *cli.Context) error {
	if err := advise(ctx); err != nil {
		return err
	}
	pending, err := ctx.API.Leave.Pending(ctx.Context())
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		ctx.Println("No pending leave requests.")
		return nil
	}
	rows := make([][]string, 0, len(pending))
	for i, r := range leave.HistoryRows(pending) {
		rows = append(rows, []string{fmt.Sprint(r.ID), pending[i].EmployeeName, r.Type, r.Dates, r.Days, r.Reason})
	}
	ctx.Println(cli.Table([]string{"ID", "Employee", "Type", "Dates", "Days", "Reason"}, rows))
	return nil
}

type LeaveApproveCmd struct {
	ID int `arg:"" help:"Request ID."`
}

func (c *LeaveApproveCmd) Run(ctx *cli.Context) error {
	return act(ctx, "Leave", c.ID, constants.ActionApprove, ctx.API.Leave.Action)
}

type LeaveRejectCmd struct {
	ID int `arg:"" help:"Request ID."`
}

func (c *LeaveRejectCmd) Run(ctx *cli.Context) error {
	return act(ctx, "Leave", c.ID, constants.ActionReject, ctx.API.Leave.Action)
}

func parseStatus(s string) constants.RequestStatus {
	switch strings.ToLower(s) {
	case "approved":
		return constants.StatusApproved
	case "rejected":
		return constants.StatusRejected
	case "pending":
		return constants.StatusPending
	}
	return constants.RequestStatus(s)
}
