package admin

import (
	"errors"
	"fmt"

	"github.com/julianstephens/hrportal/internal/account"
	"github.com/julianstephens/hrportal/internal/cli"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		ctx.Println(cli.MutedStyle.Render("The dashboard is for administrators; the server decides."))
	}

	st, err := ctx.API.Admin.DashboardStats(ctx.Context())
	if err != nil {
		return err
	}
	ctx.Println(cli.TitleStyle.Render("Today"))
	ctx.Printf("  Employees: %d\n", st.TotalEmployees)
	ctx.Printf("  Absent:    %d\n", st.AbsenteesCount)
	if len(st.Absentees) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(st.Absentees))
	for _, m := range st.Absentees {
		name := m.Name
		if name == "" {
			name = m.FirstName + " " + m.LastName
		}
		rows = append(rows, []string{m.EmployeeID, name, m.Role, m.Location})
	}
	ctx.Println(cli.Table([]string{"Employee ID", "Name", "Role", "Location"}, rows))
	return nil
}

const maxOTPAttempts = 3

type AccountCmd struct {
	Action string `arg:"" enum:"activate,deactivate" help:"activate or deactivate."`
	Mobile string `arg:"" optional:"" help:"10-digit mobile number of the account (defaults to yours)."`
	OTP    string `name:"otp" help:"Code already received. Without it a new code is sent."`
}

func (c *AccountCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}

	var closed string
	flow := account.NewFlow(ctx.API.Auth, user, func(msg string) { closed = msg })

	mobile := c.Mobile
	if mobile == "" {
		mobile = user.Contact
	}
	if err := ctx.Ask("Mobile number", &mobile, checkMobile); err != nil {
		return err
	}
	if mobile != user.Contact && !flow.CanTargetOthers() {
		ctx.Println(cli.MutedStyle.Render(account.MsgAdminOnly + " The server will decide."))
	}

	if c.OTP != "" {
		if err := flow.Resume(mobile, c.Action); err != nil {
			return err
		}
		if _, err := flow.Verify(ctx.Context(), c.OTP); err != nil {
			return err
		}
		ctx.Println(closed)
		return nil
	}

	if err := flow.SendOTP(ctx.Context(), mobile, c.Action); err != nil {
		return err
	}
	if !ctx.Interactive {
		ctx.Printf("Code sent to %s. Run again with --otp to %s the account.\n", mask(mobile), c.Action)
		return nil
	}

	for attempt := 1; attempt <= maxOTPAttempts; attempt++ {
		var otp string
		if err := ctx.Ask(fmt.Sprintf("Code sent to %s", mask(mobile)), &otp, nil); err != nil {
			return err
		}
		_, err := flow.Verify(ctx.Context(), otp)
		if err == nil {
			ctx.Println(closed)
			return nil
		}
		if errors.Is(err, account.ErrAdminOnly) || attempt == maxOTPAttempts {
			_ = flow.Back()
			return err
		}
		ctx.Printf("%v Try again.\n", err)
	}
	return nil
}

func checkMobile(s string) error {
	if len(s) != 10 {
		return account.ErrInvalidMobile
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return account.ErrInvalidMobile
		}
	}
	return nil
}

// mask hides all but the last four digits
func mask(mobile string) string {
	if len(mobile) <= 4 {
		return mobile
	}
	return "******" + mobile[len(mobile)-4:]
}
