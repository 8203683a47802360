package system

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/keyring"
	"github.com/julianstephens/hrportal/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(ctx *cli.Context) error
	warnOnly bool
}

var checks = []check{
	{name: "Database reachable", run: checkDatabase},
	{name: "Settings valid", run: checkSettings},
	{name: "Clock/timezone", run: checkTimezone},
	{name: "Backend reachable", run: checkBackend, warnOnly: true},
	{name: "OS keyring", run: checkKeyring, warnOnly: true},
	{name: "Session", run: checkSession, warnOnly: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := 0
	for _, c := range checks {
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			ctx.Printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			failed++
		}
	}

	ctx.Println()
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	ctx.Println("All checks passed.")
	return nil
}

func checkDatabase(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	_, err := ctx.Store.GetSettings()
	return err
}

func checkSettings(ctx *cli.Context) error {
	s, err := ctx.Settings()
	if err != nil {
		return err
	}
	if _, err := attendance.PolicyFromSettings(s); err != nil {
		return err
	}
	if s.PollRequestsSec <= 0 || s.PollRegularizationSec <= 0 || s.PollDashboardSec <= 0 {
		return fmt.Errorf("poll intervals must be positive")
	}
	return nil
}

func checkTimezone(ctx *cli.Context) error {
	tz := ""
	if ctx.Config != nil {
		tz = ctx.Config.Timezone
	}
	if !utils.ValidateTimezone(tz) {
		return fmt.Errorf("invalid timezone %q", tz)
	}
	if ctx.Clock().Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", ctx.Clock())
	}
	return nil
}

func checkBackend(ctx *cli.Context) error {
	c, cancel := context.WithTimeout(ctx.Context(), 5*time.Second)
	defer cancel()
	if _, err := ctx.API.Attendance.Holidays(c); err != nil {
		return fmt.Errorf("cannot reach %s: %w", ctx.API.BaseURL, err)
	}
	return nil
}

func checkKeyring(*cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

func checkSession(ctx *cli.Context) error {
	u, err := ctx.User()
	if err != nil {
		return err
	}
	ctx.Printf("   Signed in as %s (%s)\n", u.DisplayName(), u.Identifier())
	return nil
}
