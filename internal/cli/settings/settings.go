package settings

import (
	"fmt"

	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/leave"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	ShiftStart        *string `help:"Expected arrival (HH:MM)."`
	ShiftEnd          *string `help:"Expected departure (HH:MM)."`
	LateGraceMin      *int    `help:"Minutes after shift start still counted on time."`
	EarlyThresholdMin *int    `help:"Minutes before shift start that count as early."`
	FullDayMin        *int    `help:"Effective minutes that make a full day."`
	Timezone          *string `help:"IANA timezone or Local."`
	SessionBackend    *string `help:"Where the signed-in user is stored (sqlite or keyring)."`
	BalanceMode       *string `help:"What the server's available leave already deducts (net or gross)."`

	PollRequestsSec       *int `help:"Seconds between leave/WFH request refreshes."`
	PollRegularizationSec *int `help:"Seconds between regularization badge refreshes."`
	PollDashboardSec      *int `help:"Seconds between dashboard refreshes."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.List {
		printSettings(ctx, settings)
		return nil
	}

	updated := c.apply(&settings)
	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := validate(settings); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}

func (c *SettingsCmd) apply(s *models.Settings) bool {
	updated := false
	setString := func(dst *string, v *string) {
		if v != nil && *v != "" {
			*dst = *v
			updated = true
		}
	}
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
			updated = true
		}
	}

	setString(&s.ShiftStart, c.ShiftStart)
	setString(&s.ShiftEnd, c.ShiftEnd)
	setString(&s.Timezone, c.Timezone)
	setString(&s.SessionBackend, c.SessionBackend)
	setString(&s.BalanceMode, c.BalanceMode)
	setInt(&s.LateGraceMin, c.LateGraceMin)
	setInt(&s.EarlyThresholdMin, c.EarlyThresholdMin)
	setInt(&s.FullDayMin, c.FullDayMin)
	setInt(&s.PollRequestsSec, c.PollRequestsSec)
	setInt(&s.PollRegularizationSec, c.PollRegularizationSec)
	setInt(&s.PollDashboardSec, c.PollDashboardSec)
	return updated
}

func validate(s models.Settings) error {
	p, err := attendance.PolicyFromSettings(s)
	if err != nil {
		return err
	}
	if p.ShiftEndMin <= p.ShiftStartMin {
		return fmt.Errorf("shift end %s must be after shift start %s", s.ShiftEnd, s.ShiftStart)
	}
	if !utils.ValidateTimezone(s.Timezone) {
		return fmt.Errorf("invalid timezone %q", s.Timezone)
	}
	switch s.SessionBackend {
	case constants.SessionBackendSQLite, constants.SessionBackendKeyring:
	default:
		return fmt.Errorf("invalid session backend %q (want %q or %q)", s.SessionBackend, constants.SessionBackendSQLite, constants.SessionBackendKeyring)
	}
	if _, err := leave.ParseMode(s.BalanceMode); err != nil {
		return err
	}
	for name, v := range map[string]int{
		constants.SettingPollRequestsSec:       s.PollRequestsSec,
		constants.SettingPollRegularizationSec: s.PollRegularizationSec,
		constants.SettingPollDashboardSec:      s.PollDashboardSec,
	} {
		if v < 1 {
			return fmt.Errorf("%s must be at least 1 second", name)
		}
	}
	return nil
}

func printSettings(ctx *cli.Context, s models.Settings) {
	ctx.Println("Current Settings:")
	ctx.Printf("  Shift:                  %s - %s\n", s.ShiftStart, s.ShiftEnd)
	ctx.Printf("  Late Grace:             %d min\n", s.LateGraceMin)
	ctx.Printf("  Early Threshold:        %d min\n", s.EarlyThresholdMin)
	ctx.Printf("  Full Day:               %s\n", utils.FormatHours(s.FullDayMin))
	ctx.Printf("  Timezone:               %s\n", s.Timezone)
	ctx.Printf("  Session Backend:        %s\n", s.SessionBackend)
	ctx.Printf("  Balance Mode:           %s\n", s.BalanceMode)
	ctx.Println("\nPolling:")
	ctx.Printf("  Requests:               %ds\n", s.PollRequestsSec)
	ctx.Printf("  Regularizations:        %ds\n", s.PollRegularizationSec)
	ctx.Printf("  Dashboard:              %ds\n", s.PollDashboardSec)
}
