package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/hrportal/internal/api"
	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/cli/admin"
	"github.com/julianstephens/hrportal/internal/cli/attendance"
	"github.com/julianstephens/hrportal/internal/cli/auth"
	"github.com/julianstephens/hrportal/internal/cli/feed"
	"github.com/julianstephens/hrportal/internal/cli/requests"
	"github.com/julianstephens/hrportal/internal/cli/settings"
	"github.com/julianstephens/hrportal/internal/cli/system"
	"github.com/julianstephens/hrportal/internal/cli/team"
	"github.com/julianstephens/hrportal/internal/config"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/errors"
	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/storage/sqlite"
)

var CLI struct {
	Version  kong.VersionFlag
	APIURL   string `name:"api-url" help:"Backend base URL (overrides HRPORTAL_API_URL)."`
	DataDir  string `help:"Local data directory (overrides HRPORTAL_DATA_DIR)." type:"path"`
	Timezone string `help:"IANA timezone used for dates and times."`
	Debug    bool   `help:"Write debug logs to stderr and the log file."`

	Init     system.InitCmd       `cmd:"" help:"Initialize local storage."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`

	Login  auth.LoginCmd  `cmd:"" help:"Log in with a one-time password."`
	Logout auth.LogoutCmd `cmd:"" help:"Clear the local session."`
	Whoami auth.WhoamiCmd `cmd:"" help:"Show the signed-in employee."`

	Clock      attendance.ClockCmd      `cmd:"" help:"Clock in or out."`
	Status     attendance.StatusCmd     `cmd:"" help:"Show today's attendance."`
	Attendance struct {
		Log    attendance.LogCmd    `cmd:"" help:"Show attendance history." default:"1"`
		Week   attendance.WeekCmd   `cmd:"" help:"Show this week's timings."`
		Stats  attendance.StatsCmd  `cmd:"" help:"Show personal attendance stats."`
		Export attendance.ExportCmd `cmd:"" help:"Export a month of attendance to Excel."`
	} `cmd:"" help:"Attendance history and reports."`
	Regularize     attendance.RegularizeCmd `cmd:"" help:"Request a missed check-out correction."`
	Regularization struct {
		List    attendance.RegularizationListCmd    `cmd:"" help:"List regularization requests." default:"1"`
		Approve attendance.RegularizationApproveCmd `cmd:"" help:"Approve a team regularization."`
		Reject  attendance.RegularizationRejectCmd  `cmd:"" help:"Reject a team regularization."`
	} `cmd:"" help:"Review regularization requests."`

	Leave struct {
		List    requests.LeaveListCmd    `cmd:"" help:"List your leave requests." default:"1"`
		Balance requests.LeaveBalanceCmd `cmd:"" help:"Show leave balances."`
		Apply   requests.LeaveApplyCmd   `cmd:"" help:"Apply for leave."`
		Pending requests.LeavePendingCmd `cmd:"" help:"List leave requests waiting for you."`
		Approve requests.LeaveApproveCmd `cmd:"" help:"Approve a leave request."`
		Reject  requests.LeaveRejectCmd  `cmd:"" help:"Reject a leave request."`
	} `cmd:"" help:"Leave requests."`
	WFH struct {
		List    requests.WFHListCmd    `cmd:"" help:"List your WFH requests." default:"1"`
		Apply   requests.WFHApplyCmd   `cmd:"" help:"Apply to work from home."`
		Pending requests.WFHPendingCmd `cmd:"" help:"List WFH requests waiting for you."`
		Approve requests.WFHApproveCmd `cmd:"" help:"Approve a WFH request."`
		Reject  requests.WFHRejectCmd  `cmd:"" help:"Reject a WFH request."`
	} `cmd:"" name:"wfh" help:"Work-from-home requests."`

	Team struct {
		List         team.ListCmd         `cmd:"" help:"List teams." default:"1"`
		Create       team.CreateCmd       `cmd:"" help:"Create a team."`
		Update       team.UpdateCmd       `cmd:"" help:"Update a team."`
		Delete       team.DeleteCmd       `cmd:"" help:"Delete a team."`
		Members      team.MembersCmd      `cmd:"" help:"List members."`
		AddMember    team.AddMemberCmd    `cmd:"" help:"Add an employee."`
		UpdateMember team.UpdateMemberCmd `cmd:"" help:"Update an employee."`
		RemoveMember team.RemoveMemberCmd `cmd:"" help:"Remove an employee."`
		Registry     team.RegistryCmd     `cmd:"" help:"Show the employee registry."`
		Stats        team.StatsCmd        `cmd:"" help:"Show team attendance stats."`
		Designations team.DesignationsCmd `cmd:"" help:"List designations."`
	} `cmd:"" help:"Teams and members."`

	Feed struct {
		List          feed.ListCmd          `cmd:"" help:"Show the feed." default:"1"`
		Post          feed.PostCmd          `cmd:"" help:"Publish a post."`
		Like          feed.LikeCmd          `cmd:"" help:"Like or unlike a post."`
		Comment       feed.CommentCmd       `cmd:"" help:"Comment on a post."`
		Delete        feed.DeleteCmd        `cmd:"" help:"Delete a post."`
		DeleteComment feed.DeleteCommentCmd `cmd:"" help:"Delete a comment."`
	} `cmd:"" help:"Company feed."`

	Admin struct {
		Dashboard admin.DashboardCmd `cmd:"" help:"Show organization stats." default:"1"`
	} `cmd:"" help:"Administration."`
	Account admin.AccountCmd `cmd:"" help:"Activate or deactivate an account with a one-time password."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("HR portal client: attendance, leave, WFH, teams and the company feed"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)
	command := ctx.Command()
	isTUI := command == "" || command == "tui"

	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.APIURL != "" {
		cfg.APIURL = strings.TrimRight(CLI.APIURL, "/")
	}
	if CLI.DataDir != "" {
		cfg.DataDir = CLI.DataDir
	}
	if CLI.Timezone != "" {
		cfg.Timezone = CLI.Timezone
	}
	cfg.Debug = cfg.Debug || CLI.Debug

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir, Quiet: isTUI}); err != nil {
		errors.Fatal(err)
	}

	store := sqlite.NewStore(cfg.DBPath())

	// init creates the database itself
	if !strings.HasPrefix(command, "init") {
		if err := store.Load(); err != nil {
			store.Close()
			errors.Fatal(err)
		}
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCtx := &cli.Context{
		Ctx:         runCtx,
		Config:      cfg,
		Store:       store,
		API:         api.New(cfg.APIURL, nil),
		Out:         os.Stdout,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	err = ctx.Run(appCtx)
	stop()
	if cerr := store.Close(); cerr != nil {
		logger.Warn("failed to close database", "err", cerr)
	}
	if err != nil {
		errors.Fatal(err)
	}
}
