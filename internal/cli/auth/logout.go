package auth

import (
	"github.com/julianstephens/hrportal/internal/cli"
)

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	if !sess.IsAuthenticated() {
		ctx.Println("Not logged in.")
		return nil
	}
	if err := sess.Logout(); err != nil {
		return err
	}
	ctx.Println("Logged out.")
	return nil
}

type WhoamiCmd struct {
	Profile bool `help:"Fetch the full profile from the server."`
}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}

	ctx.Printf("%s\n", cli.TitleStyle.Render(user.DisplayName()))
	ctx.Printf("  Employee ID: %s\n", user.Identifier())
	ctx.Printf("  Role:        %s\n", user.Role)
	if user.Email != "" {
		ctx.Printf("  Email:       %s\n", user.Email)
	}
	if user.TeamLeadName != "" {
		ctx.Printf("  Team lead:   %s\n", user.TeamLeadName)
	}
	if !c.Profile {
		return nil
	}

	p, err := ctx.API.Auth.Profile(ctx.Context(), user.Identifier())
	if err != nil {
		return err
	}
	ctx.Printf("  Designation: %s\n", p.Designation)
	ctx.Printf("  Team:        %s\n", p.TeamName)
	ctx.Printf("  Joined:      %s\n", p.JoiningDate)
	ctx.Printf("  Location:    %s\n", p.Location)
	return nil
}
