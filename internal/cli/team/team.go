package team

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/models"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	teams, err := ctx.API.Team.List(ctx.Context())
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		ctx.Println("No teams.")
		return nil
	}
	rows := make([][]string, 0, len(teams))
	for _, t := range teams {
		manager := t.ManagerName
		if manager == "" {
			manager = t.Manager
		}
		rows = append(rows, []string{fmt.Sprint(t.ID), t.Name, manager, fmt.Sprint(t.MemberCount), t.Description})
	}
	ctx.Println(cli.Table([]string{"ID", "Name", "Manager", "Members", "Description"}, rows))
	return nil
}

type CreateCmd struct {
	Name        string `arg:"" help:"Team name."`
	Description string `help:"What the team does."`
	Manager     string `help:"Manager employee ID."`
}

func (c *CreateCmd) Run(ctx *cli.Context) error {
	in, err := teamInput(c.Name, c.Description, c.Manager)
	if err != nil {
		return err
	}
	t, err := ctx.API.Team.Create(ctx.Context(), in)
	if err != nil {
		return err
	}
	ctx.Printf("Created team %q (ID %d)\n", t.Name, t.ID)
	return nil
}

type UpdateCmd struct {
	ID          int    `arg:"" help:"Team ID."`
	Name        string `arg:"" help:"New team name."`
	Description string `help:"What the team does."`
	Manager     string `help:"Manager employee ID."`
}

func (c *UpdateCmd) Run(ctx *cli.Context) error {
	in, err := teamInput(c.Name, c.Description, c.Manager)
	if err != nil {
		return err
	}
	t, err := ctx.API.Team.Update(ctx.Context(), c.ID, in)
	if err != nil {
		return err
	}
	ctx.Printf("Updated team %q\n", t.Name)
	return nil
}

type DeleteCmd struct {
	ID  int  `arg:"" help:"Team ID."`
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete team %d?", c.ID), true)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}
	if err := ctx.API.Team.Delete(ctx.Context(), c.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted team %d\n", c.ID)
	return nil
}

type DesignationsCmd struct{}

func (c *DesignationsCmd) Run(ctx *cli.Context) error {
	ds, err := ctx.API.Team.Designations(ctx.Context())
	if err != nil {
		return err
	}
	for _, d := range ds {
		ctx.Printf("%3d  %s\n", d.ID, d.Name)
	}
	return nil
}

type StatsCmd struct {
	Team     string `help:"Team ID (defaults to the whole company)."`
	Duration string `help:"Window the server should summarize, e.g. week or month." default:"week"`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	st, err := ctx.API.Team.Stats(ctx.Context(), c.Team, c.Duration)
	if err != nil {
		return err
	}
	ctx.Println(cli.TitleStyle.Render("Team stats"))
	ctx.Printf("  Total:         %d\n", st.Total)
	ctx.Printf("  Active:        %d\n", st.Active)
	ctx.Printf("  On leave:      %d\n", st.OnLeave)
	ctx.Printf("  Remote:        %d\n", st.Remote)
	ctx.Printf("  Avg hours:     %.1f\n", st.AvgWorkingHours)
	ctx.Printf("  On time:       %s %.0f%%\n", cli.Bar(st.OnTimeArrival, 20), st.OnTimeArrival)
	return nil
}

func teamInput(name, description, manager string) (models.TeamInput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.TeamInput{}, errors.New("team name is required")
	}
	return models.TeamInput{Name: name, Description: description, Manager: manager}, nil
}
