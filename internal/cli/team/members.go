package team

import (
	"fmt"

	"github.com/julianstephens/hrportal/internal/api"
	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/validation"
)

type MembersCmd struct {
	Team   string `help:"Only members of this team ID."`
	Search string `help:"Match name, email or employee ID."`
}

func (c *MembersCmd) Run(ctx *cli.Context) error {
	ms, err := ctx.API.Team.Members(ctx.Context(), api.MemberFilter{TeamID: c.Team, Search: c.Search})
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		ctx.Println("No members found.")
		return nil
	}
	rows := make([][]string, 0, len(ms))
	for _, m := range ms {
		name := m.Name
		if name == "" {
			name = m.FirstName + " " + m.LastName
		}
		rows = append(rows, []string{m.EmployeeID, name, m.Role, m.Status, m.Location, m.Email})
	}
	ctx.Println(cli.Table([]string{"Employee ID", "Name", "Role", "Status", "Location", "Email"}, rows))
	return nil
}

// EmployeeFlags is the add/edit employee form
type EmployeeFlags struct {
	EmployeeID    string `name:"employee-id" help:"Employee code."`
	FirstName     string `help:"First name."`
	LastName      string `help:"Last name."`
	Email         string `help:"Work email."`
	Role          string `help:"Job role."`
	Contact       string `help:"10-digit mobile number."`
	Aadhar        string `help:"12-digit Aadhar number."`
	Location      string `help:"Work location."`
	Qualification string `help:"Highest qualification."`
	Status        string `help:"Active or Inactive."`
	TeamID        *int   `name:"team-id" help:"Team to place the employee in."`
}

func (f EmployeeFlags) form() models.NewEmployee {
	return models.NewEmployee{
		EmployeeID:    f.EmployeeID,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Email:         f.Email,
		Role:          f.Role,
		Contact:       f.Contact,
		Aadhar:        f.Aadhar,
		Location:      f.Location,
		Qualification: f.Qualification,
		Status:        f.Status,
		TeamID:        f.TeamID,
	}
}

func check(form models.NewEmployee) error {
	result := validation.New().ValidateEmployee(form)
	return result.Err()
}

type AddMemberCmd struct {
	EmployeeFlags `embed:""`
}

func (c *AddMemberCmd) Run(ctx *cli.Context) error {
	form := c.form()
	if err := check(form); err != nil {
		return err
	}
	resp, err := ctx.API.Team.AddMember(ctx.Context(), form)
	if err != nil {
		return err
	}
	ctx.Println(cli.MessageOr(resp, fmt.Sprintf("Added %s %s (%s)", form.FirstName, form.LastName, form.EmployeeID)))
	return nil
}

type UpdateMemberCmd struct {
	ID            string `arg:"" help:"Member ID."`
	EmployeeFlags `embed:""`
}

func (c *UpdateMemberCmd) Run(ctx *cli.Context) error {
	form := c.form()
	if err := check(form); err != nil {
		return err
	}
	resp, err := ctx.API.Team.UpdateMember(ctx.Context(), c.ID, form)
	if err != nil {
		return err
	}
	ctx.Println(cli.MessageOr(resp, "Updated "+c.ID))
	return nil
}

type RemoveMemberCmd struct {
	ID  string `arg:"" help:"Member ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *RemoveMemberCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.Confirm("Remove member "+c.ID+"?", true)
		if err != nil || !ok {
			return err
		}
	}
	if err := ctx.API.Team.DeleteMember(ctx.Context(), c.ID); err != nil {
		return err
	}
	ctx.Printf("Removed %s\n", c.ID)
	return nil
}

type RegistryCmd struct{}

func (c *RegistryCmd) Run(ctx *cli.Context) error {
	rs, err := ctx.API.Team.Registry(ctx.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{r.EmployeeID, r.Name, r.Role, r.Status, r.TeamName})
	}
	ctx.Println(cli.Table([]string{"Employee ID", "Name", "Role", "Status", "Team"}, rows))
	ctx.Printf("%d employees\n", len(rs))
	return nil
}
