package api

import (
	"context"
	"net/url"

	"github.com/julianstephens/hrportal/internal/models"
)

// TeamService covers teams, members and the employee registry
type TeamService struct{ c *Client }

// MemberFilter narrows a member listing
type MemberFilter struct {
	TeamID string
	Search string
}

func (f MemberFilter) query() url.Values {
	q := url.Values{}
	if f.TeamID != "" {
		q.Set("team_id", f.TeamID)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// List returns all teams
func (s *TeamService) List(ctx context.Context) ([]models.Team, error) {
	var ts []models.Team
	if err := s.c.get(ctx, "/team/", nil, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// Create adds a team
func (s *TeamService) Create(ctx context.Context, in models.TeamInput) (*models.Team, error) {
	var t models.Team
	if err := s.c.post(ctx, "/team/", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update edits a team
func (s *TeamService) Update(ctx context.Context, id int, in models.TeamInput) (*models.Team, error) {
	var t models.Team
	if err := s.c.put(ctx, "/team/"+itoa(id)+"/", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a team
func (s *TeamService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, "/team/"+itoa(id)+"/", nil)
}

// Members lists employees, optionally by team or search text
func (s *TeamService) Members(ctx context.Context, f MemberFilter) ([]models.Member, error) {
	var ms []models.Member
	if err := s.c.get(ctx, "/team/members/", f.query(), &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

// AddMember registers a new employee
func (s *TeamService) AddMember(ctx context.Context, e models.NewEmployee) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := s.c.post(ctx, "/team/members/", e, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMember edits an employee
func (s *TeamService) UpdateMember(ctx context.Context, id string, e models.NewEmployee) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := s.c.put(ctx, "/team/members/"+seg(id)+"/", e, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteMember removes an employee
func (s *TeamService) DeleteMember(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/team/members/"+seg(id)+"/", nil)
}

// Registry lists every employee
func (s *TeamService) Registry(ctx context.Context) ([]models.RegistryEntry, error) {
	var rs []models.RegistryEntry
	if err := s.c.get(ctx, "/team/registry/", nil, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// Stats returns team KPIs. Empty teamID means the whole company.
func (s *TeamService) Stats(ctx context.Context, teamID, duration string) (*models.TeamStats, error) {
	q := url.Values{}
	if teamID != "" {
		q.Set("team_id", teamID)
	}
	if duration != "" {
		q.Set("duration", duration)
	}
	var st models.TeamStats
	if err := s.c.get(ctx, "/team/stats/", q, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Designations lists job titles
func (s *TeamService) Designations(ctx context.Context) ([]models.Designation, error) {
	var ds []models.Designation
	if err := s.c.get(ctx, "/team/designations/", nil, &ds); err != nil {
		return nil, err
	}
	return ds, nil
}
