package api

import (
	"context"

	"github.com/julianstephens/hrportal/internal/models"
)

// AdminService covers administrator KPIs
type AdminService struct{ c *Client }

// DashboardStats returns headcount and today's absentees
func (s *AdminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var st models.DashboardStats
	if err := s.c.get(ctx, "/admin/dashboard-stats/", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}
