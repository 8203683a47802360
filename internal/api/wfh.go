package api

import (
	"context"

	"github.com/julianstephens/hrportal/internal/models"
)

// WFHService covers work-from-home requests
type WFHService struct{ c *Client }

// Apply submits a WFH application
func (s *WFHService) Apply(ctx context.Context, app models.WFHApplication) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := s.c.post(ctx, "/wfh/apply/", app, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns the employee's WFH requests
func (s *WFHService) List(ctx context.Context, employeeID string) ([]models.WFHRequest, error) {
	var rs []models.WFHRequest
	if err := s.c.get(ctx, "/wfh/requests/"+seg(employeeID)+"/", nil, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// Pending lists WFH requests awaiting approval
func (s *WFHService) Pending(ctx context.Context) ([]models.WFHRequest, error) {
	var rs []models.WFHRequest
	if err := s.c.get(ctx, "/wfh/pending/", nil, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// Action approves or rejects a WFH request ("Approve"/"Reject")
func (s *WFHService) Action(ctx context.Context, id int, action string) error {
	return s.c.post(ctx, "/wfh/"+itoa(id)+"/action/", models.ActionRequest{Action: action}, nil)
}
