package api

import (
	"context"
	"net/url"

	"github.com/julianstephens/hrportal/internal/models"
)

// AttendanceService covers clocking, history, holidays and regularization
type AttendanceService struct{ c *Client }

// Clock records a clock-in or clock-out
func (s *AttendanceService) Clock(ctx context.Context, req models.ClockRequest) (*models.ClockResponse, error) {
	var resp models.ClockResponse
	if err := s.c.post(ctx, "/attendance/clock/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status returns today's clock state
func (s *AttendanceService) Status(ctx context.Context, employeeID string) (*models.AttendanceStatus, error) {
	var st models.AttendanceStatus
	if err := s.c.get(ctx, "/attendance/status/"+seg(employeeID)+"/", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// History returns the employee's day logs
func (s *AttendanceService) History(ctx context.Context, employeeID string) ([]models.DayLog, error) {
	var rows []models.DayLog
	if err := s.c.get(ctx, "/attendance/history/"+seg(employeeID)+"/", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PersonalStats returns the weekly comparison card
func (s *AttendanceService) PersonalStats(ctx context.Context, employeeID string) (*models.PersonalStats, error) {
	var st models.PersonalStats
	if err := s.c.get(ctx, "/attendance/stats/"+seg(employeeID)+"/", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Holidays lists company holidays
func (s *AttendanceService) Holidays(ctx context.Context) ([]models.Holiday, error) {
	var hs []models.Holiday
	if err := s.c.get(ctx, "/holidays/", nil, &hs); err != nil {
		return nil, err
	}
	return hs, nil
}

// ResolveLocation asks the backend to reverse-geocode coordinates
func (s *AttendanceService) ResolveLocation(ctx context.Context, lat, lon string) (*models.ResolvedLocation, error) {
	var loc models.ResolvedLocation
	q := url.Values{"lat": {lat}, "lon": {lon}}
	if err := s.c.get(ctx, "/attendance/resolve-location/", q, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// Regularize submits a missed check-out correction
func (s *AttendanceService) Regularize(ctx context.Context, req models.RegularizationRequest) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := s.c.post(ctx, "/attendance/regularize/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Regularizations lists requests for a user. role "employee" returns the
// user's own requests and "manager" the team's.
func (s *AttendanceService) Regularizations(ctx context.Context, userID, role string) ([]models.Regularization, error) {
	var rs []models.Regularization
	q := url.Values{"role": {role}}
	if err := s.c.get(ctx, "/attendance/regularization-requests/"+seg(userID)+"/", q, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// ActionRegularization approves or rejects a request ("Approved"/"Rejected")
func (s *AttendanceService) ActionRegularization(ctx context.Context, id int, action string) error {
	return s.c.post(ctx, "/attendance/regularization/"+itoa(id)+"/action/", models.ActionRequest{Action: action}, nil)
}
