package leave

import (
	"context"
	"fmt"

	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
	"github.com/julianstephens/hrportal/internal/validation"
)

// LeaveAPI submits leave applications
type LeaveAPI interface {
	Apply(ctx context.Context, app models.LeaveApplication) (*models.MessageResponse, error)
}

// WFHAPI submits work-from-home applications
type WFHAPI interface {
	Apply(ctx context.Context, app models.WFHApplication) (*models.MessageResponse, error)
}

// HolidaySource lists the company holidays used for date checks
type HolidaySource interface {
	Holidays(ctx context.Context) ([]models.Holiday, error)
}

// Submitter validates requests locally and only then sends them
type Submitter struct {
	Leave     LeaveAPI
	WFH       WFHAPI
	Holidays  HolidaySource
	Validator *validation.Validator
}

// NewSubmitter creates a Submitter
func NewSubmitter(l LeaveAPI, w WFHAPI, h HolidaySource) *Submitter {
	return &Submitter{Leave: l, WFH: w, Holidays: h, Validator: validation.New()}
}

// holidays never fails: without the list only the Sunday rule applies
func (s *Submitter) holidays(ctx context.Context) []models.Holiday {
	if s.Holidays == nil {
		return nil
	}
	hs, err := s.Holidays.Holidays(ctx)
	if err != nil {
		logger.Warn("holiday list unavailable, checking Sundays only", "err", err)
		return nil
	}
	return hs
}

// ApplyLeave validates app and submits it. Sessions are normalized and the
// day count is filled in when the caller left it at zero.
func (s *Submitter) ApplyLeave(ctx context.Context, app models.LeaveApplication) (*models.MessageResponse, error) {
	app.FromSession = NormalizeSession(app.FromSession)
	app.ToSession = NormalizeSession(app.ToSession)
	if app.ToDate == "" {
		app.ToDate = app.FromDate
	}

	result := s.Validator.ValidateLeave(app, s.holidays(ctx))
	if err := result.Err(); err != nil {
		return nil, err
	}

	if app.Days == 0 {
		from, _ := utils.ParseDate(app.FromDate)
		to, _ := utils.ParseDate(app.ToDate)
		app.Days = RequestedDays(from, to, app.FromSession, app.ToSession)
	}

	resp, err := s.Leave.Apply(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("failed to apply for leave: %w", err)
	}
	logger.Info("leave applied", "type", app.Type, "from", app.FromDate, "to", app.ToDate, "days", app.Days)
	return resp, nil
}

// ApplyWFH validates app and submits it
func (s *Submitter) ApplyWFH(ctx context.Context, app models.WFHApplication) (*models.MessageResponse, error) {
	result := s.Validator.ValidateWFH(app, s.holidays(ctx))
	if err := result.Err(); err != nil {
		return nil, err
	}

	resp, err := s.WFH.Apply(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("failed to apply for WFH: %w", err)
	}
	logger.Info("wfh applied", "from", app.FromDate, "to", app.ToDate)
	return resp, nil
}
