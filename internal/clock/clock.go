package clock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/geo"
	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// ErrClockDisabled is returned when the server refuses clock actions for now
var ErrClockDisabled = errors.New("clock action disabled")

// AttendanceAPI is the slice of the REST client the clock needs
type AttendanceAPI interface {
	Status(ctx context.Context, employeeID string) (*models.AttendanceStatus, error)
	Clock(ctx context.Context, req models.ClockRequest) (*models.ClockResponse, error)
}

// Result describes a confirmed clock event
type Result struct {
	Type     constants.ClockType
	Location string
	Response *models.ClockResponse
}

// Service runs the clock-in/out flow for one employee
type Service struct {
	api        AttendanceAPI
	locator    geo.Locator
	geocoder   geo.Geocoder
	employeeID string
	now        func() time.Time

	mu        sync.Mutex
	clockedIn bool
	status    models.AttendanceStatus
	offset    time.Duration
}

// New creates a clock service. A nil locator behaves as permission denied
// and a nil geocoder leaves positions as raw coordinates.
func New(api AttendanceAPI, locator geo.Locator, geocoder geo.Geocoder, employeeID string) *Service {
	if locator == nil {
		locator = geo.NoLocator{}
	}
	return &Service{
		api:        api,
		locator:    locator,
		geocoder:   geocoder,
		employeeID: employeeID,
		now:        time.Now,
	}
}

// ClockedIn reports the last server-confirmed state
func (s *Service) ClockedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clockedIn
}

// Status returns the last synced server status
func (s *Service) Status() models.AttendanceStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Now is the local clock corrected by the last observed server offset
func (s *Service) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Add(s.offset)
}

// Sync reads the server's clock state
func (s *Service) Sync(ctx context.Context) (*models.AttendanceStatus, error) {
	st, err := s.api.Status(ctx, s.employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance status: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = *st
	s.clockedIn = st.ClockedIn()
	if st.ServerTime != "" {
		if server, err := utils.ParseTimestamp(st.ServerTime); err == nil {
			s.offset = server.Sub(s.now())
		}
	}
	return st, nil
}

// Locate resolves the location label for a clock event. A high-accuracy
// attempt that times out or finds no position is retried once at low
// accuracy; any other failure yields the permission-denied placeholder.
func (s *Service) Locate(ctx context.Context) string {
	pos, err := s.attempt(ctx, geo.Options{HighAccuracy: true, Timeout: constants.LocateTimeout})
	if err != nil && geo.Retryable(err) {
		logger.Debug("high accuracy location failed, retrying", "err", err)
		pos, err = s.attempt(ctx, geo.Options{HighAccuracy: false, Timeout: constants.LocateTimeout})
	}
	if err != nil {
		logger.Warn("location unavailable, clocking with placeholder", "err", err)
		return constants.LocationDeniedLabel
	}
	return geo.Describe(ctx, s.geocoder, pos)
}

func (s *Service) attempt(ctx context.Context, opts geo.Options) (geo.Position, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	pos, err := s.locator.Locate(ctx, opts)
	if errors.Is(err, context.DeadlineExceeded) {
		return pos, geo.ErrTimeout
	}
	return pos, err
}

// Toggle clocks in when out and out when in. The local state flips only
// after the server confirms.
func (s *Service) Toggle(ctx context.Context) (*Result, error) {
	st, err := s.Sync(ctx)
	if err != nil {
		return nil, err
	}
	if st.CanClock != nil && !*st.CanClock {
		reason := st.DisabledReason
		if reason == "" {
			reason = "not allowed right now"
		}
		return nil, fmt.Errorf("%w: %s", ErrClockDisabled, reason)
	}

	next := constants.ClockIn
	if st.ClockedIn() {
		next = constants.ClockOut
	}

	location := s.Locate(ctx)
	resp, err := s.api.Clock(ctx, models.ClockRequest{
		EmployeeID: s.employeeID,
		Location:   location,
		Type:       next,
	})
	if err != nil {
		return nil, fmt.Errorf("clock %s failed: %w", next, err)
	}

	s.mu.Lock()
	s.clockedIn = next == constants.ClockIn
	s.status.Status = string(next)
	if resp.Summary.CheckIn != "" {
		s.status.CheckIn = resp.Summary.CheckIn
		s.status.CheckOut = resp.Summary.CheckOut
		s.status.BreakMinutes = resp.Summary.BreakMinutes
		s.status.WorkedHours = resp.Summary.WorkedHours
	}
	s.mu.Unlock()

	logger.Info("clock confirmed", "type", next, "location", location)
	return &Result{Type: next, Location: location, Response: resp}, nil
}
