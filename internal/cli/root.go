package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/hrportal/internal/api"
	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/clock"
	"github.com/julianstephens/hrportal/internal/config"
	"github.com/julianstephens/hrportal/internal/geo"
	"github.com/julianstephens/hrportal/internal/leave"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/session"
	"github.com/julianstephens/hrportal/internal/storage"
	"github.com/julianstephens/hrportal/internal/utils"
)

// Context is handed to every command's Run
type Context struct {
	Ctx    context.Context
	Config *config.Config
	Store  storage.Provider
	API    *api.Client
	Out    io.Writer

	// Interactive allows huh prompts; tests and pipes turn it off
	Interactive bool
	// Now is the wall clock; tests pin it
	Now func() time.Time

	Locator  geo.Locator
	Geocoder geo.Geocoder

	session *session.Session
}

// Context returns the command's context, Background when unset
func (c *Context) Context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes to the command output
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

// Println writes a line to the command output
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// Settings loads the persisted settings
func (c *Context) Settings() (models.Settings, error) {
	s, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

// Location is the configured timezone, the flag or env winning over settings
func (c *Context) Location() *time.Location {
	tz := ""
	if c.Config != nil {
		tz = c.Config.Timezone
	}
	if tz == "" || tz == "Local" {
		if s, err := c.Store.GetSettings(); err == nil {
			tz = s.Timezone
		}
	}
	loc, err := utils.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}

// Clock returns the current time in the configured timezone
func (c *Context) Clock() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().In(c.Location())
}

// Policy is the shift policy built from settings
func (c *Context) Policy() (attendance.Policy, error) {
	s, err := c.Settings()
	if err != nil {
		return attendance.Policy{}, err
	}
	return attendance.PolicyFromSettings(s)
}

// Session opens the stored session on first use
func (c *Context) Session() (*session.Session, error) {
	if c.session != nil {
		return c.session, nil
	}
	s, err := c.Settings()
	if err != nil {
		return nil, err
	}
	backend, err := session.NewBackend(s.SessionBackend, c.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open session backend: %w", err)
	}
	sess, err := session.Open(backend)
	if err != nil {
		return nil, err
	}
	c.session = sess
	return sess, nil
}

// User returns the signed-in user
func (c *Context) User() (models.User, error) {
	sess, err := c.Session()
	if err != nil {
		return models.User{}, err
	}
	return sess.User()
}

// Holidays lists holidays from the server, falling back to the local cache
func (c *Context) Holidays() leave.HolidaySource {
	return &storage.CachedHolidays{API: c.API.Attendance, Store: c.Store}
}

// Submitter validates and sends leave and WFH requests
func (c *Context) Submitter() *leave.Submitter {
	return leave.NewSubmitter(c.API.Leave, c.API.WFH, c.Holidays())
}

// ClockService builds the clock flow for user
func (c *Context) ClockService(user models.User) *clock.Service {
	locator := c.Locator
	if locator == nil && c.Config != nil && c.Config.HasFixedPosition() {
		locator = geo.StaticLocator{Position: geo.Position{Latitude: *c.Config.Latitude, Longitude: *c.Config.Longitude}}
	}
	geocoder := c.Geocoder
	if geocoder == nil && c.Config != nil {
		geocoder = geo.NewNominatim(c.Config.GeocodeURL)
	}
	return clock.New(c.API.Attendance, locator, geocoder, user.Identifier())
}
