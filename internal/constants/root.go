package constants

import "time"

// SessionState represents the current tab or modal of the TUI application
type SessionState int

// ArrivalStatus classifies a check-in against the shift start
type ArrivalStatus string

// RequestStatus is the lifecycle state shared by leave, WFH and regularization requests
type RequestStatus string

// ClockType is the direction of a clock event sent to the server
type ClockType string

const (
	AppName            = "hrportal"
	DefaultKeyringUser = "session-user"
	DefaultDataDir     = "~/.config/hrportal"
	DefaultDBFile      = "hrportal.db"
	Version            = "v0.3.0"

	// DateFormat is the wire date format used by the backend (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the 24-hour format used for settings (HH:MM)
	TimeFormat = "15:04"

	// ClockFormat is the 12-hour format the backend uses for check-in/out times
	ClockFormat = "03:04 PM"

	// DisplayDateFormat is used when a message has to name a date to the user
	DisplayDateFormat = "January 2, 2006"

	// HistoryDateFormat is the history row date label (e.g. "Mon, 05-01-2026")
	HistoryDateFormat = "Mon, 02-01-2006"

	// EmptyValue is the placeholder the backend and the UI use for a missing time
	EmptyValue = "-"

	// Shift policy defaults
	DefaultShiftStart        = "09:30"
	DefaultShiftEnd          = "18:30"
	DefaultLateGraceMin      = 0
	DefaultEarlyThresholdMin = 15
	DefaultFullDayMin        = 9 * 60
	DefaultBreakLabel        = "60 min"

	// Poll intervals
	PollRequestsInterval       = 5 * time.Second
	PollRegularizationInterval = 15 * time.Second
	PollDashboardInterval      = 30 * time.Second

	// Geolocation
	LocateTimeout       = 10 * time.Second
	GeocodeTimeout      = 5 * time.Second
	LocationDeniedLabel = "Location permission denied"
	DefaultGeocodeURL   = "https://nominatim.openstreetmap.org"
	DefaultAPIURL       = "http://localhost:8000/api"
	GeocodeUserAgent    = "hrportal-cli"

	// Session keys
	SessionKeyAuthenticated = "isAuthenticated"
	SessionKeyUser          = "user"
	SessionKeyLastRoute     = "lastRoute"

	// Arrival statuses
	ArrivalOnTime ArrivalStatus = "On Time"
	ArrivalLate   ArrivalStatus = "Late"
	ArrivalEarly  ArrivalStatus = "Early"

	// Arrival colors
	ColorOnTime = "#22c55e"
	ColorLate   = "#ef4444"
	ColorEarly  = "#f59e0b"

	// Request statuses
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"

	// Day statuses reported in attendance history
	DayPresent   = "Present"
	DayAbsent    = "Absent"
	DayOnLeave   = "On Leave"
	DayNotMarked = "Not Marked"
	DayHoliday   = "Holiday"
	DayWeeklyOff = "Weekly Off"

	// Clock directions
	ClockIn  ClockType = "IN"
	ClockOut ClockType = "OUT"

	// Roles
	RoleEmployee      = "Employee"
	RoleManager       = "Manager"
	RoleAdministrator = "Administrator"

	// Leave and WFH review actions
	ActionApprove = "Approve"
	ActionReject  = "Reject"

	// Account actions
	AccountActivate   = "activate"
	AccountDeactivate = "deactivate"

	// Feed post types
	PostActivity = "Activity"
	PostEvent    = "Event"

	// Leave sessions
	SessionFullDay    = "Full Day"
	SessionFirstHalf  = "First Half"
	SessionSecondHalf = "Second Half"

	// Routes recorded as lastRoute
	RouteDashboard = "/dashboard"
	RouteMe        = "/me"
	RouteLeave     = "/leave"
	RouteFeed      = "/feed"
	RouteRequests  = "/requests"
	RouteLogin     = "/login"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateMe
	StateLeave
	StateFeed
	StateRequests
	StateForm
	StateOTP
	StateConfirmation
)
