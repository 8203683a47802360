package models

import "github.com/julianstephens/hrportal/internal/constants"

// SessionPair is one check-in/check-out pair within a day
type SessionPair struct {
	In  string `json:"in"`
	Out string `json:"out"`
}

// DayLog is one calendar day of attendance history. Times use the
// "hh:mm AM/PM" format, with "-" for a missing value.
type DayLog struct {
	Date         string        `json:"date"`
	Status       string        `json:"status"`
	CheckIn      string        `json:"checkIn"`
	CheckOut     string        `json:"checkOut"`
	BreakMinutes int           `json:"breakMinutes"`
	Logs         []SessionPair `json:"logs,omitempty"`
	IsWeekend    bool          `json:"isWeekend"`
	IsHoliday    bool          `json:"isHoliday"`
	HolidayName  string        `json:"holidayName,omitempty"`
	LeaveType    string        `json:"leaveType,omitempty"`
	Regularized  bool          `json:"isRegularized,omitempty"`
}

// HasCheckIn reports whether a check-in was recorded
func (d DayLog) HasCheckIn() bool {
	return d.CheckIn != "" && d.CheckIn != constants.EmptyValue
}

// HasCheckOut reports whether a check-out was recorded
func (d DayLog) HasCheckOut() bool {
	return d.CheckOut != "" && d.CheckOut != constants.EmptyValue
}

// ClockRequest is the body of a clock-in/out submission
type ClockRequest struct {
	EmployeeID string              `json:"employee_id"`
	Location   string              `json:"location"`
	Type       constants.ClockType `json:"type"`
}

// ClockResponse is the server's confirmation of a clock event. Summary
// carries the day's totals after the event.
type ClockResponse struct {
	Message string              `json:"message"`
	Type    constants.ClockType `json:"type"`
	Time    string              `json:"time"`
	Summary AttendanceStatus    `json:"summary"`
}

// AttendanceStatus is the server's view of today's clock state
type AttendanceStatus struct {
	Status         string `json:"status"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	BreakMinutes   int    `json:"break_minutes"`
	WorkedHours    string `json:"worked_hours"`
	ServerTime     string `json:"server_time,omitempty"`
	CanClock       *bool  `json:"can_clock,omitempty"`
	DisabledReason string `json:"disabled_reason,omitempty"`
}

// ClockedIn reports whether the server considers the user clocked in
func (s AttendanceStatus) ClockedIn() bool {
	return s.Status == string(constants.ClockIn)
}

// PersonalStats is the server-computed weekly comparison
type PersonalStats struct {
	AvgWorkingHours string `json:"avg_working_hours"`
	ThisWeekMins    int    `json:"this_week_mins"`
	LastWeekMins    int    `json:"last_week_mins"`
	DiffLabel       string `json:"diff_label"`
	DiffStatus      string `json:"diff_status"`
}

// Holiday is a company holiday
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// RegularizationRequest asks for a missed check-out to be corrected
type RegularizationRequest struct {
	EmployeeID   string `json:"employee_id" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	CheckOutTime string `json:"check_out_time" validate:"required"`
	Reason       string `json:"reason" validate:"required"`
}

// Regularization is a regularization request as listed for review
type Regularization struct {
	ID                int                     `json:"id"`
	EmployeeID        string                  `json:"employee_id"`
	EmployeeName      string                  `json:"employee_name"`
	Date              string                  `json:"date"`
	CheckIn           string                  `json:"check_in"`
	RequestedCheckout string                  `json:"requested_checkout"`
	Reason            string                  `json:"reason"`
	Status            constants.RequestStatus `json:"status"`
	CreatedAt         string                  `json:"created_at,omitempty"`
}

// ActionRequest is the {action} body of approve/reject endpoints
type ActionRequest struct {
	Action string `json:"action"`
}

// ResolvedLocation is the backend's reverse-geocode result
type ResolvedLocation struct {
	Address string `json:"address"`
}
