package models

import "github.com/julianstephens/hrportal/internal/constants"

// LeaveRequest is one row of an employee's leave history
type LeaveRequest struct {
	ID           int                     `json:"id"`
	EmployeeID   string                  `json:"employee_id"`
	EmployeeName string                  `json:"employee_name"`
	Type         string                  `json:"type"`
	FromDate     string                  `json:"fromDate"`
	ToDate       string                  `json:"toDate"`
	Days         float64                 `json:"days"`
	FromSession  string                  `json:"from_session,omitempty"`
	ToSession    string                  `json:"to_session,omitempty"`
	Reason       string                  `json:"reason"`
	Status       constants.RequestStatus `json:"status"`
	AppliedOn    string                  `json:"applied_on,omitempty"`
}

// LeaveApplication is the body of a new leave request
type LeaveApplication struct {
	EmployeeID  string  `json:"employeeId" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=cl sl el scl bl pl ll co lop"`
	FromDate    string  `json:"fromDate" validate:"required,datetime=2006-01-02"`
	ToDate      string  `json:"toDate" validate:"omitempty,datetime=2006-01-02"`
	FromSession string  `json:"fromSession,omitempty" validate:"omitempty,oneof='Full Day' 'First Half' 'Second Half'"`
	ToSession   string  `json:"toSession,omitempty" validate:"omitempty,oneof='Full Day' 'First Half' 'Second Half'"`
	Days        float64 `json:"days"`
	Reason      string  `json:"reason" validate:"required"`
	NotifyTo    string  `json:"notifyTo,omitempty"`
}

// LeaveBalanceEntry is one leave type's server-reported availability
type LeaveBalanceEntry struct {
	Code      string  `json:"code"`
	Available float64 `json:"available"`
}
