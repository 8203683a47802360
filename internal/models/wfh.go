package models

import "github.com/julianstephens/hrportal/internal/constants"

// WFHApplication is the body of a new work-from-home request
type WFHApplication struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	FromDate   string `json:"fromDate" validate:"required,datetime=2006-01-02"`
	ToDate     string `json:"toDate" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"required"`
	NotifyTo   string `json:"notifyTo" validate:"required"`
}

// WFHRequest is a work-from-home request as returned by the server
type WFHRequest struct {
	ID           int                     `json:"id"`
	EmployeeID   string                  `json:"employee_id"`
	EmployeeName string                  `json:"employee_name"`
	FromDate     string                  `json:"fromDate"`
	ToDate       string                  `json:"toDate"`
	Reason       string                  `json:"reason"`
	Status       constants.RequestStatus `json:"status"`
	AppliedOn    string                  `json:"applied_on,omitempty"`
}
