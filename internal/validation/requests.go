package validation

import (
	"strings"
	"time"

	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// ValidateLeave checks a leave application. An empty To Date means a
// single-day request. Every Sunday or holiday in the range is reported.
func (v *Validator) ValidateLeave(app models.LeaveApplication, holidays []models.Holiday) ValidationResult {
	result := ValidationResult{}

	if app.FromDate == "" || strings.TrimSpace(app.Reason) == "" {
		result.add(ConflictMissingField, "fromDate", "", "From Date and Reason are required.")
		return result
	}
	toDate := app.ToDate
	if toDate == "" {
		toDate = app.FromDate
	}

	from, to, ok := dateRange(&result, app.FromDate, toDate)
	if !ok {
		return result
	}

	for _, fe := range v.fieldErrors(app) {
		switch fe.Field() {
		case "Type":
			result.add(ConflictInvalidFormat, "type", "", "Unknown leave type %q.", app.Type)
		case "FromSession", "ToSession":
			result.add(ConflictInvalidFormat, fe.Field(), "", "Session must be Full Day, First Half or Second Half.")
		case "EmployeeID":
			result.add(ConflictMissingField, "employeeId", "", "Employee ID is required.")
		}
	}

	checkDays(&result, "Leave", from, to, holidays)
	return result
}

// ValidateWFH checks a work-from-home application
func (v *Validator) ValidateWFH(app models.WFHApplication, holidays []models.Holiday) ValidationResult {
	result := ValidationResult{}

	switch {
	case app.FromDate == "":
		result.add(ConflictMissingField, "fromDate", "", "From Date is required")
	case app.ToDate == "":
		result.add(ConflictMissingField, "toDate", "", "To Date is required")
	case strings.TrimSpace(app.Reason) == "":
		result.add(ConflictMissingField, "reason", "", "Reason is required")
	case strings.TrimSpace(app.NotifyTo) == "":
		result.add(ConflictMissingField, "notifyTo", "", "Please select at least one recipient in 'Notify To'")
	}
	if result.HasConflicts() {
		return result
	}

	from, to, ok := dateRange(&result, app.FromDate, app.ToDate)
	if !ok {
		return result
	}
	if fes := v.fieldErrors(app); len(fes) > 0 {
		result.add(ConflictMissingField, fes[0].Field(), "", "%s is required.", fes[0].Field())
		return result
	}

	checkDays(&result, "WFH", from, to, holidays)
	return result
}

// ValidateRegularization checks a missed check-out correction. The date
// must be strictly before today.
func (v *Validator) ValidateRegularization(req models.RegularizationRequest, today time.Time) ValidationResult {
	result := ValidationResult{}

	for _, fe := range v.fieldErrors(req) {
		switch fe.Field() {
		case "Date":
			if fe.Tag() == "required" {
				result.add(ConflictMissingField, "date", "", "Date is required.")
			} else {
				result.add(ConflictInvalidFormat, "date", "", "Invalid date %q (want YYYY-MM-DD).", req.Date)
			}
		case "CheckOutTime":
			result.add(ConflictMissingField, "check_out_time", "", "Check-out time is required.")
		case "Reason":
			result.add(ConflictMissingField, "reason", "", "Reason is required.")
		case "EmployeeID":
			result.add(ConflictMissingField, "employee_id", "", "Employee ID is required.")
		}
	}
	if result.HasConflicts() {
		return result
	}

	if _, ok := utils.ParseClock(req.CheckOutTime); !ok {
		result.add(ConflictInvalidFormat, "check_out_time", "", "Invalid check-out time %q (want hh:mm AM/PM).", req.CheckOutTime)
	}

	day, err := utils.ParseDateInLocation(req.Date, today.Location())
	if err == nil && !day.Before(utils.StartOfDay(today)) {
		result.add(ConflictNotPast, "date", req.Date, "Regularization is only available for past dates.")
	}
	return result
}
