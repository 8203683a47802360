package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/hrportal/internal/models"
)

var holidays = []models.Holiday{
	{Date: "2026-01-26", Name: "Republic Day"},
	{Date: "2026-01-14", Name: "Pongal"},
}

func leaveApp(from, to string) models.LeaveApplication {
	return models.LeaveApplication{
		EmployeeID: "E123",
		Type:       "cl",
		FromDate:   from,
		ToDate:     to,
		Reason:     "family function",
	}
}

func TestValidateLeave(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		app      models.LeaveApplication
		wantType ConflictType
		wantDate string
		wantMsg  string
	}{
		{
			name:     "weekday range is clean",
			app:      leaveApp("2026-01-05", "2026-01-09"),
			wantType: "",
		},
		{
			name:     "missing reason",
			app:      models.LeaveApplication{EmployeeID: "E123", Type: "cl", FromDate: "2026-01-05"},
			wantType: ConflictMissingField,
			wantMsg:  "From Date and Reason are required.",
		},
		{
			name:     "to before from",
			app:      leaveApp("2026-01-09", "2026-01-05"),
			wantType: ConflictDateOrder,
			wantMsg:  "To Date cannot be earlier than From Date.",
		},
		{
			name:     "range spans a Sunday",
			app:      leaveApp("2026-01-09", "2026-01-12"),
			wantType: ConflictSunday,
			wantDate: "2026-01-11",
			wantMsg:  "Leave requests are not allowed on Sundays. January 11, 2026 is a Sunday.",
		},
		{
			name:     "single day on a holiday",
			app:      leaveApp("2026-01-26", ""),
			wantType: ConflictHoliday,
			wantDate: "2026-01-26",
			wantMsg:  "Leave requests are not allowed on holidays. January 26, 2026 is a holiday (Republic Day).",
		},
		{
			name:     "unknown leave type",
			app:      models.LeaveApplication{EmployeeID: "E123", Type: "vacation", FromDate: "2026-01-05", Reason: "x"},
			wantType: ConflictInvalidFormat,
		},
		{
			name:     "malformed date",
			app:      leaveApp("05/01/2026", ""),
			wantType: ConflictInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateLeave(tt.app, holidays)
			if tt.wantType == "" {
				if result.HasConflicts() {
					t.Fatalf("unexpected conflicts:\n%s", result.FormatReport())
				}
				return
			}
			if !result.HasConflicts() {
				t.Fatal("expected a conflict")
			}
			c := result.Conflicts[0]
			if c.Type != tt.wantType {
				t.Errorf("conflict type = %s, want %s", c.Type, tt.wantType)
			}
			if tt.wantDate != "" && c.Date != tt.wantDate {
				t.Errorf("conflict date = %q, want %q", c.Date, tt.wantDate)
			}
			if tt.wantMsg != "" && c.Description != tt.wantMsg {
				t.Errorf("message = %q, want %q", c.Description, tt.wantMsg)
			}
		})
	}
}

func TestValidateLeaveReportsEveryOffendingDate(t *testing.T) {
	result := New().ValidateLeave(leaveApp("2026-01-10", "2026-01-27"), holidays)

	var dates []string
	for _, c := range result.Conflicts {
		dates = append(dates, c.Date)
	}
	want := []string{"2026-01-11", "2026-01-14", "2026-01-18", "2026-01-25", "2026-01-26"}
	if strings.Join(dates, ",") != strings.Join(want, ",") {
		t.Errorf("conflict dates = %v, want %v", dates, want)
	}
}

func TestValidateWFH(t *testing.T) {
	v := New()
	base := models.WFHApplication{
		EmployeeID: "E123",
		FromDate:   "2026-01-05",
		ToDate:     "2026-01-06",
		Reason:     "plumber visit",
		NotifyTo:   "manager@example.com",
	}

	if r := v.ValidateWFH(base, holidays); r.HasConflicts() {
		t.Fatalf("unexpected conflicts:\n%s", r.FormatReport())
	}

	noNotify := base
	noNotify.NotifyTo = ""
	if r := v.ValidateWFH(noNotify, holidays); !r.HasConflicts() || r.Conflicts[0].Field != "notifyTo" {
		t.Errorf("missing recipients not reported: %+v", r.Conflicts)
	}

	noTo := base
	noTo.ToDate = ""
	if r := v.ValidateWFH(noTo, holidays); !r.HasConflicts() || r.Conflicts[0].Description != "To Date is required" {
		t.Errorf("missing To Date not reported: %+v", r.Conflicts)
	}

	sunday := base
	sunday.ToDate = "2026-01-11"
	r := v.ValidateWFH(sunday, holidays)
	if !r.HasConflicts() {
		t.Fatal("expected a Sunday conflict")
	}
	want := "WFH requests are not allowed on Sundays. January 11, 2026 is a Sunday."
	if r.Conflicts[0].Description != want {
		t.Errorf("message = %q, want %q", r.Conflicts[0].Description, want)
	}
}

func TestValidateRegularization(t *testing.T) {
	v := New()
	today := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	valid := models.RegularizationRequest{
		EmployeeID:   "E123",
		Date:         "2026-01-06",
		CheckOutTime: "06:30 PM",
		Reason:       "forgot to clock out",
	}

	tests := []struct {
		name   string
		mutate func(r *models.RegularizationRequest)
		want   ConflictType
	}{
		{"valid", func(r *models.RegularizationRequest) {}, ""},
		{"today is not past", func(r *models.RegularizationRequest) { r.Date = "2026-01-07" }, ConflictNotPast},
		{"missing reason", func(r *models.RegularizationRequest) { r.Reason = "" }, ConflictMissingField},
		{"bad time", func(r *models.RegularizationRequest) { r.CheckOutTime = "half six" }, ConflictInvalidFormat},
		{"bad date", func(r *models.RegularizationRequest) { r.Date = "06-01-2026" }, ConflictInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			result := v.ValidateRegularization(req, today)
			if tt.want == "" {
				if result.HasConflicts() {
					t.Fatalf("unexpected conflicts:\n%s", result.FormatReport())
				}
				return
			}
			if !result.HasConflicts() || result.Conflicts[0].Type != tt.want {
				t.Errorf("conflicts = %+v, want first of type %s", result.Conflicts, tt.want)
			}
		})
	}
}

func TestErr(t *testing.T) {
	clean := ValidationResult{}
	if clean.Err() != nil {
		t.Error("clean result should not produce an error")
	}
	if clean.FormatReport() != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", clean.FormatReport())
	}

	result := New().ValidateLeave(leaveApp("2026-01-11", ""), holidays)
	err := result.Err()
	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Err() = %T, want *Error", err)
	}
	if !verr.Has(ConflictSunday) {
		t.Error("expected a Sunday conflict")
	}
	if !strings.Contains(verr.UserMessage(), "January 11, 2026") {
		t.Errorf("UserMessage() = %q should name the date", verr.UserMessage())
	}
	if !strings.HasPrefix(verr.Error(), "validation failed: ") {
		t.Errorf("Error() = %q", verr.Error())
	}
}
