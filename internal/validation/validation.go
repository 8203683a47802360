package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictMissingField  ConflictType = "missing_field"
	ConflictInvalidFormat ConflictType = "invalid_format"
	ConflictDateOrder     ConflictType = "date_order"
	ConflictSunday        ConflictType = "sunday"
	ConflictHoliday       ConflictType = "holiday"
	ConflictNotPast       ConflictType = "not_past"
)

// Conflict is one rule a form or request breaks
type Conflict struct {
	Type        ConflictType
	Description string
	Field       string // form field involved (if applicable)
	Date        string // YYYY-MM-DD format (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var report strings.Builder
	report.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&report, "- %s\n", conflict.Description)
	}
	return report.String()
}

// Err returns nil when the result is clean and an *Error otherwise
func (vr *ValidationResult) Err() error {
	if !vr.HasConflicts() {
		return nil
	}
	return &Error{Conflicts: vr.Conflicts}
}

func (vr *ValidationResult) add(t ConflictType, field, date, format string, args ...any) {
	vr.Conflicts = append(vr.Conflicts, Conflict{
		Type:        t,
		Description: fmt.Sprintf(format, args...),
		Field:       field,
		Date:        date,
	})
}

// Error is returned when a request fails client-side validation. The first
// conflict is the message shown to the user.
type Error struct {
	Conflicts []Conflict
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		msgs = append(msgs, c.Description)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// UserMessage returns the first conflict's description
func (e *Error) UserMessage() string {
	if len(e.Conflicts) == 0 {
		return "validation failed"
	}
	return e.Conflicts[0].Description
}

// Has reports whether any conflict is of type t
func (e *Error) Has(t ConflictType) bool {
	for _, c := range e.Conflicts {
		if c.Type == t {
			return true
		}
	}
	return false
}

// Validator checks forms and requests before they are sent
type Validator struct {
	structs *validator.Validate
}

// New creates a new Validator
func New() *Validator {
	return &Validator{structs: validator.New(validator.WithRequiredStructEnabled())}
}

// fieldErrors runs the struct tags and returns the failing fields, or nil
func (v *Validator) fieldErrors(s any) validator.ValidationErrors {
	err := v.structs.Struct(s)
	if err == nil {
		return nil
	}
	if fes, ok := err.(validator.ValidationErrors); ok {
		return fes
	}
	return nil
}
