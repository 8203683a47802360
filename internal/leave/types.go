package leave

import (
	"fmt"
	"strings"
)

// Type describes one leave category and its annual allowance
type Type struct {
	Code  string
	Name  string
	Limit float64
}

// Catalogue lists every leave type the portal knows about. The first three
// are the allowances the backend enforces; the rest are display-only.
var Catalogue = []Type{
	{Code: "cl", Name: "CASUAL LEAVE", Limit: 6},
	{Code: "sl", Name: "SICK LEAVE", Limit: 6},
	{Code: "el", Name: "EARNED LEAVE", Limit: 17},
	{Code: "scl", Name: "SPECIAL LEAVE", Limit: 3},
	{Code: "bl", Name: "BEREAVEMENT LEAVE", Limit: 5},
	{Code: "pl", Name: "PATERNITY LEAVE", Limit: 3},
	{Code: "ll", Name: "LONG LEAVE", Limit: 21},
	{Code: "co", Name: "COMP OFF", Limit: 2},
	{Code: "lop", Name: "LOSS OF PAY", Limit: 0},
}

// Enforced are the codes the backend keeps a balance for
var Enforced = []string{"cl", "sl", "el"}

// Lookup finds a leave type by code, case-insensitively
func Lookup(code string) (Type, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, t := range Catalogue {
		if t.Code == code {
			return t, true
		}
	}
	return Type{}, false
}

// Name returns the display name for a code, or the upper-cased code when
// the type is unknown.
func Name(code string) string {
	if t, ok := Lookup(code); ok {
		return t.Name
	}
	return strings.ToUpper(code)
}

// ParseType validates a user-supplied leave code
func ParseType(code string) (Type, error) {
	t, ok := Lookup(code)
	if !ok {
		return Type{}, fmt.Errorf("unknown leave type %q", code)
	}
	return t, nil
}
