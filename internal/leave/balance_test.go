package leave

import (
	"testing"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
)

func req(code string, days float64, status constants.RequestStatus) models.LeaveRequest {
	return models.LeaveRequest{Type: code, Days: days, Status: status}
}

var sampleHistory = []models.LeaveRequest{
	req("cl", 2, constants.StatusApproved),
	req("cl", 1, constants.StatusPending),
	req("cl", 3, constants.StatusRejected),
	req("sl", 0.5, constants.StatusApproved),
	req("el", 4, constants.StatusPending),
}

func find(t *testing.T, items []BalanceItem, code string) BalanceItem {
	t.Helper()
	for _, it := range items {
		if it.Code == code {
			return it
		}
	}
	t.Fatalf("no balance item for %q", code)
	return BalanceItem{}
}

func TestAggregateIdentity(t *testing.T) {
	// Server figures computed the way the backend does: limit minus
	// approved and pending days.
	balances := []models.LeaveBalanceEntry{
		{Code: "cl", Available: 3},
		{Code: "sl", Available: 5.5},
		{Code: "el", Available: 13},
	}

	for _, mode := range []Mode{ModeNet, ModeGross} {
		t.Run(string(mode), func(t *testing.T) {
			for _, it := range Aggregate(sampleHistory, balances, mode) {
				if it.Total != it.Available+it.Consumed {
					t.Errorf("%s: total %v != available %v + consumed %v", it.Code, it.Total, it.Available, it.Consumed)
				}
			}
		})
	}
}

func TestAggregateNetDoesNotDoubleCount(t *testing.T) {
	// cl: limit 6, approved 2 + pending 1 already deducted by the server
	balances := []models.LeaveBalanceEntry{{Code: "cl", Available: 3}}

	cl := find(t, Aggregate(sampleHistory, balances, ModeNet), "cl")
	if cl.Consumed != 3 || cl.Pending != 1 {
		t.Errorf("consumed = %v pending = %v, want 3 and 1", cl.Consumed, cl.Pending)
	}
	if cl.Available != 3 {
		t.Errorf("available = %v, want the server's 3 untouched", cl.Available)
	}
	if cl.Total != 6 {
		t.Errorf("total = %v, want the allowance 6", cl.Total)
	}
}

func TestAggregateGrossDeductsPending(t *testing.T) {
	// Server only deducted the approved 2 days
	balances := []models.LeaveBalanceEntry{
		{Code: "cl", Available: 4},
		{Code: "el", Available: 2},
	}

	items := Aggregate(sampleHistory, balances, ModeGross)
	cl := find(t, items, "cl")
	if cl.Available != 3 || cl.Total != 6 {
		t.Errorf("cl = %+v, want available 3 total 6", cl)
	}
	// Pending exceeds what is left; availability clamps at zero
	el := find(t, items, "el")
	if el.Available != 0 || el.Total != 4 {
		t.Errorf("el = %+v, want available 0 total 4", el)
	}
}

func TestAggregateFallsBackToAllowance(t *testing.T) {
	items := Aggregate(sampleHistory, nil, ModeNet)
	if len(items) != len(Enforced) {
		t.Fatalf("got %d items, want %d", len(items), len(Enforced))
	}
	sl := find(t, items, "sl")
	if sl.Available != 5.5 || sl.Total != 6 || sl.Name != "SICK LEAVE" {
		t.Errorf("sl = %+v", sl)
	}
}

func TestAggregateKeepsExtraServerCodes(t *testing.T) {
	balances := []models.LeaveBalanceEntry{
		{Code: "bl", Available: 5},
		{Code: "cl", Available: 3},
	}
	items := Aggregate(nil, balances, ModeNet)
	if len(items) != 4 || items[3].Code != "bl" {
		t.Fatalf("items = %+v", items)
	}
	if items[0].Code != "cl" {
		t.Errorf("enforced types should come first, got %s", items[0].Code)
	}
	if TotalAvailable(items) != 3+6+17+5 {
		t.Errorf("TotalAvailable() = %v", TotalAvailable(items))
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeNet, false},
		{"net", ModeNet, false},
		{"gross", ModeGross, false},
		{"both", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
