package leave

import (
	"fmt"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
)

// Mode states what the server's "available" figure has already deducted
type Mode string

const (
	// ModeNet: available already nets out Approved and Pending requests
	ModeNet Mode = constants.BalanceModeNet
	// ModeGross: available only nets out Approved requests
	ModeGross Mode = constants.BalanceModeGross
)

// ParseMode reads a balance_mode setting. Empty means ModeNet.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", constants.BalanceModeNet:
		return ModeNet, nil
	case constants.BalanceModeGross:
		return ModeGross, nil
	default:
		return "", fmt.Errorf("invalid balance mode %q (want %q or %q)", s, constants.BalanceModeNet, constants.BalanceModeGross)
	}
}

// BalanceItem is one leave type's balance as displayed. Total always
// equals Available + Consumed.
type BalanceItem struct {
	Code      string
	Name      string
	Consumed  float64
	Pending   float64
	Available float64
	Total     float64
}

// Consumed sums the days of Approved and Pending requests of one type
func Consumed(history []models.LeaveRequest, code string) (consumed, pending float64) {
	for _, r := range history {
		if r.Type != code {
			continue
		}
		switch r.Status {
		case constants.StatusApproved:
			consumed += r.Days
		case constants.StatusPending:
			consumed += r.Days
			pending += r.Days
		}
	}
	return consumed, pending
}

// Aggregate joins the leave history with the server's per-type availability.
// Enforced types without a server figure fall back to their allowance minus
// what the history consumes. Extra codes reported by the server follow the
// enforced ones.
func Aggregate(history []models.LeaveRequest, balances []models.LeaveBalanceEntry, mode Mode) []BalanceItem {
	reported := make(map[string]float64, len(balances))
	var extra []string
	for _, b := range balances {
		if _, seen := reported[b.Code]; !seen && !isEnforced(b.Code) {
			extra = append(extra, b.Code)
		}
		reported[b.Code] = b.Available
	}

	items := make([]BalanceItem, 0, len(Enforced)+len(extra))
	for _, code := range append(append([]string{}, Enforced...), extra...) {
		consumed, pending := Consumed(history, code)
		available, ok := reported[code]
		if !ok {
			t, _ := Lookup(code)
			available = max(0, t.Limit-consumed)
		} else if mode == ModeGross {
			available = max(0, available-pending)
		}
		items = append(items, BalanceItem{
			Code:      code,
			Name:      Name(code),
			Consumed:  consumed,
			Pending:   pending,
			Available: available,
			Total:     available + consumed,
		})
	}
	return items
}

// TotalAvailable sums availability across items
func TotalAvailable(items []BalanceItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Available
	}
	return total
}

func isEnforced(code string) bool {
	for _, c := range Enforced {
		if c == code {
			return true
		}
	}
	return false
}
