package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/julianstephens/hrportal/internal/models"
)

// LeaveService covers leave history, balances and approvals
type LeaveService struct{ c *Client }

// List returns the employee's leave history
func (s *LeaveService) List(ctx context.Context, employeeID string) ([]models.LeaveRequest, error) {
	var rs []models.LeaveRequest
	if err := s.c.get(ctx, "/leaves/"+seg(employeeID)+"/", nil, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// Balance returns per-type availability. The server answers either with
// [{code, available}] or with {cl, sl, el, total}; both are accepted and
// the object's "total" key is dropped.
func (s *LeaveService) Balance(ctx context.Context, employeeID string) ([]models.LeaveBalanceEntry, error) {
	var raw json.RawMessage
	if err := s.c.get(ctx, "/leaves/balance/"+seg(employeeID)+"/", nil, &raw); err != nil {
		return nil, err
	}
	return decodeBalance(raw)
}

func decodeBalance(raw json.RawMessage) ([]models.LeaveBalanceEntry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	if raw[0] == '[' {
		var entries []models.LeaveBalanceEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode leave balance: %w", err)
		}
		return entries, nil
	}

	var obj map[string]json.Number
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode leave balance: %w", err)
	}
	entries := make([]models.LeaveBalanceEntry, 0, len(obj))
	for code, n := range obj {
		if code == "total" {
			continue
		}
		v, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid balance for %q: %w", code, err)
		}
		entries = append(entries, models.LeaveBalanceEntry{Code: code, Available: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries, nil
}

// Apply submits a leave application
func (s *LeaveService) Apply(ctx context.Context, app models.LeaveApplication) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := s.c.post(ctx, "/leaves/apply/", app, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Pending lists leave requests awaiting approval
func (s *LeaveService) Pending(ctx context.Context) ([]models.LeaveRequest, error) {
	var rs []models.LeaveRequest
	if err := s.c.get(ctx, "/leaves/pending/", nil, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// Action approves or rejects a leave request ("Approve"/"Reject")
func (s *LeaveService) Action(ctx context.Context, id int, action string) error {
	return s.c.post(ctx, "/leaves/"+itoa(id)+"/action/", models.ActionRequest{Action: action}, nil)
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
