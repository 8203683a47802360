package clock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/syncstate"
	"github.com/julianstephens/hrportal/internal/validation"
)

type fakeRegs struct {
	submitted []models.RegularizationRequest
	scopes    []string
	actionErr error
}

func (f *fakeRegs) Regularize(_ context.Context, req models.RegularizationRequest) (*models.MessageResponse, error) {
	f.submitted = append(f.submitted, req)
	return &models.MessageResponse{Message: "submitted"}, nil
}

func (f *fakeRegs) Regularizations(_ context.Context, _ string, role string) ([]models.Regularization, error) {
	if role == ScopeOwn {
		return []models.Regularization{{ID: 1, Status: constants.StatusPending}}, nil
	}
	return []models.Regularization{
		{ID: 2, Status: constants.StatusPending},
		{ID: 3, Status: constants.StatusApproved},
	}, nil
}

func (f *fakeRegs) ActionRegularization(context.Context, int, string) error { return f.actionErr }

func TestRegularizeValidatesFirst(t *testing.T) {
	api := &fakeRegs{}
	v := validation.New()
	today := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	pending := models.RegularizationRequest{EmployeeID: "E1", Date: "2026-01-07", CheckOutTime: "06:30 PM", Reason: "forgot"}
	if _, err := Regularize(context.Background(), api, v, pending, today); err == nil {
		t.Error("regularizing today should fail")
	}
	if len(api.submitted) != 0 {
		t.Fatal("invalid request was sent")
	}

	past := pending
	past.Date = "2026-01-06"
	if _, err := Regularize(context.Background(), api, v, past, today); err != nil {
		t.Fatalf("Regularize() error = %v", err)
	}
	if len(api.submitted) != 1 {
		t.Errorf("sent %d requests", len(api.submitted))
	}
}

func TestLoadQueues(t *testing.T) {
	api := &fakeRegs{}

	q, err := LoadQueues(context.Background(), api, models.User{EmployeeID: "E1", Role: constants.RoleEmployee})
	if err != nil {
		t.Fatalf("LoadQueues() error = %v", err)
	}
	if q.Team != nil || q.Pending(false) != 1 {
		t.Errorf("employee queues = %+v", q)
	}

	q, err = LoadQueues(context.Background(), api, models.User{EmployeeID: "M1", IsManager: true})
	if err != nil {
		t.Fatalf("LoadQueues() error = %v", err)
	}
	if q.Pending(true) != 2 {
		t.Errorf("manager pending = %d, want 2", q.Pending(true))
	}
}

func TestDecideRestoresBadge(t *testing.T) {
	badge := syncstate.NewRegularizationBadge()
	if err := badge.Refresh(context.Background(), func(context.Context) (int, error) { return 2, nil }); err != nil {
		t.Fatal(err)
	}

	api := &fakeRegs{actionErr: errors.New("403")}
	if err := Decide(context.Background(), api, badge, 2, "Approved"); err == nil {
		t.Error("Decide() should surface the failure")
	}
	if badge.Count() != 2 {
		t.Errorf("Count() = %d after failure, want 2", badge.Count())
	}

	api.actionErr = nil
	if err := Decide(context.Background(), api, badge, 2, "Approved"); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if badge.Count() != 1 {
		t.Errorf("Count() = %d, want 1", badge.Count())
	}
}
