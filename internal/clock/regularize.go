package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/syncstate"
	"github.com/julianstephens/hrportal/internal/validation"
)

// Regularization list scopes accepted by the backend
const (
	ScopeOwn  = "employee"
	ScopeTeam = "manager"
)

// RegularizationAPI is the slice of the REST client that handles missed
// check-out corrections.
type RegularizationAPI interface {
	Regularize(ctx context.Context, req models.RegularizationRequest) (*models.MessageResponse, error)
	Regularizations(ctx context.Context, userID, role string) ([]models.Regularization, error)
	ActionRegularization(ctx context.Context, id int, action string) error
}

// Regularize validates req against today and submits it
func Regularize(ctx context.Context, api RegularizationAPI, v *validation.Validator, req models.RegularizationRequest, today time.Time) (*models.MessageResponse, error) {
	result := v.ValidateRegularization(req, today)
	if err := result.Err(); err != nil {
		return nil, err
	}
	resp, err := api.Regularize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit regularization: %w", err)
	}
	logger.Info("regularization submitted", "date", req.Date, "check_out", req.CheckOutTime)
	return resp, nil
}

// Queues holds a user's own regularizations and, for approvers, the team's
type Queues struct {
	Own  []models.Regularization
	Team []models.Regularization
}

// Pending is the badge count for these queues
func (q Queues) Pending(canApprove bool) int {
	return syncstate.PendingRegularizations(q.Own, q.Team, canApprove)
}

// LoadQueues fetches the user's queues in parallel. Team requests are only
// asked for when the user can approve them.
func LoadQueues(ctx context.Context, api RegularizationAPI, user models.User) (Queues, error) {
	var q Queues
	fns := []func(context.Context) error{
		func(ctx context.Context) error {
			rs, err := api.Regularizations(ctx, user.Identifier(), ScopeOwn)
			q.Own = rs
			return err
		},
	}
	if user.CanApprove() {
		fns = append(fns, func(ctx context.Context) error {
			rs, err := api.Regularizations(ctx, user.Identifier(), ScopeTeam)
			q.Team = rs
			return err
		})
	}
	if err := syncstate.FetchAll(ctx, fns...); err != nil {
		return Queues{}, fmt.Errorf("failed to load regularizations: %w", err)
	}
	return q, nil
}

// Decide approves or rejects a team request. The badge drops immediately
// and is restored if the server refuses.
func Decide(ctx context.Context, api RegularizationAPI, badge *syncstate.RegularizationBadge, id int, action string) error {
	tk := badge.Decrement()
	err := api.ActionRegularization(ctx, id, action)
	badge.Settle(tk, err)
	if err != nil {
		logger.Warn("regularization action failed", "id", id, "action", action, "err", err)
		return fmt.Errorf("failed to %s regularization %d: %w", actionVerb(action), id, err)
	}
	return nil
}

func actionVerb(action string) string {
	switch action {
	case "Approved":
		return "approve"
	case "Rejected":
		return "reject"
	default:
		return action
	}
}
