package syncstate

import (
	"context"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
)

// PendingRegularizations counts the user's own pending requests plus, for
// approvers, the team's pending requests.
func PendingRegularizations(own, team []models.Regularization, canApprove bool) int {
	n := countPending(own)
	if canApprove {
		n += countPending(team)
	}
	return n
}

func countPending(rs []models.Regularization) int {
	n := 0
	for _, r := range rs {
		if r.Status == constants.StatusPending {
			n++
		}
	}
	return n
}

// RegularizationBadge is the regularization counter shown on the attendance tab
type RegularizationBadge struct {
	store *Store[int]
}

// NewRegularizationBadge creates a zeroed badge
func NewRegularizationBadge() *RegularizationBadge {
	return &RegularizationBadge{store: NewStore(0, nil)}
}

// Count returns the displayed value
func (b *RegularizationBadge) Count() int {
	return b.store.Get()
}

// Refresh recomputes the count from load. A result that raced a local
// decrement is dropped.
func (b *RegularizationBadge) Refresh(ctx context.Context, load func(context.Context) (int, error)) error {
	tok := b.store.BeginFetch()
	n, err := load(ctx)
	if err != nil {
		return err
	}
	b.store.Reconcile(tok, n)
	return nil
}

// Decrement lowers the count as soon as a request is actioned
func (b *RegularizationBadge) Decrement() Ticket {
	dec := func(n int) int { return max(0, n-1) }
	inc := func(n int) int { return n + 1 }
	return b.store.Mutate(dec, inc)
}

// Settle commits or rolls back a decrement once the action resolves
func (b *RegularizationBadge) Settle(t Ticket, err error) {
	if err != nil {
		b.store.Rollback(t)
		return
	}
	b.store.Commit(t)
}
