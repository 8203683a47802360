package syncstate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchAll runs independent loads in parallel. The first failure cancels
// the others' context and is returned; partial results are not kept.
func FetchAll(ctx context.Context, fns ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		g.Go(func() error {
			return fn(gctx)
		})
	}
	return g.Wait()
}
