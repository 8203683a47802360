package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/hrportal/internal/errors"
	"github.com/julianstephens/hrportal/internal/syncstate"
)

// PollInterval turns a poll_*_sec setting into a duration of at least a second
func PollInterval(sec int) time.Duration {
	return time.Duration(max(1, sec)) * time.Second
}

// Watch renders once, then re-renders every interval until the command's
// context is canceled. A failed first render is returned; later failures
// are printed and polling continues.
func (c *Context) Watch(name string, interval time.Duration, render func(ctx context.Context) error) error {
	if err := render(c.Context()); err != nil {
		return err
	}
	c.Println(MutedStyle.Render(fmt.Sprintf("Refreshing every %s. Press Ctrl+C to stop.", interval)))

	// Output from a canceled run must not interleave with its replacement
	var mu sync.Mutex
	poller := syncstate.NewPoller(c.Context())
	err := poller.Every(name, interval, func(ctx context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Println()
		c.Println(MutedStyle.Render("Updated " + c.Clock().Format("15:04:05")))
		if err := render(ctx); err != nil {
			if ctx.Err() == nil {
				c.Println(errors.Message(err))
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	poller.Start()
	<-c.Context().Done()
	poller.Stop()
	return nil
}
