package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
)

// History is an attendance history plus where it came from
type History struct {
	Logs      []models.DayLog
	FetchedAt time.Time
	Cached    bool
}

// History fetches the user's attendance history and refreshes the local
// cache. offline skips the server. A failed fetch falls back to the cache
// when one exists.
func (c *Context) History(user models.User, offline bool) (History, error) {
	id := user.Identifier()
	if !offline {
		logs, err := c.API.Attendance.History(c.Context(), id)
		if err == nil {
			now := c.Clock()
			if cerr := c.Store.SaveHistory(id, logs, now); cerr != nil {
				logger.Warn("failed to cache attendance history", "err", cerr)
			}
			return History{Logs: logs, FetchedAt: now}, nil
		}
		logger.Warn("attendance history fetch failed, trying cache", "err", err)
		h, cerr := c.cachedHistory(id)
		if cerr != nil {
			return History{}, err
		}
		return h, nil
	}
	return c.cachedHistory(id)
}

func (c *Context) cachedHistory(id string) (History, error) {
	logs, at, err := c.Store.GetHistory(id)
	if err != nil {
		return History{}, fmt.Errorf("no cached attendance history: %w", err)
	}
	return History{Logs: logs, FetchedAt: at, Cached: true}, nil
}
