package storage

import (
	"context"

	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
)

// HolidayAPI fetches the holiday list
type HolidayAPI interface {
	Holidays(ctx context.Context) ([]models.Holiday, error)
}

// CachedHolidays refreshes the local holiday cache on every successful
// fetch and serves from it when the server cannot be reached.
type CachedHolidays struct {
	API   HolidayAPI
	Store Provider
}

func (h *CachedHolidays) Holidays(ctx context.Context) ([]models.Holiday, error) {
	hs, err := h.API.Holidays(ctx)
	if err == nil {
		if cerr := h.Store.SaveHolidays(hs); cerr != nil {
			logger.Warn("failed to cache holidays", "err", cerr)
		}
		return hs, nil
	}

	cached, cerr := h.Store.GetHolidays()
	if cerr != nil || len(cached) == 0 {
		return nil, err
	}
	logger.Warn("using cached holidays", "err", err)
	return cached, nil
}
