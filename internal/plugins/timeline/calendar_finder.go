package timeline

import (
	"context"

	"github.com/MrFrey75/WorldBuilder/internal/calendar"
	"github.com/MrFrey75/WorldBuilder/internal/plugins/calendars"
)

// CalendarFinder resolves calendar IDs to their definitions for date
// formatting and arithmetic.
type CalendarFinder interface {
	FindCalendarByID(ctx context.Context, id string) (*calendar.Definition, error)
}

// CalendarFinderAdapter wraps calendars.CalendarRepository to satisfy the
// CalendarFinder interface. This adapter pattern keeps the calendars package
// out of the rest of this plugin; only this file references it.
type CalendarFinderAdapter struct {
	repo calendars.CalendarRepository
}

// NewCalendarFinderAdapter creates a new adapter around the calendar repository.
func NewCalendarFinderAdapter(repo calendars.CalendarRepository) CalendarFinder {
	return &CalendarFinderAdapter{repo: repo}
}

// FindCalendarByID looks up a calendar and returns its definition. Returns
// nil when the calendar does not exist.
func (a *CalendarFinderAdapter) FindCalendarByID(ctx context.Context, id string) (*calendar.Definition, error) {
	cal, err := a.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cal == nil {
		return nil, nil
	}
	def := cal.Definition
	return &def, nil
}
