package timeline

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
	"github.com/MrFrey75/WorldBuilder/internal/calendar"
	"github.com/MrFrey75/WorldBuilder/internal/sanitize"
)

// generateID creates a random UUID v4 string.
func generateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// AgeResult is the response shape for age queries.
type AgeResult struct {
	Age     int    `json:"age"`
	Display string `json:"display"`
}

// EventService defines business logic for the timeline plugin.
type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByUniverse(ctx context.Context, universeID string) ([]Event, error)
	ListByEntity(ctx context.Context, entityID string) ([]Event, error)
	Update(ctx context.Context, id string, input UpdateEventInput) (*Event, error)
	Delete(ctx context.Context, id string) error
	AgeSince(ctx context.Context, eventID string, atYear, atMonth, atDay int) (*AgeResult, error)
}

// eventService is the default EventService implementation.
type eventService struct {
	repo      EventRepository
	calendars CalendarFinder
}

// NewEventService creates an EventService.
func NewEventService(repo EventRepository, calendars CalendarFinder) EventService {
	return &eventService{repo: repo, calendars: calendars}
}

// calendarFor loads the definition an event's dates are expressed in.
func (s *eventService) calendarFor(ctx context.Context, calendarID string) (*calendar.Definition, error) {
	def, err := s.calendars.FindCalendarByID(ctx, calendarID)
	if err != nil {
		return nil, fmt.Errorf("loading event calendar: %w", err)
	}
	if def == nil {
		return nil, apperror.NewBadRequest("calendar not found")
	}
	return def, nil
}

// decorate fills the derived display fields from the event's calendar. The
// calendar lookup is permissive, so decoration never fails once the
// definition is loaded.
func decorate(ev *Event, def *calendar.Definition) {
	ev.DisplayDate = def.FormatDate(ev.Year, ev.Month, ev.Day)
	if ev.EndYear == nil {
		return
	}
	endMonth, endDay := 0, 0
	if ev.EndMonth != nil {
		endMonth = *ev.EndMonth
	}
	if ev.EndDay != nil {
		endDay = *ev.EndDay
	}
	ev.DisplayEndDate = def.FormatDate(*ev.EndYear, endMonth, endDay)

	days := calendar.CustomDaysBetween(ev.Year, ev.Month, ev.Day,
		*ev.EndYear, endMonth, endDay, *def)
	ev.Duration = calendar.FormatDuration(days)
}

// validateEventDates checks the date fields shared by create and update.
func validateEventDates(year, month, day int, endYear *int) error {
	if month < 0 || day < 0 {
		return apperror.NewBadRequest("event month and day must not be negative")
	}
	if endYear != nil && *endYear < year {
		return apperror.NewBadRequest("event end date must not precede its start")
	}
	return nil
}

// Create creates a timeline event dated on one of the universe's calendars.
func (s *eventService) Create(ctx context.Context, input CreateEventInput) (*Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewBadRequest("event title is required")
	}
	if len(title) > 200 {
		return nil, apperror.NewBadRequest("event title must be at most 200 characters")
	}
	if err := validateEventDates(input.Year, input.Month, input.Day, input.EndYear); err != nil {
		return nil, err
	}

	def, err := s.calendarFor(ctx, input.CalendarID)
	if err != nil {
		return nil, err
	}
	if def.UniverseID != input.UniverseID {
		return nil, apperror.NewBadRequest("calendar does not belong to this universe")
	}

	ev := &Event{
		ID:          generateID(),
		UniverseID:  input.UniverseID,
		CalendarID:  input.CalendarID,
		EntityID:    optionalID(input.EntityID),
		Title:       title,
		Description: sanitizedDescription(input.Description),
		Year:        input.Year,
		Month:       input.Month,
		Day:         input.Day,
		EndYear:     input.EndYear,
		EndMonth:    input.EndMonth,
		EndDay:      input.EndDay,
	}

	if err := s.repo.Create(ctx, ev); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	decorate(ev, def)
	return ev, nil
}

// GetByID returns an event with its display fields populated.
func (s *eventService) GetByID(ctx context.Context, id string) (*Event, error) {
	ev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if ev == nil {
		return nil, apperror.NewNotFound("event not found")
	}

	def, err := s.calendarFor(ctx, ev.CalendarID)
	if err != nil {
		return nil, err
	}
	decorate(ev, def)
	return ev, nil
}

// ListByUniverse returns a universe's events in chronological order, display
// fields populated. Calendar definitions are cached per call since a
// timeline usually spans few calendars.
func (s *eventService) ListByUniverse(ctx context.Context, universeID string) ([]Event, error) {
	events, err := s.repo.ListByUniverse(ctx, universeID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return s.decorateAll(ctx, events)
}

// ListByEntity returns the events linked to an entity in chronological order.
func (s *eventService) ListByEntity(ctx context.Context, entityID string) ([]Event, error) {
	events, err := s.repo.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return s.decorateAll(ctx, events)
}

func (s *eventService) decorateAll(ctx context.Context, events []Event) ([]Event, error) {
	defs := make(map[string]*calendar.Definition)
	for i := range events {
		def, ok := defs[events[i].CalendarID]
		if !ok {
			var err error
			def, err = s.calendarFor(ctx, events[i].CalendarID)
			if err != nil {
				return nil, err
			}
			defs[events[i].CalendarID] = def
		}
		decorate(&events[i], def)
	}
	return events, nil
}

// Update modifies an event. The calendar link is immutable; moving an event
// to another reckoning means delete and recreate.
func (s *eventService) Update(ctx context.Context, id string, input UpdateEventInput) (*Event, error) {
	ev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if ev == nil {
		return nil, apperror.NewNotFound("event not found")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewBadRequest("event title is required")
	}
	if len(title) > 200 {
		return nil, apperror.NewBadRequest("event title must be at most 200 characters")
	}
	if err := validateEventDates(input.Year, input.Month, input.Day, input.EndYear); err != nil {
		return nil, err
	}

	ev.Title = title
	ev.Description = sanitizedDescription(input.Description)
	ev.Year = input.Year
	ev.Month = input.Month
	ev.Day = input.Day
	ev.EndYear = input.EndYear
	ev.EndMonth = input.EndMonth
	ev.EndDay = input.EndDay

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	def, err := s.calendarFor(ctx, ev.CalendarID)
	if err != nil {
		return nil, err
	}
	decorate(ev, def)
	return ev, nil
}

// Delete removes an event.
func (s *eventService) Delete(ctx context.Context, id string) error {
	ev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if ev == nil {
		return apperror.NewNotFound("event not found")
	}
	return s.repo.Delete(ctx, id)
}

// AgeSince computes whole years from an event's date to the given date in
// the event's calendar. When the at-date is all zeros, the calendar's
// current-date bookmark is used instead. Useful for figure ages when the
// event records a birth.
func (s *eventService) AgeSince(ctx context.Context, eventID string, atYear, atMonth, atDay int) (*AgeResult, error) {
	ev, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if ev == nil {
		return nil, apperror.NewNotFound("event not found")
	}

	def, err := s.calendarFor(ctx, ev.CalendarID)
	if err != nil {
		return nil, err
	}

	if atYear == 0 && atMonth == 0 && atDay == 0 {
		if def.CurrentYear == nil {
			return nil, apperror.NewBadRequest("no at-date given and the calendar has no current date")
		}
		atYear = *def.CurrentYear
		if def.CurrentMonth != nil {
			atMonth = *def.CurrentMonth
		}
		if def.CurrentDay != nil {
			atDay = *def.CurrentDay
		}
	}

	age := calendar.CustomAge(ev.Year, ev.Month, ev.Day, atYear, atMonth, atDay, *def)
	return &AgeResult{
		Age:     age,
		Display: fmt.Sprintf("%d years old as of %s", age, def.FormatDate(atYear, atMonth, atDay)),
	}, nil
}

// sanitizedDescription strips unsafe HTML and converts empty input to nil.
func sanitizedDescription(raw string) *string {
	clean := strings.TrimSpace(sanitize.HTML(raw))
	if clean == "" {
		return nil
	}
	return &clean
}

// optionalID converts an empty ID string to nil.
func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
