package timeline

import (
	"context"
	"errors"
	"testing"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
	"github.com/MrFrey75/WorldBuilder/internal/calendar"
)

// mockEventRepo implements EventRepository for testing.
type mockEventRepo struct {
	createFn         func(ctx context.Context, ev *Event) error
	findByIDFn       func(ctx context.Context, id string) (*Event, error)
	listByUniverseFn func(ctx context.Context, universeID string) ([]Event, error)
	listByEntityFn   func(ctx context.Context, entityID string) ([]Event, error)
	updateFn         func(ctx context.Context, ev *Event) error
	deleteFn         func(ctx context.Context, id string) error
}

func (m *mockEventRepo) Create(ctx context.Context, ev *Event) error {
	if m.createFn != nil {
		return m.createFn(ctx, ev)
	}
	return nil
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*Event, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockEventRepo) ListByUniverse(ctx context.Context, universeID string) ([]Event, error) {
	if m.listByUniverseFn != nil {
		return m.listByUniverseFn(ctx, universeID)
	}
	return nil, nil
}

func (m *mockEventRepo) ListByEntity(ctx context.Context, entityID string) ([]Event, error) {
	if m.listByEntityFn != nil {
		return m.listByEntityFn(ctx, entityID)
	}
	return nil, nil
}

func (m *mockEventRepo) Update(ctx context.Context, ev *Event) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ev)
	}
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockCalendarFinder implements CalendarFinder for testing.
type mockCalendarFinder struct {
	findFn func(ctx context.Context, id string) (*calendar.Definition, error)
}

func (m *mockCalendarFinder) FindCalendarByID(ctx context.Context, id string) (*calendar.Definition, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return nil, nil
}

// assertAppError checks that an error is an AppError with the expected code.
func assertAppError(t *testing.T, err error, expectedCode int) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected status code %d, got %d (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// shireFinder resolves every calendar ID to a Shire Reckoning definition
// owned by uni-1.
func shireFinder() CalendarFinder {
	return &mockCalendarFinder{
		findFn: func(_ context.Context, id string) (*calendar.Definition, error) {
			def := calendar.NewFromPreset(calendar.PresetTolkien, "uni-1", id)
			return &def, nil
		},
	}
}

func intPtr(n int) *int { return &n }

func TestCreate_DecoratesDisplayDate(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, shireFinder())

	ev, err := svc.Create(context.Background(), CreateEventInput{
		UniverseID: "uni-1",
		CalendarID: "cal-1",
		Title:      "Bilbo's Farewell Party",
		Year:       1401, Month: 9, Day: 22,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.DisplayDate != "22 Halimath 1401 SR" {
		t.Errorf("unexpected display date %q", ev.DisplayDate)
	}
	if ev.Duration != "" {
		t.Errorf("expected no duration for a point event, got %q", ev.Duration)
	}
}

func TestCreate_SpanGetsDuration(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, shireFinder())

	ev, err := svc.Create(context.Background(), CreateEventInput{
		UniverseID: "uni-1",
		CalendarID: "cal-1",
		Title:      "The Long Winter",
		Year:       2758, Month: 11, Day: 1,
		EndYear: intPtr(2759), EndMonth: intPtr(3), EndDay: intPtr(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.DisplayEndDate == "" {
		t.Error("expected a display end date")
	}
	// 2758-11-01 to 2759-03-01 spans 125 days in the 365-day reckoning.
	if ev.Duration != "4 months" {
		t.Errorf("expected duration '4 months', got %q", ev.Duration)
	}
}

func TestCreate_EmptyTitle(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, shireFinder())
	_, err := svc.Create(context.Background(), CreateEventInput{
		UniverseID: "uni-1",
		CalendarID: "cal-1",
		Title:      " ",
		Year:       1401,
	})
	assertAppError(t, err, 400)
}

func TestCreate_EndBeforeStart(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, shireFinder())
	_, err := svc.Create(context.Background(), CreateEventInput{
		UniverseID: "uni-1",
		CalendarID: "cal-1",
		Title:      "Backwards",
		Year:       1401, EndYear: intPtr(1400),
	})
	assertAppError(t, err, 400)
}

func TestCreate_UnknownCalendar(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, &mockCalendarFinder{})
	_, err := svc.Create(context.Background(), CreateEventInput{
		UniverseID: "uni-1",
		CalendarID: "missing",
		Title:      "Orphaned",
		Year:       1401,
	})
	assertAppError(t, err, 400)
}

func TestCreate_CalendarFromOtherUniverse(t *testing.T) {
	finder := &mockCalendarFinder{
		findFn: func(_ context.Context, id string) (*calendar.Definition, error) {
			def := calendar.New(id, "Foreign Reckoning", "uni-2")
			return &def, nil
		},
	}
	svc := NewEventService(&mockEventRepo{}, finder)
	_, err := svc.Create(context.Background(), CreateEventInput{
		UniverseID: "uni-1",
		CalendarID: "cal-1",
		Title:      "Misfiled",
		Year:       1401,
	})
	assertAppError(t, err, 400)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, shireFinder())
	_, err := svc.GetByID(context.Background(), "missing")
	assertAppError(t, err, 404)
}

func TestListByUniverse_DecoratesEveryEvent(t *testing.T) {
	repo := &mockEventRepo{
		listByUniverseFn: func(_ context.Context, _ string) ([]Event, error) {
			return []Event{
				{ID: "ev-1", CalendarID: "cal-1", Title: "First", Year: 1000, Month: 1, Day: 1},
				{ID: "ev-2", CalendarID: "cal-1", Title: "Second", Year: 1100, Month: 2, Day: 2},
			}, nil
		},
	}
	svc := NewEventService(repo, shireFinder())

	events, err := svc.ListByUniverse(context.Background(), "uni-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.DisplayDate == "" {
			t.Errorf("event %s missing display date", ev.ID)
		}
	}
}

func TestAgeSince_ExplicitDate(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(_ context.Context, _ string) (*Event, error) {
			return &Event{ID: "ev-1", CalendarID: "cal-1", Title: "Birth of Bilbo",
				Year: 2890, Month: 9, Day: 22}, nil
		},
	}
	svc := NewEventService(repo, shireFinder())

	result, err := svc.AgeSince(context.Background(), "ev-1", 3001, 9, 22)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Age != 111 {
		t.Errorf("expected age 111, got %d", result.Age)
	}
}

func TestAgeSince_UsesCalendarCurrentDate(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(_ context.Context, _ string) (*Event, error) {
			return &Event{ID: "ev-1", CalendarID: "cal-1", Title: "Birth",
				Year: 1300, Month: 5, Day: 10}, nil
		},
	}
	year, month, day := 1350, 5, 9
	finder := &mockCalendarFinder{
		findFn: func(_ context.Context, id string) (*calendar.Definition, error) {
			def := calendar.NewFromPreset(calendar.PresetTolkien, "uni-1", id)
			def.CurrentYear, def.CurrentMonth, def.CurrentDay = &year, &month, &day
			return &def, nil
		},
	}
	svc := NewEventService(repo, finder)

	result, err := svc.AgeSince(context.Background(), "ev-1", 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One day before the anniversary: still 49.
	if result.Age != 49 {
		t.Errorf("expected age 49, got %d", result.Age)
	}
}

func TestAgeSince_NoCurrentDate(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(_ context.Context, _ string) (*Event, error) {
			return &Event{ID: "ev-1", CalendarID: "cal-1", Title: "Birth",
				Year: 1300, Month: 5, Day: 10}, nil
		},
	}
	svc := NewEventService(repo, shireFinder())
	_, err := svc.AgeSince(context.Background(), "ev-1", 0, 0, 0)
	assertAppError(t, err, 400)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, shireFinder())
	err := svc.Delete(context.Background(), "missing")
	assertAppError(t, err, 404)
}
