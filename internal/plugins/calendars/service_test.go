package calendars

import (
	"context"
	"errors"
	"testing"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
	"github.com/MrFrey75/WorldBuilder/internal/calendar"
)

// mockCalendarRepo implements CalendarRepository for testing.
type mockCalendarRepo struct {
	createFn         func(ctx context.Context, cal *Calendar) error
	findByIDFn       func(ctx context.Context, id string) (*Calendar, error)
	listByUniverseFn func(ctx context.Context, universeID string) ([]Calendar, error)
	updateFn         func(ctx context.Context, cal *Calendar) error
	deleteFn         func(ctx context.Context, id string) error
}

func (m *mockCalendarRepo) Create(ctx context.Context, cal *Calendar) error {
	if m.createFn != nil {
		return m.createFn(ctx, cal)
	}
	return nil
}

func (m *mockCalendarRepo) FindByID(ctx context.Context, id string) (*Calendar, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCalendarRepo) ListByUniverse(ctx context.Context, universeID string) ([]Calendar, error) {
	if m.listByUniverseFn != nil {
		return m.listByUniverseFn(ctx, universeID)
	}
	return nil, nil
}

func (m *mockCalendarRepo) Update(ctx context.Context, cal *Calendar) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, cal)
	}
	return nil
}

func (m *mockCalendarRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
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

// repoWithCalendar returns a repo whose FindByID always yields the given
// definition.
func repoWithCalendar(def calendar.Definition) *mockCalendarRepo {
	return &mockCalendarRepo{
		findByIDFn: func(_ context.Context, _ string) (*Calendar, error) {
			return &Calendar{Definition: def}, nil
		},
	}
}

func TestCreate_AppliesDefaults(t *testing.T) {
	var created *Calendar
	repo := &mockCalendarRepo{
		createFn: func(_ context.Context, cal *Calendar) error {
			created = cal
			return nil
		},
	}
	svc := NewCalendarService(repo)

	cal, err := svc.Create(context.Background(), "uni-1", CreateCalendarRequest{
		Name: "Royal Reckoning",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.DaysPerWeek != 7 || cal.MonthsPerYear != 12 || cal.DaysPerYear != 365 {
		t.Errorf("expected Gregorian defaults, got %d/%d/%d",
			cal.DaysPerWeek, cal.MonthsPerYear, cal.DaysPerYear)
	}
	if len(cal.Months) != 12 {
		t.Errorf("expected 12 default months, got %d", len(cal.Months))
	}
	if cal.EpochAbbreviation != "CE" {
		t.Errorf("expected default epoch abbreviation 'CE', got %q", cal.EpochAbbreviation)
	}
	if created == nil || created.UniverseID != "uni-1" {
		t.Error("expected repository create with the universe ID set")
	}
}

func TestCreate_KeepsCustomStructure(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepo{})

	cal, err := svc.Create(context.Background(), "uni-1", CreateCalendarRequest{
		Name:          "Twin Moons",
		DaysPerWeek:   5,
		MonthsPerYear: 10,
		DaysPerYear:   300,
		Months: []calendar.MonthDef{
			{Name: "Dawn", Days: 30}, {Name: "Dusk", Days: 30},
		},
		Weekdays: []string{"Oneday", "Twoday", "Threeday", "Fourday", "Fiveday"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.DaysPerWeek != 5 || cal.DaysPerYear != 300 {
		t.Errorf("expected custom structure to be kept, got %d/%d", cal.DaysPerWeek, cal.DaysPerYear)
	}
	if cal.MonthName(1) != "Dawn" {
		t.Errorf("expected first month 'Dawn', got %q", cal.MonthName(1))
	}
}

func TestCreate_EmptyName(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepo{})
	_, err := svc.Create(context.Background(), "uni-1", CreateCalendarRequest{Name: " "})
	assertAppError(t, err, 400)
}

func TestCreateFromPreset_Tolkien(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepo{})

	cal, err := svc.CreateFromPreset(context.Background(), "uni-1", FromPresetRequest{
		Preset: calendar.PresetTolkien,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.EpochAbbreviation != "SR" {
		t.Errorf("expected Shire Reckoning abbreviation 'SR', got %q", cal.EpochAbbreviation)
	}
	if cal.MonthName(1) != "Afteryule" {
		t.Errorf("expected first month 'Afteryule', got %q", cal.MonthName(1))
	}
}

func TestCreateFromPreset_UnknownFallsBack(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepo{})

	cal, err := svc.CreateFromPreset(context.Background(), "uni-1", FromPresetRequest{
		Preset: "klingon",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.MonthsPerYear != 12 || cal.DaysPerYear != 365 {
		t.Errorf("expected Gregorian fallback, got %d months / %d days",
			cal.MonthsPerYear, cal.DaysPerYear)
	}
}

func TestCreateFromPreset_NameOverride(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepo{})

	cal, err := svc.CreateFromPreset(context.Background(), "uni-1", FromPresetRequest{
		Preset: calendar.PresetFantasy13,
		Name:   "Reckoning of the Thirteen",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.Name != "Reckoning of the Thirteen" {
		t.Errorf("expected overridden name, got %q", cal.Name)
	}
	if cal.MonthsPerYear != 13 {
		t.Errorf("expected 13 months, got %d", cal.MonthsPerYear)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewCalendarService(&mockCalendarRepo{})
	_, err := svc.GetByID(context.Background(), "missing")
	assertAppError(t, err, 404)
}

func TestSetCurrentDate_SetAndClear(t *testing.T) {
	var updated *Calendar
	def := calendar.New("cal-1", "Shire Reckoning", "uni-1")
	repo := repoWithCalendar(def)
	repo.updateFn = func(_ context.Context, cal *Calendar) error {
		updated = cal
		return nil
	}
	svc := NewCalendarService(repo)

	year, month, day := 1420, 6, 22
	cal, err := svc.SetCurrentDate(context.Background(), "cal-1", CurrentDateRequest{
		Year: &year, Month: &month, Day: &day,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.CurrentYear == nil || *cal.CurrentYear != 1420 {
		t.Errorf("expected current year 1420, got %v", cal.CurrentYear)
	}
	if updated == nil {
		t.Fatal("expected repository update to be called")
	}

	cal, err = svc.SetCurrentDate(context.Background(), "cal-1", CurrentDateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.CurrentYear != nil || cal.CurrentMonth != nil || cal.CurrentDay != nil {
		t.Error("expected nil year to clear the current date")
	}
}

func TestConvertToCustom_BadDate(t *testing.T) {
	svc := NewCalendarService(repoWithCalendar(calendar.New("cal-1", "Test", "uni-1")))
	_, err := svc.ConvertToCustom(context.Background(), "cal-1", "June 15th")
	assertAppError(t, err, 400)
}

func TestConvertToCustom_ReferenceDate(t *testing.T) {
	svc := NewCalendarService(repoWithCalendar(calendar.New("cal-1", "Test", "uni-1")))

	result, err := svc.ConvertToCustom(context.Background(), "cal-1", "0001-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Year != 1 || result.Month != 1 || result.Day != 1 {
		t.Errorf("expected 1/1/1, got %d/%d/%d", result.Year, result.Month, result.Day)
	}
	if result.MonthName != "January" {
		t.Errorf("expected month name 'January', got %q", result.MonthName)
	}
	if result.Display != "1 January 1 CE" {
		t.Errorf("unexpected display %q", result.Display)
	}
}

func TestConvertToStandard_EpochStart(t *testing.T) {
	svc := NewCalendarService(repoWithCalendar(calendar.New("cal-1", "Test", "uni-1")))

	date, err := svc.ConvertToStandard(context.Background(), "cal-1", 0, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date != "0001-01-02" {
		t.Errorf("expected 0001-01-02, got %q", date)
	}
}

func TestFormat_Display(t *testing.T) {
	def := calendar.NewFromPreset(calendar.PresetTolkien, "uni-1", "cal-1")
	svc := NewCalendarService(repoWithCalendar(def))

	display, err := svc.Format(context.Background(), "cal-1", 1420, 1, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if display != "15 Afteryule 1420 SR" {
		t.Errorf("unexpected display %q", display)
	}
}

func TestAgeBetween(t *testing.T) {
	svc := NewCalendarService(repoWithCalendar(calendar.New("cal-1", "Test", "uni-1")))

	age, err := svc.AgeBetween(context.Background(), "cal-1", AgeRequest{
		BirthYear: 2890, BirthMonth: 9, BirthDay: 22,
		CurrentYear: 3001, CurrentMonth: 9, CurrentDay: 22,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if age != 111 {
		t.Errorf("expected age 111, got %d", age)
	}
}
