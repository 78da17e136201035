package calendars

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
	"github.com/MrFrey75/WorldBuilder/internal/calendar"
)

// generateID creates a random UUID v4 string.
func generateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// ConversionResult is the response shape for both converter directions and
// the format helper.
type ConversionResult struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"month_name,omitempty"`
	Display   string `json:"display"`
}

// CalendarService defines business logic for the calendars plugin.
type CalendarService interface {
	Create(ctx context.Context, universeID string, req CreateCalendarRequest) (*Calendar, error)
	CreateFromPreset(ctx context.Context, universeID string, req FromPresetRequest) (*Calendar, error)
	GetByID(ctx context.Context, id string) (*Calendar, error)
	ListByUniverse(ctx context.Context, universeID string) ([]Calendar, error)
	Update(ctx context.Context, id string, req CreateCalendarRequest) (*Calendar, error)
	SetCurrentDate(ctx context.Context, id string, req CurrentDateRequest) (*Calendar, error)
	Delete(ctx context.Context, id string) error

	ConvertToCustom(ctx context.Context, id string, standardDate string) (*ConversionResult, error)
	ConvertToStandard(ctx context.Context, id string, year, month, day int) (string, error)
	Format(ctx context.Context, id string, year, month, day int) (string, error)
	AgeBetween(ctx context.Context, id string, req AgeRequest) (int, error)
}

// calendarService is the default CalendarService implementation.
type calendarService struct {
	repo CalendarRepository
}

// NewCalendarService creates a CalendarService backed by the given repository.
func NewCalendarService(repo CalendarRepository) CalendarService {
	return &calendarService{repo: repo}
}

// validateName checks the shared calendar name rules.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.NewBadRequest("calendar name is required")
	}
	if len(name) > 200 {
		return "", apperror.NewBadRequest("calendar name must be at most 200 characters")
	}
	return name, nil
}

// definitionFromRequest builds a Definition from a create/update payload.
// Omitted structural fields take Gregorian defaults.
func definitionFromRequest(id, name, universeID string, req CreateCalendarRequest) calendar.Definition {
	def := calendar.Definition{
		ID:                      id,
		Name:                    name,
		UniverseID:              universeID,
		DaysPerWeek:             req.DaysPerWeek,
		MonthsPerYear:           req.MonthsPerYear,
		DaysPerYear:             req.DaysPerYear,
		Months:                  req.Months,
		Weekdays:                req.Weekdays,
		EpochName:               req.EpochName,
		EpochAbbreviation:       req.EpochAbbreviation,
		BeforeEpochAbbreviation: req.BeforeEpochAbbreviation,
		AllowNegativeYears:      req.AllowNegativeYears,
	}
	// Round-tripping through the map form applies the structural defaults.
	return calendar.FromMap(def.ToMap())
}

// Create creates a custom calendar for a universe.
func (s *calendarService) Create(ctx context.Context, universeID string, req CreateCalendarRequest) (*Calendar, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}

	cal := &Calendar{Definition: definitionFromRequest(generateID(), name, universeID, req)}
	if err := s.repo.Create(ctx, cal); err != nil {
		return nil, fmt.Errorf("create calendar: %w", err)
	}
	return cal, nil
}

// CreateFromPreset instantiates one of the built-in calendar presets.
// Unknown preset names fall back to the Gregorian structure, matching the
// engine's permissive lookups. An optional name overrides the preset's.
func (s *calendarService) CreateFromPreset(ctx context.Context, universeID string, req FromPresetRequest) (*Calendar, error) {
	def := calendar.NewFromPreset(req.Preset, universeID, generateID())
	if name := strings.TrimSpace(req.Name); name != "" {
		if len(name) > 200 {
			return nil, apperror.NewBadRequest("calendar name must be at most 200 characters")
		}
		def.Name = name
	}

	cal := &Calendar{Definition: def}
	if err := s.repo.Create(ctx, cal); err != nil {
		return nil, fmt.Errorf("create calendar from preset: %w", err)
	}
	return cal, nil
}

// GetByID returns a calendar by ID.
func (s *calendarService) GetByID(ctx context.Context, id string) (*Calendar, error) {
	cal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get calendar: %w", err)
	}
	if cal == nil {
		return nil, apperror.NewNotFound("calendar not found")
	}
	return cal, nil
}

// ListByUniverse returns a universe's calendars.
func (s *calendarService) ListByUniverse(ctx context.Context, universeID string) ([]Calendar, error) {
	return s.repo.ListByUniverse(ctx, universeID)
}

// Update replaces a calendar's structure. The current-date bookmark is kept.
func (s *calendarService) Update(ctx context.Context, id string, req CreateCalendarRequest) (*Calendar, error) {
	cal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}

	def := definitionFromRequest(cal.ID, name, cal.UniverseID, req)
	def.CurrentYear = cal.CurrentYear
	def.CurrentMonth = cal.CurrentMonth
	def.CurrentDay = cal.CurrentDay
	cal.Definition = def

	if err := s.repo.Update(ctx, cal); err != nil {
		return nil, fmt.Errorf("update calendar: %w", err)
	}
	return cal, nil
}

// SetCurrentDate sets or clears the calendar's "now" bookmark. A nil year
// clears all three fields.
func (s *calendarService) SetCurrentDate(ctx context.Context, id string, req CurrentDateRequest) (*Calendar, error) {
	cal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Year == nil {
		cal.CurrentYear, cal.CurrentMonth, cal.CurrentDay = nil, nil, nil
	} else {
		cal.CurrentYear = req.Year
		cal.CurrentMonth = req.Month
		cal.CurrentDay = req.Day
	}

	if err := s.repo.Update(ctx, cal); err != nil {
		return nil, fmt.Errorf("update calendar current date: %w", err)
	}
	return cal, nil
}

// Delete removes a calendar.
func (s *calendarService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ConvertToCustom converts a standard YYYY-MM-DD date into the calendar.
func (s *calendarService) ConvertToCustom(ctx context.Context, id string, standardDate string) (*ConversionResult, error) {
	cal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t, err := time.Parse("2006-01-02", standardDate)
	if err != nil {
		return nil, apperror.NewBadRequest("date must be in YYYY-MM-DD form")
	}

	year, month, day := calendar.StandardToCustom(t, cal.Definition)
	return &ConversionResult{
		Year:      year,
		Month:     month,
		Day:       day,
		MonthName: cal.MonthName(month),
		Display:   cal.FormatDate(year, month, day),
	}, nil
}

// ConvertToStandard converts a calendar date to a standard YYYY-MM-DD date.
func (s *calendarService) ConvertToStandard(ctx context.Context, id string, year, month, day int) (string, error) {
	cal, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	t := calendar.CustomToStandard(year, month, day, cal.Definition)
	return t.Format("2006-01-02"), nil
}

// Format renders a calendar date for display.
func (s *calendarService) Format(ctx context.Context, id string, year, month, day int) (string, error) {
	cal, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return cal.FormatDate(year, month, day), nil
}

// AgeBetween computes a whole-year age between two calendar dates.
func (s *calendarService) AgeBetween(ctx context.Context, id string, req AgeRequest) (int, error) {
	cal, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return calendar.CustomAge(req.BirthYear, req.BirthMonth, req.BirthDay,
		req.CurrentYear, req.CurrentMonth, req.CurrentDay, cal.Definition), nil
}
