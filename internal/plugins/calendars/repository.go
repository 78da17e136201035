package calendars

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MrFrey75/WorldBuilder/internal/calendar"
)

// CalendarRepository defines persistence operations for calendar definitions.
type CalendarRepository interface {
	Create(ctx context.Context, cal *Calendar) error
	FindByID(ctx context.Context, id string) (*Calendar, error)
	ListByUniverse(ctx context.Context, universeID string) ([]Calendar, error)
	Update(ctx context.Context, cal *Calendar) error
	Delete(ctx context.Context, id string) error
}

// calendarRepo is the MariaDB implementation of CalendarRepository.
// Month definitions and weekday names are stored as JSON columns so the
// calendar ordering survives the round trip.
type calendarRepo struct {
	db *sql.DB
}

// NewCalendarRepository creates a new MariaDB-backed calendar repository.
func NewCalendarRepository(db *sql.DB) CalendarRepository {
	return &calendarRepo{db: db}
}

// calendarCols is the column list for calendar queries.
const calendarCols = `id, universe_id, name, days_per_week, months_per_year, days_per_year,
	months, weekdays, epoch_name, epoch_abbreviation, before_epoch_abbreviation,
	allow_negative_years, current_year, current_month, current_day, created_at, updated_at`

// scanCalendar reads a row into a Calendar struct, decoding the JSON columns.
func scanCalendar(scanner interface{ Scan(...any) error }) (*Calendar, error) {
	cal := &Calendar{}
	var months, weekdays []byte
	err := scanner.Scan(&cal.ID, &cal.UniverseID, &cal.Name,
		&cal.DaysPerWeek, &cal.MonthsPerYear, &cal.DaysPerYear,
		&months, &weekdays,
		&cal.EpochName, &cal.EpochAbbreviation, &cal.BeforeEpochAbbreviation,
		&cal.AllowNegativeYears,
		&cal.CurrentYear, &cal.CurrentMonth, &cal.CurrentDay,
		&cal.CreatedAt, &cal.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(months, &cal.Months); err != nil {
		return nil, fmt.Errorf("decoding calendar months: %w", err)
	}
	if err := json.Unmarshal(weekdays, &cal.Weekdays); err != nil {
		return nil, fmt.Errorf("decoding calendar weekdays: %w", err)
	}
	return cal, nil
}

// encodeStructure marshals the ordered month and weekday lists for storage.
func encodeStructure(months []calendar.MonthDef, weekdays []string) ([]byte, []byte, error) {
	m, err := json.Marshal(months)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding calendar months: %w", err)
	}
	w, err := json.Marshal(weekdays)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding calendar weekdays: %w", err)
	}
	return m, w, nil
}

// Create inserts a new calendar definition.
func (r *calendarRepo) Create(ctx context.Context, cal *Calendar) error {
	months, weekdays, err := encodeStructure(cal.Months, cal.Weekdays)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO calendars (id, universe_id, name, days_per_week, months_per_year,
		   days_per_year, months, weekdays, epoch_name, epoch_abbreviation,
		   before_epoch_abbreviation, allow_negative_years,
		   current_year, current_month, current_day)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cal.ID, cal.UniverseID, cal.Name, cal.DaysPerWeek, cal.MonthsPerYear,
		cal.DaysPerYear, months, weekdays, cal.EpochName, cal.EpochAbbreviation,
		cal.BeforeEpochAbbreviation, cal.AllowNegativeYears,
		cal.CurrentYear, cal.CurrentMonth, cal.CurrentDay,
	)
	return err
}

// FindByID returns a calendar by its ID, or nil if not found.
func (r *calendarRepo) FindByID(ctx context.Context, id string) (*Calendar, error) {
	return scanCalendar(r.db.QueryRowContext(ctx,
		`SELECT `+calendarCols+` FROM calendars WHERE id = ?`, id))
}

// ListByUniverse returns a universe's calendars ordered by name. A universe
// may keep several reckonings.
func (r *calendarRepo) ListByUniverse(ctx context.Context, universeID string) ([]Calendar, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+calendarCols+` FROM calendars WHERE universe_id = ? ORDER BY name`,
		universeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cals []Calendar
	for rows.Next() {
		cal, err := scanCalendar(rows)
		if err != nil {
			return nil, err
		}
		cals = append(cals, *cal)
	}
	return cals, rows.Err()
}

// Update rewrites every mutable column of a calendar.
func (r *calendarRepo) Update(ctx context.Context, cal *Calendar) error {
	months, weekdays, err := encodeStructure(cal.Months, cal.Weekdays)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE calendars SET name = ?, days_per_week = ?, months_per_year = ?,
		   days_per_year = ?, months = ?, weekdays = ?, epoch_name = ?,
		   epoch_abbreviation = ?, before_epoch_abbreviation = ?,
		   allow_negative_years = ?, current_year = ?, current_month = ?, current_day = ?
		 WHERE id = ?`,
		cal.Name, cal.DaysPerWeek, cal.MonthsPerYear,
		cal.DaysPerYear, months, weekdays, cal.EpochName,
		cal.EpochAbbreviation, cal.BeforeEpochAbbreviation,
		cal.AllowNegativeYears, cal.CurrentYear, cal.CurrentMonth, cal.CurrentDay,
		cal.ID,
	)
	return err
}

// Delete removes a calendar definition.
func (r *calendarRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM calendars WHERE id = ?`, id)
	return err
}
