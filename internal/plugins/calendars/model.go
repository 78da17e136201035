// Package calendars persists calendar definitions and exposes the engine
// operations (presets, conversion, formatting, ages) over HTTP. The pure
// calendar math lives in internal/calendar.
package calendars

import (
	"time"

	"github.com/MrFrey75/WorldBuilder/internal/calendar"
)

// Calendar is a persisted calendar definition with record timestamps.
// The embedded Definition carries all structural fields.
type Calendar struct {
	calendar.Definition
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCalendarRequest is the JSON payload for creating a custom calendar.
// Zero-valued structural fields fall back to Gregorian defaults.
type CreateCalendarRequest struct {
	Name                    string              `json:"name"`
	DaysPerWeek             int                 `json:"days_per_week"`
	MonthsPerYear           int                 `json:"months_per_year"`
	DaysPerYear             int                 `json:"days_per_year"`
	Months                  []calendar.MonthDef `json:"month_definitions"`
	Weekdays                []string            `json:"weekday_names"`
	EpochName               string              `json:"epoch_name"`
	EpochAbbreviation       string              `json:"epoch_abbreviation"`
	BeforeEpochAbbreviation string              `json:"before_epoch_abbreviation"`
	AllowNegativeYears      bool                `json:"allow_negative_years"`
}

// FromPresetRequest is the JSON payload for creating a calendar from a preset.
type FromPresetRequest struct {
	Preset string `json:"preset"`
	Name   string `json:"name"`
}

// CurrentDateRequest sets or clears a calendar's "now" bookmark.
// A nil year clears all three fields.
type CurrentDateRequest struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

// ConvertToCustomRequest converts a standard date into the calendar.
type ConvertToCustomRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// ConvertToStandardRequest converts a calendar date to a standard date.
type ConvertToStandardRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// FormatRequest renders a calendar date for display. Month and day are
// optional; zero omits the segment.
type FormatRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// AgeRequest computes an age between two calendar dates.
type AgeRequest struct {
	BirthYear    int `json:"birth_year"`
	BirthMonth   int `json:"birth_month"`
	BirthDay     int `json:"birth_day"`
	CurrentYear  int `json:"current_year"`
	CurrentMonth int `json:"current_month"`
	CurrentDay   int `json:"current_day"`
}
