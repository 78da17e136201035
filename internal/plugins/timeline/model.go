// Package timeline manages dated events on a universe calendar. Event dates
// are stored in the calendar's own reckoning; display strings, durations,
// and ages are derived on read via the calendar engine.
package timeline

import "time"

// Event is a dated happening on a universe's timeline. Dates are expressed
// in the linked calendar's own reckoning, not standard dates. An optional
// end date turns the event into a span.
type Event struct {
	ID          string  `json:"id"`
	UniverseID  string  `json:"universe_id"`
	CalendarID  string  `json:"calendar_id"`
	EntityID    *string `json:"entity_id,omitempty"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`

	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`

	EndYear  *int `json:"end_year,omitempty"`
	EndMonth *int `json:"end_month,omitempty"`
	EndDay   *int `json:"end_day,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Derived display fields, populated by the service from the linked
	// calendar. Never persisted.
	DisplayDate    string `json:"display_date,omitempty"`
	DisplayEndDate string `json:"display_end_date,omitempty"`
	Duration       string `json:"duration,omitempty"`
}

// CreateEventRequest is the JSON payload for creating a timeline event.
type CreateEventRequest struct {
	CalendarID  string `json:"calendar_id"`
	EntityID    string `json:"entity_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	EndYear     *int   `json:"end_year"`
	EndMonth    *int   `json:"end_month"`
	EndDay      *int   `json:"end_day"`
}

// UpdateEventRequest is the JSON payload for updating a timeline event.
type UpdateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	EndYear     *int   `json:"end_year"`
	EndMonth    *int   `json:"end_month"`
	EndDay      *int   `json:"end_day"`
}

// CreateEventInput carries validated creation data into the service.
type CreateEventInput struct {
	UniverseID  string
	CalendarID  string
	EntityID    string
	Title       string
	Description string
	Year        int
	Month       int
	Day         int
	EndYear     *int
	EndMonth    *int
	EndDay      *int
}

// UpdateEventInput carries validated update data into the service.
type UpdateEventInput struct {
	Title       string
	Description string
	Year        int
	Month       int
	Day         int
	EndYear     *int
	EndMonth    *int
	EndDay      *int
}
