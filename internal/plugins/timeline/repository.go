package timeline

import (
	"context"
	"database/sql"
)

// EventRepository defines persistence operations for timeline events.
type EventRepository interface {
	Create(ctx context.Context, ev *Event) error
	FindByID(ctx context.Context, id string) (*Event, error)
	ListByUniverse(ctx context.Context, universeID string) ([]Event, error)
	ListByEntity(ctx context.Context, entityID string) ([]Event, error)
	Update(ctx context.Context, ev *Event) error
	Delete(ctx context.Context, id string) error
}

// eventRepo is the MariaDB implementation of EventRepository.
type eventRepo struct {
	db *sql.DB
}

// NewEventRepository creates a new MariaDB-backed event repository.
func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepo{db: db}
}

// eventCols is the column list for event queries.
const eventCols = `id, universe_id, calendar_id, entity_id, title, description,
	year, month, day, end_year, end_month, end_day, created_at, updated_at`

// eventOrder sorts events chronologically within their calendar.
const eventOrder = `ORDER BY year, month, day, created_at`

// scanEvent reads a row into an Event struct.
func scanEvent(scanner interface{ Scan(...any) error }) (*Event, error) {
	ev := &Event{}
	err := scanner.Scan(&ev.ID, &ev.UniverseID, &ev.CalendarID, &ev.EntityID,
		&ev.Title, &ev.Description,
		&ev.Year, &ev.Month, &ev.Day,
		&ev.EndYear, &ev.EndMonth, &ev.EndDay,
		&ev.CreatedAt, &ev.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return ev, err
}

// Create inserts a new event.
func (r *eventRepo) Create(ctx context.Context, ev *Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO timeline_events (id, universe_id, calendar_id, entity_id, title,
		   description, year, month, day, end_year, end_month, end_day)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.UniverseID, ev.CalendarID, ev.EntityID, ev.Title,
		ev.Description, ev.Year, ev.Month, ev.Day, ev.EndYear, ev.EndMonth, ev.EndDay,
	)
	return err
}

// FindByID returns an event by its ID, or nil if not found.
func (r *eventRepo) FindByID(ctx context.Context, id string) (*Event, error) {
	return scanEvent(r.db.QueryRowContext(ctx,
		`SELECT `+eventCols+` FROM timeline_events WHERE id = ?`, id))
}

// ListByUniverse returns a universe's events in chronological order.
func (r *eventRepo) ListByUniverse(ctx context.Context, universeID string) ([]Event, error) {
	return r.list(ctx,
		`SELECT `+eventCols+` FROM timeline_events WHERE universe_id = ? `+eventOrder,
		universeID)
}

// ListByEntity returns the events linked to an entity in chronological order.
func (r *eventRepo) ListByEntity(ctx context.Context, entityID string) ([]Event, error) {
	return r.list(ctx,
		`SELECT `+eventCols+` FROM timeline_events WHERE entity_id = ? `+eventOrder,
		entityID)
}

func (r *eventRepo) list(ctx context.Context, query string, args ...any) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, rows.Err()
}

// Update modifies an existing event.
func (r *eventRepo) Update(ctx context.Context, ev *Event) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE timeline_events SET title = ?, description = ?, year = ?, month = ?,
		   day = ?, end_year = ?, end_month = ?, end_day = ?
		 WHERE id = ?`,
		ev.Title, ev.Description, ev.Year, ev.Month, ev.Day,
		ev.EndYear, ev.EndMonth, ev.EndDay, ev.ID,
	)
	return err
}

// Delete removes an event.
func (r *eventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM timeline_events WHERE id = ?`, id)
	return err
}
