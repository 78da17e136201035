package universes

import (
	"context"
	"database/sql"
)

// UniverseRepository defines persistence operations for universes.
type UniverseRepository interface {
	Create(ctx context.Context, u *Universe) error
	FindByID(ctx context.Context, id string) (*Universe, error)
	List(ctx context.Context) ([]Universe, error)
	Update(ctx context.Context, u *Universe) error
	Delete(ctx context.Context, id string) error
}

// universeRepo is the MariaDB implementation of UniverseRepository.
type universeRepo struct {
	db *sql.DB
}

// NewUniverseRepository creates a new MariaDB-backed universe repository.
func NewUniverseRepository(db *sql.DB) UniverseRepository {
	return &universeRepo{db: db}
}

// universeCols is the column list for universe queries.
const universeCols = `id, name, genre, description, created_at, updated_at`

// scanUniverse reads a row into a Universe struct.
func scanUniverse(scanner interface{ Scan(...any) error }) (*Universe, error) {
	u := &Universe{}
	err := scanner.Scan(&u.ID, &u.Name, &u.Genre, &u.Description, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

// Create inserts a new universe.
func (r *universeRepo) Create(ctx context.Context, u *Universe) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO universes (id, name, genre, description)
		 VALUES (?, ?, ?, ?)`,
		u.ID, u.Name, u.Genre, u.Description,
	)
	return err
}

// FindByID returns a universe by its ID, or nil if not found.
func (r *universeRepo) FindByID(ctx context.Context, id string) (*Universe, error) {
	return scanUniverse(r.db.QueryRowContext(ctx,
		`SELECT `+universeCols+` FROM universes WHERE id = ?`, id))
}

// List returns all universes ordered by name.
func (r *universeRepo) List(ctx context.Context) ([]Universe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+universeCols+` FROM universes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universes []Universe
	for rows.Next() {
		var u Universe
		if err := rows.Scan(&u.ID, &u.Name, &u.Genre, &u.Description, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		universes = append(universes, u)
	}
	return universes, rows.Err()
}

// Update modifies an existing universe.
func (r *universeRepo) Update(ctx context.Context, u *Universe) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE universes SET name = ?, genre = ?, description = ? WHERE id = ?`,
		u.Name, u.Genre, u.Description, u.ID,
	)
	return err
}

// Delete removes a universe and all child records (cascaded by FK).
func (r *universeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM universes WHERE id = ?`, id)
	return err
}
