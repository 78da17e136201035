package entities

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// EntityRepository defines persistence operations for entities.
type EntityRepository interface {
	Create(ctx context.Context, e *Entity) error
	FindByID(ctx context.Context, id string) (*Entity, error)
	FindBySlug(ctx context.Context, universeID, slug string) (*Entity, error)
	SlugExists(ctx context.Context, universeID, slug string) (bool, error)
	List(ctx context.Context, universeID string, opts ListOptions) ([]Entity, int, error)
	CountByKind(ctx context.Context, universeID string) (map[Kind]int, error)
	Update(ctx context.Context, e *Entity) error
	Delete(ctx context.Context, id string) error
}

// entityRepo is the MariaDB implementation of EntityRepository.
type entityRepo struct {
	db *sql.DB
}

// NewEntityRepository creates a new MariaDB-backed entity repository.
func NewEntityRepository(db *sql.DB) EntityRepository {
	return &entityRepo{db: db}
}

// entityCols is the column list for entity queries.
const entityCols = `id, universe_id, kind, name, slug, description, attributes, parent_id, created_at, updated_at`

// scanEntity reads a row into an Entity struct, decoding the attributes JSON.
func scanEntity(scanner interface{ Scan(...any) error }) (*Entity, error) {
	e := &Entity{}
	var attrs []byte
	err := scanner.Scan(&e.ID, &e.UniverseID, &e.Kind, &e.Name, &e.Slug,
		&e.Description, &attrs, &e.ParentID, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &e.Attributes); err != nil {
			return nil, fmt.Errorf("decoding entity attributes: %w", err)
		}
	}
	return e, nil
}

// encodeAttributes marshals the attributes map for storage. Nil maps are
// stored as SQL NULL so empty entities stay cheap.
func encodeAttributes(attrs map[string]any) (any, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("encoding entity attributes: %w", err)
	}
	return b, nil
}

// Create inserts a new entity.
func (r *entityRepo) Create(ctx context.Context, e *Entity) error {
	attrs, err := encodeAttributes(e.Attributes)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO entities (id, universe_id, kind, name, slug, description, attributes, parent_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UniverseID, e.Kind, e.Name, e.Slug, e.Description, attrs, e.ParentID,
	)
	return err
}

// FindByID returns an entity by its ID, or nil if not found.
func (r *entityRepo) FindByID(ctx context.Context, id string) (*Entity, error) {
	return scanEntity(r.db.QueryRowContext(ctx,
		`SELECT `+entityCols+` FROM entities WHERE id = ?`, id))
}

// FindBySlug returns an entity by its slug within a universe, or nil if not found.
func (r *entityRepo) FindBySlug(ctx context.Context, universeID, slug string) (*Entity, error) {
	return scanEntity(r.db.QueryRowContext(ctx,
		`SELECT `+entityCols+` FROM entities WHERE universe_id = ? AND slug = ?`,
		universeID, slug))
}

// SlugExists reports whether a slug is already taken within a universe.
func (r *entityRepo) SlugExists(ctx context.Context, universeID, slug string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entities WHERE universe_id = ? AND slug = ?`,
		universeID, slug).Scan(&n)
	return n > 0, err
}

// List returns a page of entities for a universe, optionally filtered by kind
// and a case-insensitive substring match on the name. The second return value
// is the total count before pagination.
func (r *entityRepo) List(ctx context.Context, universeID string, opts ListOptions) ([]Entity, int, error) {
	opts.Normalize()

	where := `WHERE universe_id = ?`
	args := []any{universeID}
	if opts.Kind != "" {
		where += ` AND kind = ?`
		args = append(args, opts.Kind)
	}
	if opts.Search != "" {
		where += ` AND name LIKE ?`
		args = append(args, "%"+opts.Search+"%")
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entities `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + entityCols + ` FROM entities ` + where +
		` ORDER BY name LIMIT ? OFFSET ?`
	args = append(args, opts.PerPage, opts.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entities []Entity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, *e)
	}
	return entities, total, rows.Err()
}

// CountByKind returns the number of entities per kind in a universe. Kinds
// with no entities are omitted.
func (r *entityRepo) CountByKind(ctx context.Context, universeID string) (map[Kind]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, COUNT(*) FROM entities WHERE universe_id = ? GROUP BY kind`,
		universeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Kind]int)
	for rows.Next() {
		var kind Kind
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

// Update modifies an existing entity.
func (r *entityRepo) Update(ctx context.Context, e *Entity) error {
	attrs, err := encodeAttributes(e.Attributes)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE entities SET name = ?, slug = ?, description = ?, attributes = ?, parent_id = ?
		 WHERE id = ?`,
		e.Name, e.Slug, e.Description, attrs, e.ParentID, e.ID,
	)
	return err
}

// Delete removes an entity. Children keep existing with parent_id set NULL
// by the FK's ON DELETE SET NULL.
func (r *entityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM entities WHERE id = ?`, id)
	return err
}
