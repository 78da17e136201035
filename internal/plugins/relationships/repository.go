package relationships

import (
	"context"
	"database/sql"
)

// RelationshipRepository defines persistence operations for relationships.
type RelationshipRepository interface {
	Create(ctx context.Context, rel *Relationship) error
	FindByID(ctx context.Context, id string) (*Relationship, error)
	ListByEntity(ctx context.Context, entityID string) ([]Relationship, error)
	Update(ctx context.Context, rel *Relationship) error
	Delete(ctx context.Context, id string) error
}

// relationshipRepo is the MariaDB implementation of RelationshipRepository.
type relationshipRepo struct {
	db *sql.DB
}

// NewRelationshipRepository creates a new MariaDB-backed relationship repository.
func NewRelationshipRepository(db *sql.DB) RelationshipRepository {
	return &relationshipRepo{db: db}
}

// relationshipCols is the column list for relationship queries.
const relationshipCols = `id, universe_id, source_id, target_id, kind, description, created_at, updated_at`

// scanRelationship reads a row into a Relationship struct.
func scanRelationship(scanner interface{ Scan(...any) error }) (*Relationship, error) {
	rel := &Relationship{}
	err := scanner.Scan(&rel.ID, &rel.UniverseID, &rel.SourceID, &rel.TargetID,
		&rel.Kind, &rel.Description, &rel.CreatedAt, &rel.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rel, err
}

// Create inserts a new relationship.
func (r *relationshipRepo) Create(ctx context.Context, rel *Relationship) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO relationships (id, universe_id, source_id, target_id, kind, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rel.ID, rel.UniverseID, rel.SourceID, rel.TargetID, rel.Kind, rel.Description,
	)
	return err
}

// FindByID returns a relationship by its ID, or nil if not found.
func (r *relationshipRepo) FindByID(ctx context.Context, id string) (*Relationship, error) {
	return scanRelationship(r.db.QueryRowContext(ctx,
		`SELECT `+relationshipCols+` FROM relationships WHERE id = ?`, id))
}

// ListByEntity returns relationships where the entity is either endpoint.
func (r *relationshipRepo) ListByEntity(ctx context.Context, entityID string) ([]Relationship, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+relationshipCols+` FROM relationships
		 WHERE source_id = ? OR target_id = ?
		 ORDER BY created_at`,
		entityID, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rels []Relationship
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, err
		}
		rels = append(rels, *rel)
	}
	return rels, rows.Err()
}

// Update modifies a relationship's kind and description.
func (r *relationshipRepo) Update(ctx context.Context, rel *Relationship) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE relationships SET kind = ?, description = ? WHERE id = ?`,
		rel.Kind, rel.Description, rel.ID,
	)
	return err
}

// Delete removes a relationship.
func (r *relationshipRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM relationships WHERE id = ?`, id)
	return err
}
