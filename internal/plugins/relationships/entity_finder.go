package relationships

import (
	"context"

	"github.com/MrFrey75/WorldBuilder/internal/plugins/entities"
)

// EntityRef is the subset of an entity the relationships plugin needs.
type EntityRef struct {
	ID         string
	UniverseID string
	Name       string
}

// EntityFinder resolves entity IDs for endpoint validation.
type EntityFinder interface {
	FindEntityByID(ctx context.Context, id string) (*EntityRef, error)
}

// EntityFinderAdapter wraps entities.EntityRepository to satisfy the
// EntityFinder interface. This adapter pattern keeps the entities package
// out of the rest of this plugin; only this file references it.
type EntityFinderAdapter struct {
	repo entities.EntityRepository
}

// NewEntityFinderAdapter creates a new adapter around the entity repository.
func NewEntityFinderAdapter(repo entities.EntityRepository) EntityFinder {
	return &EntityFinderAdapter{repo: repo}
}

// FindEntityByID looks up an entity and maps it to EntityRef. Returns nil
// when the entity does not exist.
func (a *EntityFinderAdapter) FindEntityByID(ctx context.Context, id string) (*EntityRef, error) {
	e, err := a.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return &EntityRef{ID: e.ID, UniverseID: e.UniverseID, Name: e.Name}, nil
}
