package relationships

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
)

// generateID creates a random UUID v4 string.
func generateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// RelationshipService defines business logic for the relationships plugin.
type RelationshipService interface {
	Create(ctx context.Context, input CreateRelationshipInput) (*Relationship, error)
	GetByID(ctx context.Context, id string) (*Relationship, error)
	ListByEntity(ctx context.Context, entityID string) ([]Relationship, error)
	Update(ctx context.Context, id string, input UpdateRelationshipInput) (*Relationship, error)
	Delete(ctx context.Context, id string) error
}

// relationshipService is the default RelationshipService implementation.
type relationshipService struct {
	repo     RelationshipRepository
	entities EntityFinder
}

// NewRelationshipService creates a RelationshipService.
func NewRelationshipService(repo RelationshipRepository, finder EntityFinder) RelationshipService {
	return &relationshipService{repo: repo, entities: finder}
}

// Create links two entities of the same universe with a directed relation.
func (s *relationshipService) Create(ctx context.Context, input CreateRelationshipInput) (*Relationship, error) {
	kind := strings.TrimSpace(input.Kind)
	if kind == "" {
		return nil, apperror.NewBadRequest("relationship kind is required")
	}
	if len(kind) > 100 {
		return nil, apperror.NewBadRequest("relationship kind must be at most 100 characters")
	}
	if input.SourceID == input.TargetID {
		return nil, apperror.NewBadRequest("an entity cannot relate to itself")
	}

	source, err := s.entities.FindEntityByID(ctx, input.SourceID)
	if err != nil {
		return nil, fmt.Errorf("checking source entity: %w", err)
	}
	if source == nil || source.UniverseID != input.UniverseID {
		return nil, apperror.NewBadRequest("source entity not found in this universe")
	}

	target, err := s.entities.FindEntityByID(ctx, input.TargetID)
	if err != nil {
		return nil, fmt.Errorf("checking target entity: %w", err)
	}
	if target == nil || target.UniverseID != input.UniverseID {
		return nil, apperror.NewBadRequest("target entity not found in this universe")
	}

	rel := &Relationship{
		ID:          generateID(),
		UniverseID:  input.UniverseID,
		SourceID:    input.SourceID,
		TargetID:    input.TargetID,
		Kind:        kind,
		Description: optional(input.Description),
	}

	if err := s.repo.Create(ctx, rel); err != nil {
		return nil, fmt.Errorf("create relationship: %w", err)
	}
	return rel, nil
}

// GetByID returns a relationship by ID.
func (s *relationshipService) GetByID(ctx context.Context, id string) (*Relationship, error) {
	rel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get relationship: %w", err)
	}
	if rel == nil {
		return nil, apperror.NewNotFound("relationship not found")
	}
	return rel, nil
}

// ListByEntity returns every relationship touching an entity, in either
// direction.
func (s *relationshipService) ListByEntity(ctx context.Context, entityID string) ([]Relationship, error) {
	return s.repo.ListByEntity(ctx, entityID)
}

// Update modifies a relationship's kind and description. Endpoints are
// immutable; re-linking means delete and recreate.
func (s *relationshipService) Update(ctx context.Context, id string, input UpdateRelationshipInput) (*Relationship, error) {
	rel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get relationship: %w", err)
	}
	if rel == nil {
		return nil, apperror.NewNotFound("relationship not found")
	}

	kind := strings.TrimSpace(input.Kind)
	if kind == "" {
		return nil, apperror.NewBadRequest("relationship kind is required")
	}
	if len(kind) > 100 {
		return nil, apperror.NewBadRequest("relationship kind must be at most 100 characters")
	}

	rel.Kind = kind
	rel.Description = optional(input.Description)

	if err := s.repo.Update(ctx, rel); err != nil {
		return nil, fmt.Errorf("update relationship: %w", err)
	}
	return rel, nil
}

// Delete removes a relationship.
func (s *relationshipService) Delete(ctx context.Context, id string) error {
	rel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get relationship: %w", err)
	}
	if rel == nil {
		return apperror.NewNotFound("relationship not found")
	}
	return s.repo.Delete(ctx, id)
}

// optional converts a trimmed string to a nullable pointer; empty means nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
