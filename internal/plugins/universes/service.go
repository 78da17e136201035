package universes

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

// UniverseService defines business logic for the universes plugin.
type UniverseService interface {
	Create(ctx context.Context, input CreateUniverseInput) (*Universe, error)
	GetByID(ctx context.Context, id string) (*Universe, error)
	List(ctx context.Context) ([]Universe, error)
	Update(ctx context.Context, id string, input UpdateUniverseInput) (*Universe, error)
	Delete(ctx context.Context, id string) error
}

// universeService is the default UniverseService implementation.
type universeService struct {
	repo UniverseRepository
}

// NewUniverseService creates a UniverseService backed by the given repository.
func NewUniverseService(repo UniverseRepository) UniverseService {
	return &universeService{repo: repo}
}

// Create creates a new universe.
func (s *universeService) Create(ctx context.Context, input CreateUniverseInput) (*Universe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequest("universe name is required")
	}
	if len(name) > 200 {
		return nil, apperror.NewBadRequest("universe name must be at most 200 characters")
	}

	u := &Universe{
		ID:          generateID(),
		Name:        name,
		Genre:       optional(input.Genre),
		Description: optional(input.Description),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create universe: %w", err)
	}
	return u, nil
}

// GetByID returns a universe by ID.
func (s *universeService) GetByID(ctx context.Context, id string) (*Universe, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get universe: %w", err)
	}
	if u == nil {
		return nil, apperror.NewNotFound("universe not found")
	}
	return u, nil
}

// List returns all universes.
func (s *universeService) List(ctx context.Context) ([]Universe, error) {
	return s.repo.List(ctx)
}

// Update modifies a universe's name, genre, and description.
func (s *universeService) Update(ctx context.Context, id string, input UpdateUniverseInput) (*Universe, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get universe: %w", err)
	}
	if u == nil {
		return nil, apperror.NewNotFound("universe not found")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequest("universe name is required")
	}
	if len(name) > 200 {
		return nil, apperror.NewBadRequest("universe name must be at most 200 characters")
	}

	u.Name = name
	u.Genre = optional(input.Genre)
	u.Description = optional(input.Description)

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update universe: %w", err)
	}
	return u, nil
}

// Delete removes a universe and everything it contains.
func (s *universeService) Delete(ctx context.Context, id string) error {
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
