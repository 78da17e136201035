package entities

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
	"github.com/MrFrey75/WorldBuilder/internal/sanitize"
)

// maxSlugAttempts bounds the numbered-suffix search before falling back to a
// random suffix.
const maxSlugAttempts = 50

// generateID creates a random UUID v4 string.
func generateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// EntityService defines business logic for the entities plugin.
type EntityService interface {
	Create(ctx context.Context, input CreateEntityInput) (*Entity, error)
	GetByID(ctx context.Context, id string) (*Entity, error)
	GetBySlug(ctx context.Context, universeID, slug string) (*Entity, error)
	List(ctx context.Context, universeID string, opts ListOptions) ([]Entity, int, error)
	Counts(ctx context.Context, universeID string) (map[Kind]int, error)
	Update(ctx context.Context, id string, input UpdateEntityInput) (*Entity, error)
	Delete(ctx context.Context, id string) error
}

// entityService is the default EntityService implementation.
type entityService struct {
	repo     EntityRepository
	redis    *redis.Client
	countTTL time.Duration
}

// NewEntityService creates an EntityService. The Redis client may be nil, in
// which case per-kind counts are computed directly on every request.
func NewEntityService(repo EntityRepository, rdb *redis.Client, countTTL time.Duration) EntityService {
	return &entityService{repo: repo, redis: rdb, countTTL: countTTL}
}

// Create creates a new entity with a unique slug within its universe.
func (s *entityService) Create(ctx context.Context, input CreateEntityInput) (*Entity, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequest("entity name is required")
	}
	if len(name) > 200 {
		return nil, apperror.NewBadRequest("entity name must be at most 200 characters")
	}
	if !input.Kind.Valid() {
		return nil, apperror.NewBadRequest(fmt.Sprintf("unknown entity kind %q", input.Kind))
	}

	if input.ParentID != "" {
		parent, err := s.repo.FindByID(ctx, input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("checking parent entity: %w", err)
		}
		if parent == nil || parent.UniverseID != input.UniverseID {
			return nil, apperror.NewBadRequest("parent entity not found in this universe")
		}
	}

	slug, err := s.generateSlug(ctx, input.UniverseID, name)
	if err != nil {
		return nil, err
	}

	e := &Entity{
		ID:          generateID(),
		UniverseID:  input.UniverseID,
		Kind:        input.Kind,
		Name:        name,
		Slug:        slug,
		Description: sanitizedDescription(input.Description),
		Attributes:  input.Attributes,
		ParentID:    optionalID(input.ParentID),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create entity: %w", err)
	}

	s.invalidateCounts(ctx, e.UniverseID)

	slog.Info("entity created",
		slog.String("entity_id", e.ID),
		slog.String("universe_id", e.UniverseID),
		slog.String("kind", string(e.Kind)),
		slog.String("slug", e.Slug),
	)
	return e, nil
}

// GetByID returns an entity by ID.
func (s *entityService) GetByID(ctx context.Context, id string) (*Entity, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	if e == nil {
		return nil, apperror.NewNotFound("entity not found")
	}
	return e, nil
}

// GetBySlug returns an entity by slug within a universe.
func (s *entityService) GetBySlug(ctx context.Context, universeID, slug string) (*Entity, error) {
	e, err := s.repo.FindBySlug(ctx, universeID, slug)
	if err != nil {
		return nil, fmt.Errorf("get entity by slug: %w", err)
	}
	if e == nil {
		return nil, apperror.NewNotFound("entity not found")
	}
	return e, nil
}

// List returns a page of entities with the pre-pagination total.
func (s *entityService) List(ctx context.Context, universeID string, opts ListOptions) ([]Entity, int, error) {
	if opts.Kind != "" && !opts.Kind.Valid() {
		return nil, 0, apperror.NewBadRequest(fmt.Sprintf("unknown entity kind %q", opts.Kind))
	}
	return s.repo.List(ctx, universeID, opts)
}

// countsKey is the Redis key for a universe's cached per-kind counts.
func countsKey(universeID string) string {
	return "worldbuilder:entity_counts:" + universeID
}

// Counts returns per-kind entity counts for a universe, served from Redis
// when a recent snapshot exists. Every kind appears in the result, zero
// included.
func (s *entityService) Counts(ctx context.Context, universeID string) (map[Kind]int, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, countsKey(universeID)).Bytes()
		if err == nil {
			var counts map[Kind]int
			if json.Unmarshal(cached, &counts) == nil {
				return counts, nil
			}
		} else if err != redis.Nil {
			slog.Warn("entity count cache read failed", slog.String("error", err.Error()))
		}
	}

	counts, err := s.repo.CountByKind(ctx, universeID)
	if err != nil {
		return nil, fmt.Errorf("count entities: %w", err)
	}
	for _, k := range Kinds() {
		if _, ok := counts[k]; !ok {
			counts[k] = 0
		}
	}

	if s.redis != nil {
		if b, err := json.Marshal(counts); err == nil {
			if err := s.redis.Set(ctx, countsKey(universeID), b, s.countTTL).Err(); err != nil {
				slog.Warn("entity count cache write failed", slog.String("error", err.Error()))
			}
		}
	}
	return counts, nil
}

// invalidateCounts drops the cached per-kind counts after a write. A failed
// delete only delays freshness until the TTL expires, so it is logged and
// ignored.
func (s *entityService) invalidateCounts(ctx context.Context, universeID string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, countsKey(universeID)).Err(); err != nil {
		slog.Warn("entity count cache invalidation failed", slog.String("error", err.Error()))
	}
}

// Update modifies an entity. Renaming regenerates the slug.
func (s *entityService) Update(ctx context.Context, id string, input UpdateEntityInput) (*Entity, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	if e == nil {
		return nil, apperror.NewNotFound("entity not found")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequest("entity name is required")
	}
	if len(name) > 200 {
		return nil, apperror.NewBadRequest("entity name must be at most 200 characters")
	}

	if input.ParentID != "" {
		if input.ParentID == e.ID {
			return nil, apperror.NewBadRequest("an entity cannot be its own parent")
		}
		parent, err := s.repo.FindByID(ctx, input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("checking parent entity: %w", err)
		}
		if parent == nil || parent.UniverseID != e.UniverseID {
			return nil, apperror.NewBadRequest("parent entity not found in this universe")
		}
	}

	if name != e.Name {
		slug, err := s.generateSlug(ctx, e.UniverseID, name)
		if err != nil {
			return nil, err
		}
		e.Slug = slug
	}

	e.Name = name
	e.Description = sanitizedDescription(input.Description)
	e.Attributes = input.Attributes
	e.ParentID = optionalID(input.ParentID)

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("update entity: %w", err)
	}

	s.invalidateCounts(ctx, e.UniverseID)
	return e, nil
}

// Delete removes an entity and invalidates the count cache.
func (s *entityService) Delete(ctx context.Context, id string) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get entity: %w", err)
	}
	if e == nil {
		return apperror.NewNotFound("entity not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entity: %w", err)
	}

	s.invalidateCounts(ctx, e.UniverseID)

	slog.Info("entity deleted",
		slog.String("entity_id", e.ID),
		slog.String("universe_id", e.UniverseID),
		slog.String("kind", string(e.Kind)),
	)
	return nil
}

// generateSlug creates a unique slug for an entity within a universe.
// If the base slug is taken, appends -2, -3, etc. After maxSlugAttempts,
// falls back to a random suffix.
func (s *entityService) generateSlug(ctx context.Context, universeID, name string) (string, error) {
	base := Slugify(name)
	slug := base

	for i := 2; i < maxSlugAttempts+2; i++ {
		exists, err := s.repo.SlugExists(ctx, universeID, slug)
		if err != nil {
			return "", fmt.Errorf("checking entity slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}

	// Fallback: append random suffix to guarantee uniqueness.
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating random slug suffix: %w", err)
	}
	return fmt.Sprintf("%s-%s", base, hex.EncodeToString(b)), nil
}

// sanitizedDescription strips unsafe HTML and converts empty input to nil.
func sanitizedDescription(raw string) *string {
	clean := strings.TrimSpace(sanitize.HTML(raw))
	if clean == "" {
		return nil
	}
	return &clean
}

// optionalID converts an empty ID string to nil.
func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
