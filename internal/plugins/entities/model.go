// Package entities manages the worldbuilding records of a universe: places,
// peoples, figures, factions, artifacts, and lore. All kinds share one table
// and one CRUD surface; per-kind data lives in a free-form attributes JSON
// column.
package entities

import (
	"regexp"
	"strings"
	"time"
)

// Kind identifies the category of a worldbuilding entity.
type Kind string

const (
	KindLocation     Kind = "location"
	KindSpecies      Kind = "species"
	KindFigure       Kind = "figure"
	KindOrganization Kind = "organization"
	KindArtifact     Kind = "artifact"
	KindLore         Kind = "lore"
)

// Kinds lists every valid entity kind in display order.
func Kinds() []Kind {
	return []Kind{KindLocation, KindSpecies, KindFigure, KindOrganization, KindArtifact, KindLore}
}

// Valid reports whether k is a known entity kind.
func (k Kind) Valid() bool {
	switch k {
	case KindLocation, KindSpecies, KindFigure, KindOrganization, KindArtifact, KindLore:
		return true
	}
	return false
}

// Entity is a single worldbuilding record: a place, a people, a person,
// a faction, an object, or a piece of lore.
type Entity struct {
	ID          string         `json:"id"`
	UniverseID  string         `json:"universe_id"`
	Kind        Kind           `json:"kind"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description *string        `json:"description,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	ParentID    *string        `json:"parent_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CreateEntityRequest is the JSON payload for creating an entity.
type CreateEntityRequest struct {
	Kind        string         `json:"kind"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Attributes  map[string]any `json:"attributes"`
	ParentID    string         `json:"parent_id"`
}

// UpdateEntityRequest is the JSON payload for updating an entity.
type UpdateEntityRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Attributes  map[string]any `json:"attributes"`
	ParentID    string         `json:"parent_id"`
}

// CreateEntityInput carries validated creation data into the service.
type CreateEntityInput struct {
	UniverseID  string
	Kind        Kind
	Name        string
	Description string
	Attributes  map[string]any
	ParentID    string
}

// UpdateEntityInput carries validated update data into the service.
type UpdateEntityInput struct {
	Name        string
	Description string
	Attributes  map[string]any
	ParentID    string
}

// ListOptions controls filtering and pagination for entity listings.
type ListOptions struct {
	Kind    Kind
	Search  string
	Page    int
	PerPage int
}

// defaultPerPage is the page size when none is given.
const defaultPerPage = 25

// maxPerPage caps the page size a client may request.
const maxPerPage = 100

// Normalize clamps pagination values to sane bounds.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PerPage < 1 {
		o.PerPage = defaultPerPage
	}
	if o.PerPage > maxPerPage {
		o.PerPage = maxPerPage
	}
}

// Offset returns the SQL offset for the current page.
func (o *ListOptions) Offset() int {
	return (o.Page - 1) * o.PerPage
}

// slugPattern matches one or more non-alphanumeric characters for replacement.
var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify creates a URL-safe slug from a name. Lowercase, replace
// non-alphanumeric characters with hyphens, trim leading/trailing hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "entity"
	}
	return slug
}
