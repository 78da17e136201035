// Package relationships links two entities of a universe with a directed,
// labeled relation.
package relationships

import "time"

// Relationship is a directed link between two entities of the same universe,
// such as "ally", "parent", or "sworn enemy".
type Relationship struct {
	ID          string    `json:"id"`
	UniverseID  string    `json:"universe_id"`
	SourceID    string    `json:"source_id"`
	TargetID    string    `json:"target_id"`
	Kind        string    `json:"kind"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateRelationshipRequest is the JSON payload for creating a relationship.
type CreateRelationshipRequest struct {
	SourceID    string `json:"source_id"`
	TargetID    string `json:"target_id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// UpdateRelationshipRequest is the JSON payload for updating a relationship.
type UpdateRelationshipRequest struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// CreateRelationshipInput carries validated creation data into the service.
type CreateRelationshipInput struct {
	UniverseID  string
	SourceID    string
	TargetID    string
	Kind        string
	Description string
}

// UpdateRelationshipInput carries validated update data into the service.
type UpdateRelationshipInput struct {
	Kind        string
	Description string
}
