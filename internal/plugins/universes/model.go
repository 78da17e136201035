// Package universes manages universes, the top-level containers for all
// worldbuilding content. Every entity, relationship, timeline event, and
// calendar belongs to exactly one universe.
//
// This is a CORE plugin: always enabled, cannot be disabled.
package universes

import "time"

// Universe is a fictional world and the root of its content tree.
type Universe struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Genre       *string   `json:"genre,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- Request DTOs (bound from HTTP requests) ---

// CreateUniverseRequest holds the data submitted when creating a universe.
type CreateUniverseRequest struct {
	Name        string `json:"name"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

// UpdateUniverseRequest holds the data submitted when updating a universe.
type UpdateUniverseRequest struct {
	Name        string `json:"name"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

// --- Service Input DTOs ---

// CreateUniverseInput is the validated input for creating a universe.
type CreateUniverseInput struct {
	Name        string
	Genre       string
	Description string
}

// UpdateUniverseInput is the validated input for updating a universe.
type UpdateUniverseInput struct {
	Name        string
	Genre       string
	Description string
}
