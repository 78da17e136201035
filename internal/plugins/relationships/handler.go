package relationships

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
)

// Handler serves the relationship REST endpoints.
type Handler struct {
	svc RelationshipService
}

// NewHandler creates a new relationship handler.
func NewHandler(svc RelationshipService) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/universes/:id/relationships.
func (h *Handler) Create(c echo.Context) error {
	var req CreateRelationshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rel, err := h.svc.Create(c.Request().Context(), CreateRelationshipInput{
		UniverseID:  c.Param("id"),
		SourceID:    req.SourceID,
		TargetID:    req.TargetID,
		Kind:        req.Kind,
		Description: req.Description,
	})
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}

	return c.JSON(http.StatusCreated, rel)
}

// Get handles GET /api/v1/relationships/:id.
func (h *Handler) Get(c echo.Context) error {
	rel, err := h.svc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, rel)
}

// ListByEntity handles GET /api/v1/entities/:id/relationships.
func (h *Handler) ListByEntity(c echo.Context) error {
	rels, err := h.svc.ListByEntity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	if rels == nil {
		rels = []Relationship{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  rels,
		"total": len(rels),
	})
}

// Update handles PUT /api/v1/relationships/:id.
func (h *Handler) Update(c echo.Context) error {
	var req UpdateRelationshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rel, err := h.svc.Update(c.Request().Context(), c.Param("id"), UpdateRelationshipInput{
		Kind:        req.Kind,
		Description: req.Description,
	})
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}

	return c.JSON(http.StatusOK, rel)
}

// Delete handles DELETE /api/v1/relationships/:id.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.NoContent(http.StatusNoContent)
}
