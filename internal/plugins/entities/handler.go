package entities

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
)

// Handler serves the entity REST endpoints.
type Handler struct {
	svc EntityService
}

// NewHandler creates a new entity handler.
func NewHandler(svc EntityService) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/universes/:id/entities.
func (h *Handler) Create(c echo.Context) error {
	var req CreateEntityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	e, err := h.svc.Create(c.Request().Context(), CreateEntityInput{
		UniverseID:  c.Param("id"),
		Kind:        Kind(req.Kind),
		Name:        req.Name,
		Description: req.Description,
		Attributes:  req.Attributes,
		ParentID:    req.ParentID,
	})
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}

	return c.JSON(http.StatusCreated, e)
}

// Get handles GET /api/v1/entities/:id.
func (h *Handler) Get(c echo.Context) error {
	e, err := h.svc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, e)
}

// GetBySlug handles GET /api/v1/universes/:id/entities/slug/:slug.
func (h *Handler) GetBySlug(c echo.Context) error {
	e, err := h.svc.GetBySlug(c.Request().Context(), c.Param("id"), c.Param("slug"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, e)
}

// List handles GET /api/v1/universes/:id/entities.
// Query params: kind, q, page, per_page.
func (h *Handler) List(c echo.Context) error {
	opts := ListOptions{
		Kind:   Kind(c.QueryParam("kind")),
		Search: c.QueryParam("q"),
	}
	opts.Page, _ = strconv.Atoi(c.QueryParam("page"))
	opts.PerPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	opts.Normalize()

	entities, total, err := h.svc.List(c.Request().Context(), c.Param("id"), opts)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	if entities == nil {
		entities = []Entity{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data":     entities,
		"total":    total,
		"page":     opts.Page,
		"per_page": opts.PerPage,
	})
}

// Counts handles GET /api/v1/universes/:id/entities/counts.
func (h *Handler) Counts(c echo.Context) error {
	counts, err := h.svc.Counts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, counts)
}

// Update handles PUT /api/v1/entities/:id.
func (h *Handler) Update(c echo.Context) error {
	var req UpdateEntityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	e, err := h.svc.Update(c.Request().Context(), c.Param("id"), UpdateEntityInput{
		Name:        req.Name,
		Description: req.Description,
		Attributes:  req.Attributes,
		ParentID:    req.ParentID,
	})
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}

	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /api/v1/entities/:id.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.NoContent(http.StatusNoContent)
}
