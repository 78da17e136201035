package universes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
)

// Handler serves the universe REST endpoints.
type Handler struct {
	svc UniverseService
}

// NewHandler creates a new universe handler.
func NewHandler(svc UniverseService) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/universes.
func (h *Handler) Create(c echo.Context) error {
	var req CreateUniverseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	u, err := h.svc.Create(c.Request().Context(), CreateUniverseInput{
		Name:        req.Name,
		Genre:       req.Genre,
		Description: req.Description,
	})
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}

	return c.JSON(http.StatusCreated, u)
}

// Get handles GET /api/v1/universes/:id.
func (h *Handler) Get(c echo.Context) error {
	u, err := h.svc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, u)
}

// List handles GET /api/v1/universes.
func (h *Handler) List(c echo.Context) error {
	universes, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	if universes == nil {
		universes = []Universe{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  universes,
		"total": len(universes),
	})
}

// Update handles PUT /api/v1/universes/:id.
func (h *Handler) Update(c echo.Context) error {
	var req UpdateUniverseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	u, err := h.svc.Update(c.Request().Context(), c.Param("id"), UpdateUniverseInput{
		Name:        req.Name,
		Genre:       req.Genre,
		Description: req.Description,
	})
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}

	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /api/v1/universes/:id.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.NoContent(http.StatusNoContent)
}
