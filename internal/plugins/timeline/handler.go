package timeline

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
)

// Handler serves the timeline REST endpoints.
type Handler struct {
	svc EventService
}

// NewHandler creates a new timeline handler.
func NewHandler(svc EventService) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/universes/:id/timeline.
func (h *Handler) Create(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ev, err := h.svc.Create(c.Request().Context(), CreateEventInput{
		UniverseID:  c.Param("id"),
		CalendarID:  req.CalendarID,
		EntityID:    req.EntityID,
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Month:       req.Month,
		Day:         req.Day,
		EndYear:     req.EndYear,
		EndMonth:    req.EndMonth,
		EndDay:      req.EndDay,
	})
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}

	return c.JSON(http.StatusCreated, ev)
}

// Get handles GET /api/v1/timeline/:id.
func (h *Handler) Get(c echo.Context) error {
	ev, err := h.svc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, ev)
}

// ListByUniverse handles GET /api/v1/universes/:id/timeline.
func (h *Handler) ListByUniverse(c echo.Context) error {
	events, err := h.svc.ListByUniverse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return listResponse(c, events)
}

// ListByEntity handles GET /api/v1/entities/:id/timeline.
func (h *Handler) ListByEntity(c echo.Context) error {
	events, err := h.svc.ListByEntity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return listResponse(c, events)
}

func listResponse(c echo.Context, events []Event) error {
	if events == nil {
		events = []Event{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  events,
		"total": len(events),
	})
}

// Update handles PUT /api/v1/timeline/:id.
func (h *Handler) Update(c echo.Context) error {
	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ev, err := h.svc.Update(c.Request().Context(), c.Param("id"), UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Month:       req.Month,
		Day:         req.Day,
		EndYear:     req.EndYear,
		EndMonth:    req.EndMonth,
		EndDay:      req.EndDay,
	})
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}

	return c.JSON(http.StatusOK, ev)
}

// Delete handles DELETE /api/v1/timeline/:id.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.NoContent(http.StatusNoContent)
}

// Age handles GET /api/v1/timeline/:id/age.
// Query params year, month, day select the at-date; all omitted means the
// calendar's current date.
func (h *Handler) Age(c echo.Context) error {
	year, _ := strconv.Atoi(c.QueryParam("year"))
	month, _ := strconv.Atoi(c.QueryParam("month"))
	day, _ := strconv.Atoi(c.QueryParam("day"))

	result, err := h.svc.AgeSince(c.Request().Context(), c.Param("id"), year, month, day)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, result)
}
