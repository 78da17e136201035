package calendars

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
	"github.com/MrFrey75/WorldBuilder/internal/calendar"
)

// Handler serves the calendar REST endpoints.
type Handler struct {
	svc CalendarService
}

// NewHandler creates a new calendar handler.
func NewHandler(svc CalendarService) *Handler {
	return &Handler{svc: svc}
}

// ListPresets handles GET /api/v1/calendars/presets.
func (h *Handler) ListPresets(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"presets": calendar.PresetNames(),
	})
}

// Create handles POST /api/v1/universes/:id/calendars.
func (h *Handler) Create(c echo.Context) error {
	var req CreateCalendarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cal, err := h.svc.Create(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusCreated, cal)
}

// CreateFromPreset handles POST /api/v1/universes/:id/calendars/from-preset.
func (h *Handler) CreateFromPreset(c echo.Context) error {
	var req FromPresetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cal, err := h.svc.CreateFromPreset(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusCreated, cal)
}

// Get handles GET /api/v1/calendars/:id.
func (h *Handler) Get(c echo.Context) error {
	cal, err := h.svc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, cal)
}

// List handles GET /api/v1/universes/:id/calendars.
func (h *Handler) List(c echo.Context) error {
	cals, err := h.svc.ListByUniverse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	if cals == nil {
		cals = []Calendar{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  cals,
		"total": len(cals),
	})
}

// Update handles PUT /api/v1/calendars/:id.
func (h *Handler) Update(c echo.Context) error {
	var req CreateCalendarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cal, err := h.svc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, cal)
}

// SetCurrentDate handles PUT /api/v1/calendars/:id/current-date.
func (h *Handler) SetCurrentDate(c echo.Context) error {
	var req CurrentDateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cal, err := h.svc.SetCurrentDate(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, cal)
}

// Delete handles DELETE /api/v1/calendars/:id.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.NoContent(http.StatusNoContent)
}

// ConvertToCustom handles POST /api/v1/calendars/:id/convert/to-custom.
func (h *Handler) ConvertToCustom(c echo.Context) error {
	var req ConvertToCustomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.svc.ConvertToCustom(c.Request().Context(), c.Param("id"), req.Date)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, result)
}

// ConvertToStandard handles POST /api/v1/calendars/:id/convert/to-standard.
func (h *Handler) ConvertToStandard(c echo.Context) error {
	var req ConvertToStandardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	date, err := h.svc.ConvertToStandard(c.Request().Context(), c.Param("id"),
		req.Year, req.Month, req.Day)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"date": date})
}

// Format handles POST /api/v1/calendars/:id/format.
func (h *Handler) Format(c echo.Context) error {
	var req FormatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	display, err := h.svc.Format(c.Request().Context(), c.Param("id"),
		req.Year, req.Month, req.Day)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"display": display})
}

// Age handles POST /api/v1/calendars/:id/age.
func (h *Handler) Age(c echo.Context) error {
	var req AgeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	age, err := h.svc.AgeBetween(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return echo.NewHTTPError(apperror.SafeCode(err), apperror.SafeMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]int{"age": age})
}
