package calendars

import "github.com/labstack/echo/v4"

// RegisterRoutes adds the calendar endpoints to the API group.
func RegisterRoutes(api *echo.Group, h *Handler) {
	api.GET("/calendars/presets", h.ListPresets)

	api.GET("/universes/:id/calendars", h.List)
	api.POST("/universes/:id/calendars", h.Create)
	api.POST("/universes/:id/calendars/from-preset", h.CreateFromPreset)

	api.GET("/calendars/:id", h.Get)
	api.PUT("/calendars/:id", h.Update)
	api.PUT("/calendars/:id/current-date", h.SetCurrentDate)
	api.DELETE("/calendars/:id", h.Delete)

	api.POST("/calendars/:id/convert/to-custom", h.ConvertToCustom)
	api.POST("/calendars/:id/convert/to-standard", h.ConvertToStandard)
	api.POST("/calendars/:id/format", h.Format)
	api.POST("/calendars/:id/age", h.Age)
}
