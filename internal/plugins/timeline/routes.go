package timeline

import "github.com/labstack/echo/v4"

// RegisterRoutes adds the timeline endpoints to the API group.
func RegisterRoutes(api *echo.Group, h *Handler) {
	api.GET("/universes/:id/timeline", h.ListByUniverse)
	api.POST("/universes/:id/timeline", h.Create)
	api.GET("/entities/:id/timeline", h.ListByEntity)
	api.GET("/timeline/:id", h.Get)
	api.PUT("/timeline/:id", h.Update)
	api.DELETE("/timeline/:id", h.Delete)
	api.GET("/timeline/:id/age", h.Age)
}
