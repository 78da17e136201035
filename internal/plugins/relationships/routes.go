package relationships

import "github.com/labstack/echo/v4"

// RegisterRoutes adds the relationship endpoints to the API group.
func RegisterRoutes(api *echo.Group, h *Handler) {
	api.POST("/universes/:id/relationships", h.Create)
	api.GET("/entities/:id/relationships", h.ListByEntity)
	api.GET("/relationships/:id", h.Get)
	api.PUT("/relationships/:id", h.Update)
	api.DELETE("/relationships/:id", h.Delete)
}
