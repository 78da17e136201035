package entities

import "github.com/labstack/echo/v4"

// RegisterRoutes adds the entity endpoints to the API group.
func RegisterRoutes(api *echo.Group, h *Handler) {
	api.GET("/universes/:id/entities", h.List)
	api.POST("/universes/:id/entities", h.Create)
	api.GET("/universes/:id/entities/counts", h.Counts)
	api.GET("/universes/:id/entities/slug/:slug", h.GetBySlug)
	api.GET("/entities/:id", h.Get)
	api.PUT("/entities/:id", h.Update)
	api.DELETE("/entities/:id", h.Delete)
}
