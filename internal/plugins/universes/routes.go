package universes

import "github.com/labstack/echo/v4"

// RegisterRoutes adds the universe endpoints to the API group.
func RegisterRoutes(api *echo.Group, h *Handler) {
	api.GET("/universes", h.List)
	api.POST("/universes", h.Create)
	api.GET("/universes/:id", h.Get)
	api.PUT("/universes/:id", h.Update)
	api.DELETE("/universes/:id", h.Delete)
}
