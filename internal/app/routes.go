package app

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MrFrey75/WorldBuilder/internal/middleware"
	"github.com/MrFrey75/WorldBuilder/internal/plugins/calendars"
	"github.com/MrFrey75/WorldBuilder/internal/plugins/entities"
	"github.com/MrFrey75/WorldBuilder/internal/plugins/relationships"
	"github.com/MrFrey75/WorldBuilder/internal/plugins/timeline"
	"github.com/MrFrey75/WorldBuilder/internal/plugins/universes"
)

// RegisterRoutes sets up all application routes. It builds each plugin's
// repository/service/handler chain and delegates to the plugin's route
// registration function.
//
// This is the single place where all routes are aggregated. When a new
// plugin is added, its routes are registered here.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// Health check endpoint for container health monitoring.
	e.GET("/healthz", func(c echo.Context) error {
		if err := a.DB.PingContext(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded", "database": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// REST API group with a shared rate limit.
	api := e.Group("/api/v1", middleware.RateLimit(300, time.Minute))

	// --- Plugin wiring ---

	universeRepo := universes.NewUniverseRepository(a.DB)
	universeHandler := universes.NewHandler(universes.NewUniverseService(universeRepo))
	universes.RegisterRoutes(api, universeHandler)

	entityRepo := entities.NewEntityRepository(a.DB)
	entitySvc := entities.NewEntityService(entityRepo, a.Redis, a.Config.Cache.EntityCountTTL)
	entities.RegisterRoutes(api, entities.NewHandler(entitySvc))

	relationshipRepo := relationships.NewRelationshipRepository(a.DB)
	relationshipSvc := relationships.NewRelationshipService(
		relationshipRepo, relationships.NewEntityFinderAdapter(entityRepo))
	relationships.RegisterRoutes(api, relationships.NewHandler(relationshipSvc))

	calendarRepo := calendars.NewCalendarRepository(a.DB)
	calendarSvc := calendars.NewCalendarService(calendarRepo)
	calendars.RegisterRoutes(api, calendars.NewHandler(calendarSvc))

	eventRepo := timeline.NewEventRepository(a.DB)
	eventSvc := timeline.NewEventService(
		eventRepo, timeline.NewCalendarFinderAdapter(calendarRepo))
	timeline.RegisterRoutes(api, timeline.NewHandler(eventSvc))
}
