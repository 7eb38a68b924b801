package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes. Health checks sit at the root and
// skip middleware; everything else lives under /api/v1 behind middleware.
func RegisterRoutes(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	routes := api.Group("/routes")
	routes.GET("", h.RoutesBetween)
	routes.GET("/airline", h.RoutesByAirline)
	routes.GET("/countries", h.RoutesBetweenCountries)

	api.GET("/countries/:country/routes", h.RoutesFromCountry)

	api.POST("/users", h.CreateUser)

	users := api.Group("/users/:id")
	users.GET("/preferences", h.GetPreferences)
	users.PUT("/preferences", h.SavePreferences)

	api.POST("/itineraries", h.AddItinerary)
}
