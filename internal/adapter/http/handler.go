// Package http provides the HTTP handler layer for the flight route query API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-route-query-service/internal/adapter/http/middleware"
	"github.com/flight-search/flight-route-query-service/internal/adapter/http/response"
	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-route-query-service/internal/usecase"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services groups the use cases served over HTTP.
type Services struct {
	Search      usecase.FlightSearchUseCase
	Routes      usecase.RouteLookupUseCase
	Preferences usecase.PreferencesUseCase
	Itineraries usecase.ItineraryUseCase
	Users       usecase.UserUseCase

	// Store backs the readiness check; nil reports ready unconditionally
	Store Pinger

	// Logger receives unexpected errors; nil disables logging
	Logger *logger.Logger
}

// FlightHandler handles HTTP requests for flight, route and user endpoints.
type FlightHandler struct {
	search      usecase.FlightSearchUseCase
	routes      usecase.RouteLookupUseCase
	preferences usecase.PreferencesUseCase
	itineraries usecase.ItineraryUseCase
	users       usecase.UserUseCase
	store       Pinger
	log         *logger.Logger
}

// NewFlightHandler creates a new FlightHandler with the given use cases.
func NewFlightHandler(s Services) *FlightHandler {
	log := s.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &FlightHandler{
		log:         log,
		search:      s.Search,
		routes:      s.Routes,
		preferences: s.Preferences,
		itineraries: s.Itineraries,
		users:       s.Users,
		store:       s.Store,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search flight legs
// @Description Search legs between two airports operated by one airline, filtered by optional preferences
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {array} LegDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleError(c, err, "")
	}

	legs, err := h.search.SearchFlights(c.Request().Context(), ToSearchRequest(&req))
	if err != nil {
		return h.handleError(c, err, "")
	}

	return response.SearchResults(c, ToLegDTOs(legs))
}

// handleError maps domain errors to HTTP responses. notFound is the message
// used for a domain.ErrNotFound.
func (h *FlightHandler) handleError(c echo.Context, err error, notFound string) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, notFound)
	case errors.Is(err, domain.ErrConflict):
		return response.Conflict(c, response.MsgConflict)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	h.log.WithRequestID(middleware.GetRequestID(c)).Error().
		Err(err).
		Str("path", c.Path()).
		Msg("request failed")
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple liveness check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// Ready handles GET /ready
//
// @Summary Readiness check
// @Description Reports ready once the flight database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.ErrorDetail "Database unavailable"
// @Router /ready [get]
func (h *FlightHandler) Ready(c echo.Context) error {
	if h.store != nil {
		if err := h.store.Ping(c.Request().Context()); err != nil {
			return response.ServiceUnavailable(c)
		}
	}
	return response.Ready(c)
}
