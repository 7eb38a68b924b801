package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-route-query-service/internal/adapter/http/response"
)

// GetPreferences handles GET /api/v1/users/:id/preferences
//
// @Summary Stored search preferences of a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} PreferencesDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No preferences stored"
// @Router /api/v1/users/{id}/preferences [get]
func (h *FlightHandler) GetPreferences(c echo.Context) error {
	var p UserPath
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return response.BadRequest(c, "id must be a positive integer")
	}
	if err := p.Validate(); err != nil {
		return h.handleError(c, err, "")
	}

	prefs, err := h.preferences.GetPreferences(c.Request().Context(), p.UserID)
	if err != nil {
		return h.handleError(c, err, "No preferences stored for this user")
	}
	return response.OK(c, ToPreferencesDTO(prefs))
}

// SavePreferences handles PUT /api/v1/users/:id/preferences
//
// @Summary Replace the search preferences of a user
// @Description The body is a flat object of preference fields. Empty strings clear a field; unknown fields are stored as-is.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object true "Preference fields"
// @Success 200 {object} PreferencesDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/users/{id}/preferences [put]
func (h *FlightHandler) SavePreferences(c echo.Context) error {
	var p UserPath
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return response.BadRequest(c, "id must be a positive integer")
	}
	if err := p.Validate(); err != nil {
		return h.handleError(c, err, "")
	}

	raw := map[string]interface{}{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &raw); err != nil {
		return response.InvalidRequestBody(c)
	}

	prefs, err := h.preferences.SavePreferences(c.Request().Context(), p.UserID, raw)
	if err != nil {
		return h.handleError(c, err, "")
	}
	return response.OK(c, ToPreferencesDTO(prefs))
}

// AddItinerary handles POST /api/v1/itineraries
//
// @Summary Save a flight leg to a user's itinerary
// @Tags users
// @Accept json
// @Produce json
// @Param request body AddItineraryRequest true "Itinerary"
// @Success 201 {object} ItineraryDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown leg"
// @Router /api/v1/itineraries [post]
func (h *FlightHandler) AddItinerary(c echo.Context) error {
	var req AddItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleError(c, err, "")
	}

	it, err := h.itineraries.AddItinerary(c.Request().Context(), req.UserID, req.LegID)
	if err != nil {
		return h.handleError(c, err, "Flight leg not found")
	}
	return response.Created(c, ToItineraryDTO(it))
}

// CreateUser handles POST /api/v1/users
//
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User"
// @Success 201 {object} UserDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Email already registered"
// @Router /api/v1/users [post]
func (h *FlightHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleError(c, err, "")
	}

	user, err := ToDomainUser(&req)
	if err != nil {
		return h.handleError(c, err, "")
	}

	created, err := h.users.CreateUser(c.Request().Context(), user)
	if err != nil {
		return h.handleError(c, err, "")
	}
	return response.Created(c, ToUserDTO(created))
}
