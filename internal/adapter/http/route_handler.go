package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-route-query-service/internal/adapter/http/response"
)

// RoutesBetween handles GET /api/v1/routes
//
// @Summary Routes between two airports
// @Tags routes
// @Produce json
// @Param source_iata query string true "Source IATA code"
// @Param destination_iata query string true "Destination IATA code"
// @Success 200 {array} RouteDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No routes found"
// @Router /api/v1/routes [get]
func (h *FlightHandler) RoutesBetween(c echo.Context) error {
	var q RoutesBetweenQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := q.Validate(); err != nil {
		return h.handleError(c, err, "")
	}

	routes, err := h.routes.RoutesBetween(c.Request().Context(), q.SourceIATA, q.DestinationIATA)
	if err != nil {
		return h.handleError(c, err, response.MsgNoRoutesFound)
	}
	return response.OK(c, ToRouteDTOs(routes))
}

// RoutesByAirline handles GET /api/v1/routes/airline
//
// @Summary Routes served by an airline
// @Tags routes
// @Produce json
// @Param airline_name query string true "Airline display name"
// @Success 200 {array} RouteDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No routes found"
// @Router /api/v1/routes/airline [get]
func (h *FlightHandler) RoutesByAirline(c echo.Context) error {
	var q AirlineRoutesQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := q.Validate(); err != nil {
		return h.handleError(c, err, "")
	}

	routes, err := h.routes.RoutesByAirline(c.Request().Context(), q.AirlineName)
	if err != nil {
		return h.handleError(c, err, response.MsgNoRoutesFound)
	}
	return response.OK(c, ToRouteDTOs(routes))
}

// RoutesBetweenCountries handles GET /api/v1/routes/countries
//
// @Summary Routes between two countries
// @Tags routes
// @Produce json
// @Param source_country query string true "Source country"
// @Param destination_country query string true "Destination country"
// @Success 200 {array} CountryRouteDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No routes found"
// @Router /api/v1/routes/countries [get]
func (h *FlightHandler) RoutesBetweenCountries(c echo.Context) error {
	var q CountryRoutesQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := q.Validate(); err != nil {
		return h.handleError(c, err, "")
	}

	routes, err := h.routes.RoutesBetweenCountries(c.Request().Context(), q.SourceCountry, q.DestinationCountry)
	if err != nil {
		return h.handleError(c, err, response.MsgNoRoutesFound)
	}
	return response.OK(c, ToCountryRouteDTOs(routes))
}

// RoutesFromCountry handles GET /api/v1/countries/:country/routes
//
// @Summary Routes leaving the airports of a country
// @Tags routes
// @Produce json
// @Param country path string true "Country name"
// @Success 200 {array} AirportRouteDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No routes found"
// @Router /api/v1/countries/{country}/routes [get]
func (h *FlightHandler) RoutesFromCountry(c echo.Context) error {
	routes, err := h.routes.RoutesFromCountry(c.Request().Context(), c.Param("country"))
	if err != nil {
		return h.handleError(c, err, response.MsgNoRoutesFound)
	}
	return response.OK(c, ToAirportRouteDTOs(routes))
}
