package postgres

import (
	"context"
	"fmt"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

// RouteRepository answers route lookups over the hasroutes, airports, cities
// and airline tables.
type RouteRepository struct {
	db Querier
}

// NewRouteRepository creates a RouteRepository over db.
func NewRouteRepository(db Querier) *RouteRepository {
	return &RouteRepository{db: db}
}

const routeJoins = `
	FROM hasroutes hr
	JOIN airports a1 ON hr.source_airport_id = a1.airport_id
	JOIN airports a2 ON hr.destination_airport_id = a2.airport_id
	JOIN airline al ON hr.airlineid = al.airlineid`

// RoutesBetween returns the carriers flying sourceIATA to destinationIATA.
func (r *RouteRepository) RoutesBetween(ctx context.Context, sourceIATA, destinationIATA string) ([]domain.Route, error) {
	return r.routes(ctx, "routesBetween",
		`SELECT a1.iata, a2.iata, al.airlinename`+routeJoins+`
		 WHERE a1.iata = $1 AND a2.iata = $2
		 ORDER BY al.airlinename`,
		sourceIATA, destinationIATA)
}

// RoutesByAirline returns every route flown by the named airline.
func (r *RouteRepository) RoutesByAirline(ctx context.Context, airlineName string) ([]domain.Route, error) {
	return r.routes(ctx, "routesByAirline",
		`SELECT a1.iata, a2.iata, al.airlinename`+routeJoins+`
		 WHERE al.airlinename = $1
		 ORDER BY a1.iata, a2.iata`,
		airlineName)
}

func (r *RouteRepository) routes(ctx context.Context, op, sql string, args ...any) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s query: %w", op, err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var rt domain.Route
		if err := rows.Scan(&rt.SourceIATA, &rt.DestinationIATA, &rt.Airline); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}
	return routes, nil
}

// RoutesBetweenCountries returns routes from airports in sourceCountry to
// airports in destinationCountry.
func (r *RouteRepository) RoutesBetweenCountries(ctx context.Context, sourceCountry, destinationCountry string) ([]domain.CountryRoute, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c1.country, c2.country, a1.iata, a2.iata, al.airlinename`+routeJoins+`
		 JOIN cities c1 ON a1.city_id = c1.city_id
		 JOIN cities c2 ON a2.city_id = c2.city_id
		 WHERE c1.country = $1 AND c2.country = $2
		 ORDER BY a1.iata, a2.iata, al.airlinename`,
		sourceCountry, destinationCountry)
	if err != nil {
		return nil, fmt.Errorf("routesBetweenCountries query: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.CountryRoute, 0)
	for rows.Next() {
		var rt domain.CountryRoute
		if err := rows.Scan(&rt.SourceCountry, &rt.DestinationCountry,
			&rt.SourceIATA, &rt.DestinationIATA, &rt.Airline); err != nil {
			return nil, fmt.Errorf("routesBetweenCountries scan: %w", err)
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("routesBetweenCountries rows: %w", err)
	}
	return routes, nil
}

// RoutesFromCountry returns the routes leaving every airport in country.
func (r *RouteRepository) RoutesFromCountry(ctx context.Context, country string) ([]domain.AirportRoute, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a1.airport_id, a1.iata, a1.airportname, c1.cityname,
		        a2.iata, a2.airportname, c2.cityname
		 FROM airports a1
		 JOIN cities c1 ON a1.city_id = c1.city_id
		 JOIN hasroutes hr ON a1.airport_id = hr.source_airport_id
		 JOIN airports a2 ON hr.destination_airport_id = a2.airport_id
		 JOIN cities c2 ON a2.city_id = c2.city_id
		 WHERE c1.country = $1
		 ORDER BY a1.iata, a2.iata`,
		country)
	if err != nil {
		return nil, fmt.Errorf("routesFromCountry query: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.AirportRoute, 0)
	for rows.Next() {
		var rt domain.AirportRoute
		if err := rows.Scan(&rt.SourceAirportID, &rt.SourceIATA, &rt.SourceAirportName, &rt.SourceCityName,
			&rt.DestinationIATA, &rt.DestinationAirportName, &rt.DestinationCityName); err != nil {
			return nil, fmt.Errorf("routesFromCountry scan: %w", err)
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("routesFromCountry rows: %w", err)
	}
	return routes, nil
}

var _ domain.RouteRepository = (*RouteRepository)(nil)
