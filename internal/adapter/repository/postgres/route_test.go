package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

func TestRouteRepository_RoutesBetween(t *testing.T) {
	rows := &fakeRows{rows: [][]any{
		{"JFK", "LAX", "American Airlines"},
		{"JFK", "LAX", "Delta Air Lines"},
	}}
	db := &fakeQuerier{rows: rows}

	routes, err := NewRouteRepository(db).RoutesBetween(context.Background(), "JFK", "LAX")
	require.NoError(t, err)

	assert.Equal(t, []domain.Route{
		{SourceIATA: "JFK", DestinationIATA: "LAX", Airline: "American Airlines"},
		{SourceIATA: "JFK", DestinationIATA: "LAX", Airline: "Delta Air Lines"},
	}, routes)
	assert.Equal(t, []any{"JFK", "LAX"}, db.lastArgs)
	assert.Contains(t, db.lastSQL, "WHERE a1.iata = $1 AND a2.iata = $2")
	assert.True(t, rows.closed)
}

func TestRouteRepository_RoutesByAirline(t *testing.T) {
	db := &fakeQuerier{rows: &fakeRows{rows: [][]any{{"ATL", "BOS", "Delta Air Lines"}}}}

	routes, err := NewRouteRepository(db).RoutesByAirline(context.Background(), "Delta Air Lines")
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "ATL", routes[0].SourceIATA)
	assert.Contains(t, db.lastSQL, "WHERE al.airlinename = $1")
}

func TestRouteRepository_RoutesBetweenCountries(t *testing.T) {
	db := &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{"Canada", "United States", "YYZ", "JFK", "Air Canada"},
	}}}

	routes, err := NewRouteRepository(db).RoutesBetweenCountries(context.Background(), "Canada", "United States")
	require.NoError(t, err)
	assert.Equal(t, []domain.CountryRoute{{
		SourceCountry:      "Canada",
		DestinationCountry: "United States",
		SourceIATA:         "YYZ",
		DestinationIATA:    "JFK",
		Airline:            "Air Canada",
	}}, routes)
}

func TestRouteRepository_RoutesFromCountry(t *testing.T) {
	db := &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{int64(3797), "JFK", "John F Kennedy International Airport", "New York", "LAX", "Los Angeles International Airport", "Los Angeles"},
	}}}

	routes, err := NewRouteRepository(db).RoutesFromCountry(context.Background(), "United States")
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, int64(3797), routes[0].SourceAirportID)
	assert.Equal(t, "Los Angeles", routes[0].DestinationCityName)
	assert.Equal(t, []any{"United States"}, db.lastArgs)
}

func TestRouteRepository_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("query error", func(t *testing.T) {
		repo := NewRouteRepository(&fakeQuerier{queryErr: errors.New("down")})

		_, err := repo.RoutesBetween(ctx, "JFK", "LAX")
		assert.ErrorContains(t, err, "routesBetween query")
		_, err = repo.RoutesBetweenCountries(ctx, "A", "B")
		assert.ErrorContains(t, err, "routesBetweenCountries query")
		_, err = repo.RoutesFromCountry(ctx, "A")
		assert.ErrorContains(t, err, "routesFromCountry query")
	})

	t.Run("scan error", func(t *testing.T) {
		rows := &fakeRows{rows: [][]any{{"JFK", "LAX"}}}
		repo := NewRouteRepository(&fakeQuerier{rows: rows})

		_, err := repo.RoutesByAirline(ctx, "Delta")
		assert.ErrorContains(t, err, "routesByAirline scan")
		assert.True(t, rows.closed)
	})
}
