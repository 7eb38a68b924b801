package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

// RouteLookupUseCase answers route lookups. Every method returns a wrapped
// domain.ErrNotFound when nothing matches.
type RouteLookupUseCase interface {
	RoutesBetween(ctx context.Context, sourceIATA, destinationIATA string) ([]domain.Route, error)
	RoutesByAirline(ctx context.Context, airlineName string) ([]domain.Route, error)
	RoutesBetweenCountries(ctx context.Context, sourceCountry, destinationCountry string) ([]domain.CountryRoute, error)
	RoutesFromCountry(ctx context.Context, country string) ([]domain.AirportRoute, error)
}

type routeLookupUseCase struct {
	routes domain.RouteRepository
}

// NewRouteLookupUseCase creates a RouteLookupUseCase.
func NewRouteLookupUseCase(routes domain.RouteRepository) RouteLookupUseCase {
	return &routeLookupUseCase{routes: routes}
}

func (uc *routeLookupUseCase) RoutesBetween(ctx context.Context, sourceIATA, destinationIATA string) ([]domain.Route, error) {
	src := strings.ToUpper(strings.TrimSpace(sourceIATA))
	dst := strings.ToUpper(strings.TrimSpace(destinationIATA))
	if src == "" || dst == "" {
		return nil, domain.WrapInvalidRequest("source and destination IATA codes are required")
	}

	routes, err := uc.routes.RoutesBetween(ctx, src, dst)
	if err != nil {
		return nil, fmt.Errorf("routes between %s and %s: %w", src, dst, err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("no routes between %s and %s: %w", src, dst, domain.ErrNotFound)
	}
	return routes, nil
}

func (uc *routeLookupUseCase) RoutesByAirline(ctx context.Context, airlineName string) ([]domain.Route, error) {
	name := strings.TrimSpace(airlineName)
	if name == "" {
		return nil, domain.WrapInvalidRequest("airline name is required")
	}

	routes, err := uc.routes.RoutesByAirline(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("routes for airline %q: %w", name, err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("no routes for airline %q: %w", name, domain.ErrNotFound)
	}
	return routes, nil
}

func (uc *routeLookupUseCase) RoutesBetweenCountries(ctx context.Context, sourceCountry, destinationCountry string) ([]domain.CountryRoute, error) {
	src := strings.TrimSpace(sourceCountry)
	dst := strings.TrimSpace(destinationCountry)
	if src == "" || dst == "" {
		return nil, domain.WrapInvalidRequest("source and destination countries are required")
	}

	routes, err := uc.routes.RoutesBetweenCountries(ctx, src, dst)
	if err != nil {
		return nil, fmt.Errorf("routes between %s and %s: %w", src, dst, err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("no routes between %s and %s: %w", src, dst, domain.ErrNotFound)
	}
	return routes, nil
}

func (uc *routeLookupUseCase) RoutesFromCountry(ctx context.Context, country string) ([]domain.AirportRoute, error) {
	name := strings.TrimSpace(country)
	if name == "" {
		return nil, domain.WrapInvalidRequest("country is required")
	}

	routes, err := uc.routes.RoutesFromCountry(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("routes from %s: %w", name, err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("no routes from %s: %w", name, domain.ErrNotFound)
	}
	return routes, nil
}

var _ RouteLookupUseCase = (*routeLookupUseCase)(nil)
