package domain

import "context"

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=domain

// LegStore reads flight legs matching a search.
type LegStore interface {
	// FindLegs returns the legs operated by carrierCode that match criteria,
	// ordered by flight date then departure time.
	FindLegs(ctx context.Context, criteria SearchCriteria, carrierCode string) ([]FlightLeg, error)
}

// CarrierResolver maps carrier display names to carrier codes.
type CarrierResolver interface {
	// ResolveCarrierCode returns the code for name. found is false when no
	// carrier matches; that is not an error.
	ResolveCarrierCode(ctx context.Context, name string) (code string, found bool, err error)
}

// RouteRepository answers route lookups.
type RouteRepository interface {
	RoutesBetween(ctx context.Context, sourceIATA, destinationIATA string) ([]Route, error)
	RoutesByAirline(ctx context.Context, airlineName string) ([]Route, error)
	RoutesBetweenCountries(ctx context.Context, sourceCountry, destinationCountry string) ([]CountryRoute, error)
	RoutesFromCountry(ctx context.Context, country string) ([]AirportRoute, error)
}

// PreferenceRepository persists user preference records.
type PreferenceRepository interface {
	// GetPreferences returns ErrNotFound when the user has no stored record.
	GetPreferences(ctx context.Context, userID int64) (*UserPreferences, error)
	SavePreferences(ctx context.Context, prefs UserPreferences) error
}

// ItineraryRepository persists itineraries.
type ItineraryRepository interface {
	LegExists(ctx context.Context, legID string) (bool, error)
	AddItinerary(ctx context.Context, itinerary Itinerary) error
}

// UserRepository persists users.
type UserRepository interface {
	// CreateUser inserts user and returns the id the store assigned.
	CreateUser(ctx context.Context, user User) (int64, error)
}
