package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/logger"
)

// SearchRequest is the input of a flight search.
type SearchRequest struct {
	Source      string
	Destination string
	Airline     string
	Nonstop     bool

	// Preferences is the loosely-typed preference mapping; unknown keys are ignored
	Preferences map[string]interface{}
}

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// SearchFlights returns the legs matching req ordered by date then departure
	// time. An unknown airline or a failed read yields an empty result.
	SearchFlights(ctx context.Context, req SearchRequest) ([]domain.FlightLeg, error)
}

type flightSearchUseCase struct {
	legs     domain.LegStore
	carriers domain.CarrierResolver
	timeout  time.Duration
	log      *logger.Logger
}

// NewFlightSearchUseCase creates a FlightSearchUseCase.
// If config is nil, default values are used.
func NewFlightSearchUseCase(legs domain.LegStore, carriers domain.CarrierResolver, config *Config) FlightSearchUseCase {
	cfg := resolve(config)
	return &flightSearchUseCase{
		legs:     legs,
		carriers: carriers,
		timeout:  cfg.SearchTimeout,
		log:      cfg.Logger.WithComponent("flight-search"),
	}
}

// SearchFlights implements FlightSearchUseCase.SearchFlights.
func (uc *flightSearchUseCase) SearchFlights(ctx context.Context, req SearchRequest) ([]domain.FlightLeg, error) {
	pref, err := domain.ParsePreference(NormalizePreferences(req.Preferences))
	if err != nil {
		return nil, err
	}

	criteria := domain.SearchCriteria{
		Source:      req.Source,
		Destination: req.Destination,
		Airline:     req.Airline,
		Nonstop:     req.Nonstop,
		Preference:  pref,
	}
	criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	code, found, err := uc.carriers.ResolveCarrierCode(ctx, criteria.Airline)
	if err != nil {
		if isContextErr(err) {
			return nil, err
		}
		uc.log.Error().Err(err).Str("airline", criteria.Airline).Msg("carrier lookup failed")
		return []domain.FlightLeg{}, nil
	}
	if !found {
		uc.log.Debug().Str("airline", criteria.Airline).Msg("unknown airline, returning no legs")
		return []domain.FlightLeg{}, nil
	}

	// Abandoned before the read: issue nothing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	legs, err := uc.legs.FindLegs(ctx, criteria, code)
	if err != nil {
		if domain.IsRowShape(err) || domain.IsInvalidRequest(err) || isContextErr(err) {
			return nil, err
		}
		uc.log.Error().Err(err).
			Str("source", criteria.Source).
			Str("destination", criteria.Destination).
			Str("carrier", code).
			Msg("leg query failed")
		return []domain.FlightLeg{}, nil
	}

	uc.log.Debug().
		Str("source", criteria.Source).
		Str("destination", criteria.Destination).
		Str("carrier", code).
		Int("results", len(legs)).
		Msg("leg search completed")

	return SortLegs(legs), nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
