package usecase

import (
	"sort"

	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

// SortLegs orders legs by flight date, then by local departure time of the
// first segment. Legs with equal keys keep their relative order. Legs whose
// departure cannot be parsed sort last within their date.
//
// Does NOT mutate the input slice.
func SortLegs(legs []domain.FlightLeg) []domain.FlightLeg {
	if len(legs) == 0 {
		return legs
	}

	type keyed struct {
		leg       domain.FlightLeg
		departure int
	}

	items := make([]keyed, len(legs))
	for i, leg := range legs {
		items[i] = keyed{leg: leg, departure: departureKey(leg)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].leg.FlightDate, items[j].leg.FlightDate
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return items[i].departure < items[j].departure
	})

	result := make([]domain.FlightLeg, len(items))
	for i, it := range items {
		result[i] = it.leg
	}
	return result
}

func departureKey(leg domain.FlightLeg) int {
	t, err := timeutil.ParseSegmentTime(leg.FirstDepartureRaw())
	if err != nil {
		return timeutil.SecondsPerDay
	}
	return timeutil.SecondsSinceMidnight(t)
}
