// Package mock provides test doubles for the flight route query service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

// LegStore is a configurable mock implementation of domain.LegStore.
// It records the criteria of every call so tests can assert what the
// use case asked for.
type LegStore struct {
	legs      []domain.FlightLeg
	err       error
	delay     time.Duration
	callCount int
	calls     []LegQuery
	mu        sync.Mutex
}

// LegQuery is one recorded FindLegs call.
type LegQuery struct {
	Criteria    domain.SearchCriteria
	CarrierCode string
}

// NewLegStore creates an empty mock leg store.
func NewLegStore() *LegStore {
	return &LegStore{}
}

// WithLegs configures the store to return the given legs.
func (s *LegStore) WithLegs(legs []domain.FlightLeg) *LegStore {
	s.legs = legs
	return s
}

// WithError configures the store to return the given error.
func (s *LegStore) WithError(err error) *LegStore {
	s.err = err
	return s
}

// WithDelay configures the store to wait the given duration before responding.
func (s *LegStore) WithDelay(d time.Duration) *LegStore {
	s.delay = d
	return s
}

// FindLegs implements domain.LegStore.
// It respects context cancellation, applies the configured delay and
// returns a copy of the configured legs.
func (s *LegStore) FindLegs(ctx context.Context, criteria domain.SearchCriteria, carrierCode string) ([]domain.FlightLeg, error) {
	s.mu.Lock()
	s.callCount++
	s.calls = append(s.calls, LegQuery{Criteria: criteria, CarrierCode: carrierCode})
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}

	out := make([]domain.FlightLeg, len(s.legs))
	copy(out, s.legs)
	return out, nil
}

// CallCount returns the number of times FindLegs was called.
func (s *LegStore) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// LastQuery returns the most recent FindLegs call.
func (s *LegStore) LastQuery() (LegQuery, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return LegQuery{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// Queries returns a copy of every recorded FindLegs call in call order.
func (s *LegStore) Queries() []LegQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LegQuery, len(s.calls))
	copy(out, s.calls)
	return out
}

// Reset clears the recorded calls.
func (s *LegStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
	s.calls = nil
}

var _ domain.LegStore = (*LegStore)(nil)

// Carriers is a mock domain.CarrierResolver backed by a name to code map.
// Names are matched ignoring case and surrounding whitespace.
type Carriers struct {
	codes     map[string]string
	err       error
	callCount int
	mu        sync.Mutex
}

// NewCarriers creates a resolver knowing the given name to code pairs.
func NewCarriers(codes map[string]string) *Carriers {
	c := &Carriers{codes: make(map[string]string, len(codes))}
	for name, code := range codes {
		c.codes[carrierKey(name)] = code
	}
	return c
}

// WithError configures the resolver to fail every lookup.
func (c *Carriers) WithError(err error) *Carriers {
	c.err = err
	return c
}

// ResolveCarrierCode implements domain.CarrierResolver.
func (c *Carriers) ResolveCarrierCode(ctx context.Context, name string) (string, bool, error) {
	c.mu.Lock()
	c.callCount++
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if c.err != nil {
		return "", false, c.err
	}
	code, ok := c.codes[carrierKey(name)]
	return code, ok, nil
}

// CallCount returns the number of lookups made.
func (c *Carriers) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

var _ domain.CarrierResolver = (*Carriers)(nil)

func carrierKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultCarriers returns a resolver knowing a handful of US carriers.
func DefaultCarriers() *Carriers {
	return NewCarriers(map[string]string{
		"Delta Air Lines":   "DL",
		"American Airlines": "AA",
		"United Airlines":   "UA",
		"JetBlue Airways":   "B6",
	})
}

// SampleLegs generates count nonstop JFK to LAX legs for carrier, departing
// hourly from 06:00 Eastern on 2022-04-17. Departures repeat after twelve legs.
// Useful for quickly populating test data.
func SampleLegs(carrier string, count int) []domain.FlightLeg {
	date := time.Date(2022, 4, 17, 0, 0, 0, 0, time.UTC)
	legs := make([]domain.FlightLeg, count)
	for i := 0; i < count; i++ {
		hour := 6 + i%12
		legs[i] = domain.FlightLeg{
			LegID:                        fmt.Sprintf("%s-leg-%d", strings.ToLower(carrier), i+1),
			StartingAirport:              "JFK",
			DestinationAirport:           "LAX",
			FlightDate:                   date,
			TravelDuration:               "PT6H",
			TravelMinutes:                360,
			SegmentsDepartureTimeRaw:     fmt.Sprintf("2022-04-17T%02d:00:00.000-04:00", hour),
			SegmentsArrivalTimeRaw:       fmt.Sprintf("2022-04-17T%02d:00:00.000-07:00", hour+3),
			SegmentsAirlineCode:          carrier,
			SegmentsCabinCode:            string(domain.CabinCoach),
			SegmentsEquipmentDescription: "Airbus A321",
			SegmentsDurationInSeconds:    21600,
			BaseFare:                     250 + float64(i)*10,
			TotalFare:                    290 + float64(i)*10,
			SeatsRemaining:               9,
			IsNonStop:                    true,
		}
	}
	return legs
}
