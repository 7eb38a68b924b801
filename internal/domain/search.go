package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// SearchCriteria defines the parameters for a flight leg search.
type SearchCriteria struct {
	// Source is the IATA code of the departure airport (e.g., "JFK")
	Source string `json:"source"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`

	// Airline is the carrier display name; it is resolved to a carrier code before querying
	Airline string `json:"airline"`

	// Nonstop restricts results to single-segment legs when true
	Nonstop bool `json:"nonstop"`

	// Preference holds optional filters; the zero value adds none
	Preference Preference `json:"preference"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Normalize upper-cases airport codes and trims the airline name.
func (s *SearchCriteria) Normalize() {
	s.Source = strings.ToUpper(strings.TrimSpace(s.Source))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.Airline = strings.TrimSpace(s.Airline)
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Source == "" {
		return fmt.Errorf("%w: source is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Source) {
		return fmt.Errorf("%w: source must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Source)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Airline == "" {
		return fmt.Errorf("%w: airline is required", ErrInvalidRequest)
	}

	return nil
}
