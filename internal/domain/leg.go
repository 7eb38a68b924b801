// Package domain contains the core entities and rules for the flight route query service.
// These types are storage-agnostic; adapters map rows and requests onto them.
package domain

import (
	"strings"
	"time"
)

// SegmentSeparator joins per-segment values in multi-segment legs.
const SegmentSeparator = "||"

// FlightLeg is a single itinerary option with fare and timing data.
// It is produced by the leg store and never written by this service.
type FlightLeg struct {
	// LegID is the dataset identifier of the leg
	LegID string `json:"legId"`

	// StartingAirport is the IATA code of the origin airport
	StartingAirport string `json:"startingAirport"`

	// DestinationAirport is the IATA code of the destination airport
	DestinationAirport string `json:"destinationAirport"`

	// FlightDate is the calendar date of the flight
	FlightDate time.Time `json:"flightDate"`

	// TravelDuration is the elapsed travel time as an ISO-8601 duration (e.g. "PT2H30M")
	TravelDuration string `json:"travelDuration"`

	// TravelMinutes is TravelDuration converted to minutes
	TravelMinutes int `json:"travelMinutes"`

	// Per-segment raw values, joined with SegmentSeparator
	SegmentsDepartureTimeRaw     string `json:"segmentsDepartureTimeRaw"`
	SegmentsArrivalTimeRaw       string `json:"segmentsArrivalTimeRaw"`
	SegmentsAirlineCode          string `json:"segmentsAirlineCode"`
	SegmentsCabinCode            string `json:"segmentsCabinCode"`
	SegmentsEquipmentDescription string `json:"segmentsEquipmentDescription"`

	// SegmentsDurationInSeconds is the summed in-air duration of all segments
	SegmentsDurationInSeconds int64 `json:"segmentsDurationInSeconds"`

	BaseFare       float64 `json:"baseFare"`
	TotalFare      float64 `json:"totalFare"`
	SeatsRemaining int     `json:"seatsRemaining"`
	IsBasicEconomy bool    `json:"isBasicEconomy"`
	IsRefundable   bool    `json:"isRefundable"`
	IsNonStop      bool    `json:"isNonStop"`

	// LayoverMinutes is the total time spent between connecting segments
	LayoverMinutes int `json:"layoverMinutes"`

	// Layovers holds the gap before each connecting segment, in minutes
	Layovers []int `json:"layovers,omitempty"`
}

// Segments splits a SegmentSeparator-joined value into its parts.
// An empty value yields no segments.
func Segments(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, SegmentSeparator)
}

// FirstDepartureRaw returns the raw departure timestamp of the first segment.
func (l FlightLeg) FirstDepartureRaw() string {
	parts := Segments(l.SegmentsDepartureTimeRaw)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
