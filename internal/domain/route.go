package domain

import "time"

// Route is a carrier serving an airport pair.
type Route struct {
	SourceIATA      string `json:"sourceIATA"`
	DestinationIATA string `json:"destinationIATA"`
	Airline         string `json:"airline"`
}

// CountryRoute is a Route annotated with the countries at both ends.
type CountryRoute struct {
	SourceCountry      string `json:"sourceCountry"`
	DestinationCountry string `json:"destinationCountry"`
	SourceIATA         string `json:"sourceIATA"`
	DestinationIATA    string `json:"destinationIATA"`
	Airline            string `json:"airline"`
}

// AirportRoute describes a route leaving an airport, with airport and city names.
type AirportRoute struct {
	SourceAirportID        int64  `json:"sourceAirportID"`
	SourceIATA             string `json:"sourceIATA"`
	SourceAirportName      string `json:"sourceAirportName"`
	SourceCityName         string `json:"sourceCityName"`
	DestinationIATA        string `json:"destinationIATA"`
	DestinationAirportName string `json:"destinationAirportName"`
	DestinationCityName    string `json:"destinationCityName"`
}

// UserPreferences is the stored preference record of a user.
type UserPreferences struct {
	UserID int64 `json:"userId"`

	// Preference holds the fields the search builder understands
	Preference Preference `json:"preference"`

	// Ancillary holds other preference fields (transportation, hotel, ...) verbatim
	Ancillary map[string]interface{} `json:"ancillary,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// Itinerary links a user to a saved flight leg.
type Itinerary struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	LegID     string    `json:"legId"`
	CreatedAt time.Time `json:"createdAt"`
}
