package http

import (
	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

// LegDTO is the data transfer object for a flight leg.
// It uses the snake_case column names of the leg dataset.
type LegDTO struct {
	LegID                        string  `json:"leg_id"`
	StartingAirport              string  `json:"starting_airport"`
	DestinationAirport           string  `json:"destination_airport"`
	FlightDate                   string  `json:"flight_date"`
	TravelDuration               string  `json:"travel_duration"`
	TravelMinutes                int     `json:"travel_minutes"`
	SegmentsDepartureTimeRaw     string  `json:"segments_departure_time_raw"`
	SegmentsArrivalTimeRaw       string  `json:"segments_arrival_time_raw"`
	SegmentsAirlineCode          string  `json:"segments_airline_code"`
	SegmentsCabinCode            string  `json:"segments_cabin_code"`
	SegmentsEquipmentDescription string  `json:"segments_equipment_description"`
	SegmentsDurationInSeconds    int64   `json:"segments_duration_in_seconds"`
	BaseFare                     float64 `json:"base_fare"`
	TotalFare                    float64 `json:"total_fare"`
	SeatsRemaining               int     `json:"seats_remaining"`
	IsBasicEconomy               bool    `json:"is_basic_economy"`
	IsRefundable                 bool    `json:"is_refundable"`
	IsNonStop                    bool    `json:"is_non_stop"`
	LayoverMinutes               int     `json:"layover_minutes"`
	Layovers                     []int   `json:"layovers,omitempty"`
}

// RouteDTO is a carrier serving an airport pair.
type RouteDTO struct {
	SourceIATA      string `json:"source_iata"`
	DestinationIATA string `json:"destination_iata"`
	Airline         string `json:"airline"`
}

// CountryRouteDTO is a route annotated with both countries.
type CountryRouteDTO struct {
	SourceCountry      string `json:"source_country"`
	DestinationCountry string `json:"destination_country"`
	SourceIATA         string `json:"source_iata"`
	DestinationIATA    string `json:"destination_iata"`
	Airline            string `json:"airline"`
}

// AirportRouteDTO is a route leaving an airport of a country.
type AirportRouteDTO struct {
	SourceAirportID        int64  `json:"source_airport_id"`
	SourceIATA             string `json:"source_iata"`
	SourceAirportName      string `json:"source_airport_name"`
	SourceCityName         string `json:"source_city_name"`
	DestinationIATA        string `json:"destination_iata"`
	DestinationAirportName string `json:"destination_airport_name"`
	DestinationCityName    string `json:"destination_city_name"`
}

// PreferencesDTO is the stored preference record of a user.
// Preferences flattens the typed fields and the ancillary ones into one object.
type PreferencesDTO struct {
	UserID      int64                  `json:"user_id"`
	Preferences map[string]interface{} `json:"preferences"`
	UpdatedAt   string                 `json:"updated_at"`
}

// ItineraryDTO is a saved itinerary.
type ItineraryDTO struct {
	ID        string `json:"id"`
	UserID    int64  `json:"user_id"`
	LegID     string `json:"leg_id"`
	CreatedAt string `json:"created_at"`
}

// timestampLayout formats response timestamps.
const timestampLayout = "2006-01-02T15:04:05Z07:00"

// ToLegDTOs converts legs to DTOs. A nil or empty input yields an empty slice,
// so the JSON body is [] and never null.
func ToLegDTOs(legs []domain.FlightLeg) []LegDTO {
	dtos := make([]LegDTO, len(legs))
	for i := range legs {
		dtos[i] = ToLegDTO(&legs[i])
	}
	return dtos
}

// ToLegDTO converts a domain FlightLeg to a LegDTO.
func ToLegDTO(leg *domain.FlightLeg) LegDTO {
	return LegDTO{
		LegID:                        leg.LegID,
		StartingAirport:              leg.StartingAirport,
		DestinationAirport:           leg.DestinationAirport,
		FlightDate:                   timeutil.FormatDate(leg.FlightDate),
		TravelDuration:               leg.TravelDuration,
		TravelMinutes:                leg.TravelMinutes,
		SegmentsDepartureTimeRaw:     leg.SegmentsDepartureTimeRaw,
		SegmentsArrivalTimeRaw:       leg.SegmentsArrivalTimeRaw,
		SegmentsAirlineCode:          leg.SegmentsAirlineCode,
		SegmentsCabinCode:            leg.SegmentsCabinCode,
		SegmentsEquipmentDescription: leg.SegmentsEquipmentDescription,
		SegmentsDurationInSeconds:    leg.SegmentsDurationInSeconds,
		BaseFare:                     leg.BaseFare,
		TotalFare:                    leg.TotalFare,
		SeatsRemaining:               leg.SeatsRemaining,
		IsBasicEconomy:               leg.IsBasicEconomy,
		IsRefundable:                 leg.IsRefundable,
		IsNonStop:                    leg.IsNonStop,
		LayoverMinutes:               leg.LayoverMinutes,
		Layovers:                     leg.Layovers,
	}
}

// ToRouteDTOs converts domain routes to DTOs.
func ToRouteDTOs(routes []domain.Route) []RouteDTO {
	dtos := make([]RouteDTO, len(routes))
	for i, r := range routes {
		dtos[i] = RouteDTO{
			SourceIATA:      r.SourceIATA,
			DestinationIATA: r.DestinationIATA,
			Airline:         r.Airline,
		}
	}
	return dtos
}

// ToCountryRouteDTOs converts domain country routes to DTOs.
func ToCountryRouteDTOs(routes []domain.CountryRoute) []CountryRouteDTO {
	dtos := make([]CountryRouteDTO, len(routes))
	for i, r := range routes {
		dtos[i] = CountryRouteDTO{
			SourceCountry:      r.SourceCountry,
			DestinationCountry: r.DestinationCountry,
			SourceIATA:         r.SourceIATA,
			DestinationIATA:    r.DestinationIATA,
			Airline:            r.Airline,
		}
	}
	return dtos
}

// ToAirportRouteDTOs converts domain airport routes to DTOs.
func ToAirportRouteDTOs(routes []domain.AirportRoute) []AirportRouteDTO {
	dtos := make([]AirportRouteDTO, len(routes))
	for i, r := range routes {
		dtos[i] = AirportRouteDTO(r)
	}
	return dtos
}

// AddressDTO is a postal address of a user.
type AddressDTO struct {
	FirstLine string `json:"first_line,omitempty"`
	LastLine  string `json:"last_line,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
}

// UserDTO is a registered user.
type UserDTO struct {
	UserID      int64      `json:"user_id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Address     AddressDTO `json:"address"`
	Billing     AddressDTO `json:"billing"`
	BirthDate   string     `json:"birth_date,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	CreatedAt   string     `json:"created_at"`
}

// ToUserDTO converts a user to its DTO.
func ToUserDTO(u *domain.User) UserDTO {
	dto := UserDTO{
		UserID:      u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     AddressDTO(u.Address),
		Billing:     AddressDTO(u.Billing),
		Gender:      u.Gender,
		CreatedAt:   u.CreatedAt.Format(timestampLayout),
	}
	if u.BirthDate != nil {
		dto.BirthDate = timeutil.FormatDate(*u.BirthDate)
	}
	return dto
}

// ToPreferencesDTO converts a preference record to its DTO.
func ToPreferencesDTO(p *domain.UserPreferences) PreferencesDTO {
	prefs := make(map[string]interface{}, len(p.Ancillary)+len(domain.PreferenceKeys))
	for k, v := range p.Ancillary {
		prefs[k] = v
	}
	for k, v := range p.Preference.ToRaw() {
		prefs[k] = v
	}
	return PreferencesDTO{
		UserID:      p.UserID,
		Preferences: prefs,
		UpdatedAt:   p.UpdatedAt.Format(timestampLayout),
	}
}

// ToItineraryDTO converts an itinerary to its DTO.
func ToItineraryDTO(it *domain.Itinerary) ItineraryDTO {
	return ItineraryDTO{
		ID:        it.ID,
		UserID:    it.UserID,
		LegID:     it.LegID,
		CreatedAt: it.CreatedAt.Format(timestampLayout),
	}
}
