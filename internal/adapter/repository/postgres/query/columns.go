package query

import (
	"strings"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

// LegTable is the table legs are read from.
const LegTable = "flight_legs"

// Column names of LegTable.
const (
	ColLegID                        = "leg_id"
	ColStartingAirport              = "starting_airport"
	ColDestinationAirport           = "destination_airport"
	ColFlightDate                   = "flight_date"
	ColTravelDuration               = "travel_duration"
	ColSegmentsDepartureTimeRaw     = "segments_departure_time_raw"
	ColSegmentsArrivalTimeRaw       = "segments_arrival_time_raw"
	ColSegmentsAirlineCode          = "segments_airline_code"
	ColSegmentsCabinCode            = "segments_cabin_code"
	ColSegmentsEquipmentDescription = "segments_equipment_description"
	ColSegmentsDurationInSeconds    = "segments_duration_in_seconds"
	ColBaseFare                     = "base_fare"
	ColTotalFare                    = "total_fare"
	ColSeatsRemaining               = "seats_remaining"
	ColIsBasicEconomy               = "is_basic_economy"
	ColIsRefundable                 = "is_refundable"
	ColIsNonStop                    = "is_non_stop"
	ColLayoverMinutes               = "layover_minutes"
)

// LegColumns is the column sequence of every leg query result row.
// Projectors rely on this order.
var LegColumns = []string{
	ColLegID,
	ColStartingAirport,
	ColDestinationAirport,
	ColFlightDate,
	ColTravelDuration,
	ColSegmentsDepartureTimeRaw,
	ColSegmentsArrivalTimeRaw,
	ColSegmentsAirlineCode,
	ColSegmentsCabinCode,
	ColSegmentsEquipmentDescription,
	ColSegmentsDurationInSeconds,
	ColBaseFare,
	ColTotalFare,
	ColSeatsRemaining,
	ColIsBasicEconomy,
	ColIsRefundable,
	ColIsNonStop,
	ColLayoverMinutes,
}

// selectExpr casts columns whose stored type does not scan directly into the
// projector's value types.
var selectExpr = map[string]string{
	ColSegmentsDurationInSeconds: ColSegmentsDurationInSeconds + "::int8",
	ColBaseFare:                  ColBaseFare + "::float8",
	ColTotalFare:                 ColTotalFare + "::float8",
	ColSeatsRemaining:            ColSeatsRemaining + "::int8",
	ColLayoverMinutes:            ColLayoverMinutes + "::int8",
}

// selectList renders LegColumns for a SELECT, keeping the column names.
func selectList() string {
	parts := make([]string, len(LegColumns))
	for i, col := range LegColumns {
		if expr, ok := selectExpr[col]; ok {
			parts[i] = expr + " AS " + col
			continue
		}
		parts[i] = col
	}
	return strings.Join(parts, ", ")
}

// Local wall-clock time of the first departure and of the last arrival.
// The first 19 characters of a raw timestamp are its local date and time,
// whatever offset or precision follows ("2022-04-17T12:57:00.000-04:00",
// "2022-04-17T12:57:00.000Z", "2022-04-17T12:57:00-04:00").
var (
	DepartureTimeExpr = wallClock(ColSegmentsDepartureTimeRaw)
	ArrivalTimeExpr   = wallClock(lastSegment(ColSegmentsArrivalTimeRaw))
)

func wallClock(expr string) string {
	return "CAST(LEFT(" + expr + ", 19) AS TIMESTAMP)::TIME"
}

// lastSegment selects the final element of a SegmentSeparator-joined column.
func lastSegment(column string) string {
	parts := "string_to_array(" + column + ", '" + domain.SegmentSeparator + "')"
	return "(" + parts + ")[cardinality(" + parts + ")]"
}
