// Package query builds the parameterized leg search query.
//
// The LegQueryBuilder holds an ordered list of predicates, each a clause with
// "?" placeholders paired with its bound arguments. SQL text is rendered only by
// Where and Build, which number the placeholders $1..$n in predicate order:
//
//	b := query.NewLegQueryBuilder()
//	b.AddRoute("JFK", "LAX")
//	b.AddCarrier("DL")
//	b.AddNonstop(true)
//	b.AddDurationCeiling(domain.Some(120.0))
//	sql, args := b.Build()
//	// ... WHERE starting_airport = $1 AND destination_airport = $2
//	//     AND $3 = ALL(string_to_array(segments_airline_code, '||'))
//	//     AND is_non_stop = $4 AND segments_duration_in_seconds <= $5::float8
//	//     ORDER BY flight_date ASC, ... ASC, leg_id ASC
//	// args: ["JFK", "LAX", "DL", true, 7200.0]
//
// ForSearch applies the base filters and every present preference of a
// domain.SearchCriteria in a fixed order. Each optional predicate depends only on
// its own preference field.
//
// # Time of day
//
// Departure and arrival times are compared as local wall-clock times taken from
// the raw segment timestamps. Departure uses the first segment, arrival the last.
// A departure window that crosses midnight renders as
// "(t >= start OR t <= end)" instead of a closed range.
package query
