package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

// Names of the base predicates. Optional predicates are named by their
// preference key (domain.PrefFlyingClass, ...).
const (
	PredSource      = "source"
	PredDestination = "destination"
	PredCarrier     = "carrier"
	PredNonstop     = "nonstop"
)

// Predicate is one clause of the WHERE list with its bound arguments.
// Clause uses "?" placeholders, one per argument.
type Predicate struct {
	Name   string
	Clause string
	Args   []interface{}
}

// LegQueryBuilder accumulates leg search predicates.
// A builder is used for a single query and is not safe for concurrent use.
type LegQueryBuilder struct {
	predicates []Predicate
}

// NewLegQueryBuilder creates an empty builder.
func NewLegQueryBuilder() *LegQueryBuilder {
	return &LegQueryBuilder{predicates: []Predicate{}}
}

// ForSearch builds the query for a search. carrierCode is the resolved code of
// criteria.Airline. Base filters come first, then the present preferences in
// the order flyingClass, durationMinutesCeiling, arrivalSecondsSinceMidnight,
// departureSecondsSinceMidnight, layoverMinutes.
func ForSearch(criteria domain.SearchCriteria, carrierCode string) (*LegQueryBuilder, error) {
	pref := criteria.Preference

	b := NewLegQueryBuilder().
		AddRoute(criteria.Source, criteria.Destination).
		AddCarrier(carrierCode).
		AddNonstop(criteria.Nonstop).
		AddCabinClass(pref.FlyingClass).
		AddDurationCeiling(pref.DurationMinutesCeiling)

	if err := b.AddArrivalBy(pref.ArrivalSecondsSinceMidnight); err != nil {
		return nil, err
	}
	if err := b.AddDepartureAround(pref.DepartureSecondsSinceMidnight); err != nil {
		return nil, err
	}

	return b.AddLayoverMinutes(pref.LayoverMinutes), nil
}

// AddClause appends a named clause with its arguments.
func (b *LegQueryBuilder) AddClause(name, clause string, args ...interface{}) *LegQueryBuilder {
	b.predicates = append(b.predicates, Predicate{Name: name, Clause: clause, Args: args})
	return b
}

// AddRoute filters on origin and destination airport.
func (b *LegQueryBuilder) AddRoute(source, destination string) *LegQueryBuilder {
	b.AddClause(PredSource, ColStartingAirport+" = ?", source)
	return b.AddClause(PredDestination, ColDestinationAirport+" = ?", destination)
}

// AddCarrier keeps legs whose every segment is operated by code.
func (b *LegQueryBuilder) AddCarrier(code string) *LegQueryBuilder {
	return b.AddClause(PredCarrier, allSegments(ColSegmentsAirlineCode), code)
}

// AddNonstop filters on the nonstop flag.
func (b *LegQueryBuilder) AddNonstop(nonstop bool) *LegQueryBuilder {
	return b.AddClause(PredNonstop, ColIsNonStop+" = ?", nonstop)
}

// AddCabinClass keeps legs flown entirely in class.
func (b *LegQueryBuilder) AddCabinClass(class domain.Optional[domain.CabinClass]) *LegQueryBuilder {
	v, ok := class.Get()
	if !ok {
		return b
	}
	return b.AddClause(domain.PrefFlyingClass, allSegments(ColSegmentsCabinCode), string(v))
}

// AddDurationCeiling bounds the in-air duration. The ceiling is in minutes and is
// compared in seconds without rounding; the float8 cast keeps the parameter
// from taking the integer column type.
func (b *LegQueryBuilder) AddDurationCeiling(ceilingMinutes domain.Optional[float64]) *LegQueryBuilder {
	v, ok := ceilingMinutes.Get()
	if !ok {
		return b
	}
	return b.AddClause(domain.PrefDurationMinutesCeiling, ColSegmentsDurationInSeconds+" <= ?::float8", v*60)
}

// AddArrivalBy keeps legs arriving no later than seconds since midnight.
func (b *LegQueryBuilder) AddArrivalBy(seconds domain.Optional[float64]) error {
	v, ok := seconds.Get()
	if !ok {
		return nil
	}

	target, err := timeutil.FormatTimeOfDay(v)
	if err != nil {
		return rangeError(domain.PrefArrivalSeconds, err)
	}
	b.AddClause(domain.PrefArrivalSeconds, ArrivalTimeExpr+" <= ?::time", target)
	return nil
}

// AddDepartureAround keeps legs departing within timeutil.DepartureTolerance of
// seconds since midnight, bounds included.
func (b *LegQueryBuilder) AddDepartureAround(seconds domain.Optional[float64]) error {
	v, ok := seconds.Get()
	if !ok {
		return nil
	}

	w, err := timeutil.DepartureWindow(v)
	if err != nil {
		return rangeError(domain.PrefDepartureSeconds, err)
	}

	if w.Wraps {
		b.AddClause(domain.PrefDepartureSeconds,
			"("+DepartureTimeExpr+" >= ?::time OR "+DepartureTimeExpr+" <= ?::time)", w.Start, w.End)
		return nil
	}
	b.AddClause(domain.PrefDepartureSeconds,
		DepartureTimeExpr+" BETWEEN ?::time AND ?::time", w.Start, w.End)
	return nil
}

// AddLayoverMinutes matches the total layover exactly. A fractional value
// matches no integer layover.
func (b *LegQueryBuilder) AddLayoverMinutes(minutes domain.Optional[float64]) *LegQueryBuilder {
	v, ok := minutes.Get()
	if !ok {
		return b
	}
	return b.AddClause(domain.PrefLayoverMinutes, ColLayoverMinutes+" = ?::float8", v)
}

// Predicates returns a copy of the accumulated predicates in order.
func (b *LegQueryBuilder) Predicates() []Predicate {
	out := make([]Predicate, len(b.predicates))
	copy(out, b.predicates)
	return out
}

// Predicate returns the predicate with the given name.
func (b *LegQueryBuilder) Predicate(name string) (Predicate, bool) {
	for _, p := range b.predicates {
		if p.Name == name {
			return p, true
		}
	}
	return Predicate{}, false
}

// Count returns the number of predicates.
func (b *LegQueryBuilder) Count() int {
	return len(b.predicates)
}

// Where renders the predicates joined with AND, numbering placeholders from $1.
// Returns ("1=1", []) when there are no predicates.
func (b *LegQueryBuilder) Where() (string, []interface{}) {
	if len(b.predicates) == 0 {
		return "1=1", []interface{}{}
	}

	clauses := make([]string, 0, len(b.predicates))
	args := make([]interface{}, 0, len(b.predicates))
	for _, p := range b.predicates {
		clauses = append(clauses, p.Clause)
		args = append(args, p.Args...)
	}
	return numberPlaceholders(strings.Join(clauses, " AND ")), args
}

// Build renders the complete SELECT.
func (b *LegQueryBuilder) Build() (string, []interface{}) {
	where, args := b.Where()
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC, %s ASC",
		selectList(), LegTable, where, ColFlightDate, DepartureTimeExpr, ColLegID)
	return sql, args
}

func allSegments(column string) string {
	return "? = ALL(string_to_array(" + column + ", '" + domain.SegmentSeparator + "'))"
}

func numberPlaceholders(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 8)

	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '?' {
			sb.WriteByte(s[i])
			continue
		}
		n++
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

func rangeError(field string, err error) error {
	if errors.Is(err, timeutil.ErrTimeOfDayRange) {
		return domain.NewValidationError(field, "must be within [0, 86400) seconds since midnight")
	}
	return fmt.Errorf("%s: %w", field, err)
}
