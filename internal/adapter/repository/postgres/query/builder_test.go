package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

func baseCriteria(pref domain.Preference) domain.SearchCriteria {
	return domain.SearchCriteria{
		Source:      "JFK",
		Destination: "LAX",
		Airline:     "Delta",
		Nonstop:     true,
		Preference:  pref,
	}
}

func optionalNames(b *LegQueryBuilder) []string {
	var names []string
	for _, p := range b.Predicates()[4:] {
		names = append(names, p.Name)
	}
	return names
}

func TestLegQueryBuilder_Empty(t *testing.T) {
	b := NewLegQueryBuilder()

	where, args := b.Where()
	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
	assert.Equal(t, 0, b.Count())
}

func TestForSearch_BaseFiltersOnly(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{}), "DL")
	require.NoError(t, err)

	preds := b.Predicates()
	require.Len(t, preds, 4)
	assert.Equal(t, []string{PredSource, PredDestination, PredCarrier, PredNonstop},
		[]string{preds[0].Name, preds[1].Name, preds[2].Name, preds[3].Name})

	where, args := b.Where()
	assert.Equal(t,
		"starting_airport = $1 AND destination_airport = $2 AND "+
			"$3 = ALL(string_to_array(segments_airline_code, '||')) AND is_non_stop = $4",
		where)
	assert.Equal(t, []interface{}{"JFK", "LAX", "DL", true}, args)
}

func TestForSearch_NonstopFalseStillFilters(t *testing.T) {
	c := baseCriteria(domain.Preference{})
	c.Nonstop = false

	b, err := ForSearch(c, "DL")
	require.NoError(t, err)

	p, ok := b.Predicate(PredNonstop)
	require.True(t, ok)
	assert.Equal(t, []interface{}{false}, p.Args)
}

func TestForSearch_DurationCeiling(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{
		DurationMinutesCeiling: domain.Some(120.0),
	}), "DL")
	require.NoError(t, err)

	assert.Equal(t, []string{domain.PrefDurationMinutesCeiling}, optionalNames(b))

	p, ok := b.Predicate(domain.PrefDurationMinutesCeiling)
	require.True(t, ok)
	assert.Equal(t, "segments_duration_in_seconds <= ?::float8", p.Clause)
	assert.Equal(t, []interface{}{7200.0}, p.Args)

	where, args := b.Where()
	assert.True(t, strings.HasSuffix(where, "AND segments_duration_in_seconds <= $5::float8"), where)
	assert.Equal(t, 7200.0, args[4])
}

func TestForSearch_DurationCeilingIsExact(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{
		DurationMinutesCeiling: domain.Some(90.5),
	}), "DL")
	require.NoError(t, err)

	p, _ := b.Predicate(domain.PrefDurationMinutesCeiling)
	assert.Equal(t, []interface{}{5430.0}, p.Args)
}

func TestForSearch_DepartureWindow(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{
		DepartureSecondsSinceMidnight: domain.Some(43200.0),
	}), "DL")
	require.NoError(t, err)

	p, ok := b.Predicate(domain.PrefDepartureSeconds)
	require.True(t, ok)
	assert.Equal(t, DepartureTimeExpr+" BETWEEN ?::time AND ?::time", p.Clause)
	assert.Equal(t, []interface{}{"11:00:00", "13:00:00"}, p.Args)

	where, _ := b.Where()
	assert.Contains(t, where, "BETWEEN $5::time AND $6::time")
}

func TestForSearch_DepartureWindowWrapsMidnight(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{
		DepartureSecondsSinceMidnight: domain.Some(1800.0),
	}), "DL")
	require.NoError(t, err)

	p, ok := b.Predicate(domain.PrefDepartureSeconds)
	require.True(t, ok)
	assert.Equal(t, "("+DepartureTimeExpr+" >= ?::time OR "+DepartureTimeExpr+" <= ?::time)", p.Clause)
	assert.Equal(t, []interface{}{"23:30:00", "01:30:00"}, p.Args)
}

func TestForSearch_ArrivalUpperBound(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{
		ArrivalSecondsSinceMidnight: domain.Some(54000.0),
	}), "DL")
	require.NoError(t, err)

	p, ok := b.Predicate(domain.PrefArrivalSeconds)
	require.True(t, ok)
	assert.Equal(t, ArrivalTimeExpr+" <= ?::time", p.Clause)
	assert.Equal(t, []interface{}{"15:00:00"}, p.Args)
}

func TestForSearch_ClassAndLayover(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{
		FlyingClass:    domain.Some(domain.CabinBusiness),
		LayoverMinutes: domain.Some(90.0),
	}), "DL")
	require.NoError(t, err)

	assert.Equal(t, []string{domain.PrefFlyingClass, domain.PrefLayoverMinutes}, optionalNames(b))

	class, _ := b.Predicate(domain.PrefFlyingClass)
	assert.Equal(t, "? = ALL(string_to_array(segments_cabin_code, '||'))", class.Clause)
	assert.Equal(t, []interface{}{"business"}, class.Args)

	layover, _ := b.Predicate(domain.PrefLayoverMinutes)
	assert.Equal(t, "layover_minutes = ?::float8", layover.Clause)
	assert.Equal(t, []interface{}{90.0}, layover.Args)

	where, args := b.Where()
	assert.Contains(t, where, "AND $5 = ALL(string_to_array(segments_cabin_code, '||')) AND layover_minutes = $6::float8")
	assert.Len(t, args, 6)
}

func TestForSearch_FractionalLayoverIsBoundAsFloat(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{
		LayoverMinutes: domain.Some(90.5),
	}), "DL")
	require.NoError(t, err)

	p, ok := b.Predicate(domain.PrefLayoverMinutes)
	require.True(t, ok)
	// The cast stops the driver from encoding 90.5 as the integer column type.
	assert.Equal(t, "layover_minutes = ?::float8", p.Clause)
	assert.Equal(t, []interface{}{90.5}, p.Args)

	where, args := b.Where()
	assert.True(t, strings.HasSuffix(where, "layover_minutes = $5::float8"), where)
	assert.Equal(t, 90.5, args[4])
}

func TestForSearch_PredicatesAreIndependent(t *testing.T) {
	full := domain.Preference{
		FlyingClass:                   domain.Some(domain.CabinCoach),
		LayoverMinutes:                domain.Some(45.0),
		DepartureSecondsSinceMidnight: domain.Some(30000.0),
		ArrivalSecondsSinceMidnight:   domain.Some(70000.0),
		DurationMinutesCeiling:        domain.Some(300.0),
	}

	all, err := ForSearch(baseCriteria(full), "AA")
	require.NoError(t, err)
	require.Equal(t, 9, all.Count())

	singles := map[string]domain.Preference{
		domain.PrefFlyingClass:            {FlyingClass: full.FlyingClass},
		domain.PrefLayoverMinutes:         {LayoverMinutes: full.LayoverMinutes},
		domain.PrefDepartureSeconds:       {DepartureSecondsSinceMidnight: full.DepartureSecondsSinceMidnight},
		domain.PrefArrivalSeconds:         {ArrivalSecondsSinceMidnight: full.ArrivalSecondsSinceMidnight},
		domain.PrefDurationMinutesCeiling: {DurationMinutesCeiling: full.DurationMinutesCeiling},
	}

	for name, pref := range singles {
		t.Run(name, func(t *testing.T) {
			alone, err := ForSearch(baseCriteria(pref), "AA")
			require.NoError(t, err)
			require.Equal(t, 5, alone.Count())

			want, ok := alone.Predicate(name)
			require.True(t, ok)
			got, ok := all.Predicate(name)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestForSearch_FixedOptionalOrder(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{
		LayoverMinutes:                domain.Some(0.0),
		DepartureSecondsSinceMidnight: domain.Some(0.0),
		ArrivalSecondsSinceMidnight:   domain.Some(0.0),
		DurationMinutesCeiling:        domain.Some(1.0),
		FlyingClass:                   domain.Some(domain.CabinFirst),
	}), "UA")
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.PrefFlyingClass,
		domain.PrefDurationMinutesCeiling,
		domain.PrefArrivalSeconds,
		domain.PrefDepartureSeconds,
		domain.PrefLayoverMinutes,
	}, optionalNames(b))
}

func TestForSearch_OutOfRangeTimes(t *testing.T) {
	tests := []struct {
		name      string
		pref      domain.Preference
		wantField string
	}{
		{
			name:      "arrival at 86400",
			pref:      domain.Preference{ArrivalSecondsSinceMidnight: domain.Some(86400.0)},
			wantField: domain.PrefArrivalSeconds,
		},
		{
			name:      "negative departure",
			pref:      domain.Preference{DepartureSecondsSinceMidnight: domain.Some(-1.0)},
			wantField: domain.PrefDepartureSeconds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ForSearch(baseCriteria(tt.pref), "DL")
			require.Error(t, err)
			assert.Nil(t, b)

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.True(t, domain.IsInvalidRequest(err))
		})
	}
}

func TestLegQueryBuilder_Build(t *testing.T) {
	b, err := ForSearch(baseCriteria(domain.Preference{}), "DL")
	require.NoError(t, err)

	sql, args := b.Build()

	assert.True(t, strings.HasPrefix(sql, "SELECT leg_id, starting_airport, destination_airport, flight_date,"), sql)
	assert.Contains(t, sql, "base_fare::float8 AS base_fare")
	assert.Contains(t, sql, " FROM flight_legs WHERE starting_airport = $1 ")
	assert.True(t, strings.HasSuffix(sql,
		"ORDER BY flight_date ASC, "+DepartureTimeExpr+" ASC, leg_id ASC"), sql)
	assert.NotContains(t, sql, "?")
	assert.Len(t, args, 4)
}

func TestLegQueryBuilder_PredicatesReturnsCopy(t *testing.T) {
	b := NewLegQueryBuilder().AddNonstop(true)

	preds := b.Predicates()
	preds[0].Clause = "tampered"

	p, _ := b.Predicate(PredNonstop)
	assert.Equal(t, "is_non_stop = ?", p.Clause)
}

func TestNumberPlaceholders(t *testing.T) {
	assert.Equal(t, "a = $1 AND b = $2", numberPlaceholders("a = ? AND b = ?"))
	assert.Equal(t, "no params", numberPlaceholders("no params"))
}
