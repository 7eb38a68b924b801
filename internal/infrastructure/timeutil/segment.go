// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// SegmentTimeLayout is the layout of raw segment timestamps in the leg data,
// e.g. "2022-04-17T12:57:00.000-04:00". A trailing "Z" is accepted too.
const SegmentTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseSegmentTime parses a raw segment timestamp. The result keeps the
// timestamp's own offset, so its wall clock is the local airport time.
func ParseSegmentTime(raw string) (time.Time, error) {
	t, err := time.Parse(SegmentTimeLayout, raw)
	if err == nil {
		return t, nil
	}
	// Some rows drop the milliseconds.
	if t2, err2 := time.Parse(time.RFC3339, raw); err2 == nil {
		return t2, nil
	}
	return time.Time{}, fmt.Errorf("parse segment time %q: %w", raw, err)
}

var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ISODurationMinutes converts an ISO-8601 duration such as "PT2H30M" into whole
// minutes. Seconds are truncated. Values that do not parse yield 0.
func ISODurationMinutes(duration string) int {
	m := isoDurationRegex.FindStringSubmatch(duration)
	if m == nil || duration == "P" || duration == "PT" {
		return 0
	}

	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	}

	days, hours, minutes, seconds := atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4])
	return days*24*60 + hours*60 + minutes + seconds/60
}

// LayoverMinutes returns the whole minutes between an arrival and the next
// departure, both raw segment timestamps.
func LayoverMinutes(arrivalRaw, nextDepartureRaw string) (int, error) {
	arrival, err := ParseSegmentTime(arrivalRaw)
	if err != nil {
		return 0, err
	}
	departure, err := ParseSegmentTime(nextDepartureRaw)
	if err != nil {
		return 0, err
	}
	return int(departure.Sub(arrival) / time.Minute), nil
}

// LegLayovers returns the layover before each connecting segment. arrivals and
// departures are the per-segment raw timestamps of one leg, in segment order.
// A nonstop leg has no layovers.
func LegLayovers(arrivals, departures []string) ([]int, error) {
	if len(arrivals) != len(departures) {
		return nil, fmt.Errorf("segment count mismatch: %d arrivals, %d departures", len(arrivals), len(departures))
	}
	if len(arrivals) < 2 {
		return nil, nil
	}

	layovers := make([]int, 0, len(arrivals)-1)
	for i := 1; i < len(departures); i++ {
		minutes, err := LayoverMinutes(arrivals[i-1], departures[i])
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		layovers = append(layovers, minutes)
	}
	return layovers, nil
}

// DateLayout is the calendar date format of flight and birth dates.
const DateLayout = "2006-01-02"

// FormatDate formats t as DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout value as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
