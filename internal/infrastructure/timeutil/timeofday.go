package timeutil

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// SecondsPerDay is the length of a day in seconds.
const SecondsPerDay = 24 * 60 * 60

// DepartureTolerance is the half-width of a departure window.
const DepartureTolerance = time.Hour

// ErrTimeOfDayRange is returned for seconds-since-midnight values outside [0, 86400).
var ErrTimeOfDayRange = errors.New("seconds since midnight must be within [0, 86400)")

// TimeOfDayLayout is the zero-padded HH:MM:SS layout used for time-of-day values.
const TimeOfDayLayout = "15:04:05"

// Window is an inclusive time-of-day range. When Wraps is true the range
// crosses midnight and covers [Start, 24:00) and [00:00, End].
type Window struct {
	Start string
	End   string
	Wraps bool
}

// FormatTimeOfDay formats seconds since midnight as HH:MM:SS.
// Fractional seconds are truncated.
func FormatTimeOfDay(seconds float64) (string, error) {
	s, err := wholeSeconds(seconds)
	if err != nil {
		return "", err
	}
	return formatSeconds(s), nil
}

// ParseTimeOfDay parses a zero-padded HH:MM:SS value into seconds since
// midnight. Signs, spaces and single-digit fields are rejected.
func ParseTimeOfDay(value string) (int, error) {
	if len(value) != len(TimeOfDayLayout) || value[2] != ':' || value[5] != ':' {
		return 0, fmt.Errorf("parse time of day %q: not a valid HH:MM:SS value", value)
	}
	h, okH := twoDigits(value[0:2])
	m, okM := twoDigits(value[3:5])
	s, okS := twoDigits(value[6:8])
	if !okH || !okM || !okS || h > 23 || m > 59 || s > 59 {
		return 0, fmt.Errorf("parse time of day %q: not a valid HH:MM:SS value", value)
	}
	return h*3600 + m*60 + s, nil
}

func twoDigits(v string) (int, bool) {
	if v[0] < '0' || v[0] > '9' || v[1] < '0' || v[1] > '9' {
		return 0, false
	}
	return int(v[0]-'0')*10 + int(v[1]-'0'), true
}

// DepartureWindow returns the window of DepartureTolerance either side of
// seconds. Both ends are taken modulo 24h.
func DepartureWindow(seconds float64) (Window, error) {
	s, err := wholeSeconds(seconds)
	if err != nil {
		return Window{}, err
	}

	tolerance := int(DepartureTolerance / time.Second)
	start := s - tolerance
	end := s + tolerance

	w := Window{Wraps: start < 0 || end >= SecondsPerDay}
	w.Start = formatSeconds(mod(start, SecondsPerDay))
	w.End = formatSeconds(mod(end, SecondsPerDay))
	return w, nil
}

// SecondsSinceMidnight returns the wall-clock time of t as seconds since midnight
// in t's own location.
func SecondsSinceMidnight(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func wholeSeconds(seconds float64) (int, error) {
	if math.IsNaN(seconds) || seconds < 0 || seconds >= SecondsPerDay {
		return 0, fmt.Errorf("%w: got %v", ErrTimeOfDayRange, seconds)
	}
	return int(seconds), nil
}

func formatSeconds(s int) string {
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
