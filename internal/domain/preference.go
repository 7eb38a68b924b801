package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SecondsPerDay bounds the seconds-since-midnight preference values.
const SecondsPerDay = 86400

// Recognized preference keys in a raw preference mapping.
const (
	PrefFlyingClass            = "flyingClass"
	PrefLayoverMinutes         = "layoverMinutes"
	PrefDepartureSeconds       = "departureSecondsSinceMidnight"
	PrefArrivalSeconds         = "arrivalSecondsSinceMidnight"
	PrefDurationMinutesCeiling = "durationMinutesCeiling"
)

// PreferenceKeys lists the keys the search builder understands.
var PreferenceKeys = []string{
	PrefFlyingClass,
	PrefLayoverMinutes,
	PrefDepartureSeconds,
	PrefArrivalSeconds,
	PrefDurationMinutesCeiling,
}

// IsPreferenceKey reports whether key is one of PreferenceKeys.
func IsPreferenceKey(key string) bool {
	for _, k := range PreferenceKeys {
		if k == key {
			return true
		}
	}
	return false
}

// AbsentValue marks a preference field that was supplied but not set.
// It is distinct from zero, false and nil.
type AbsentValue struct{}

// Absent is the sentinel stored in place of empty-string preference values.
var Absent = AbsentValue{}

// String implements fmt.Stringer.
func (AbsentValue) String() string { return "<absent>" }

// MarshalJSON encodes Absent as null.
func (AbsentValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v interface{}) bool {
	_, ok := v.(AbsentValue)
	return ok
}

// RawPreferences is a loosely-typed preference mapping as received from a client.
type RawPreferences map[string]interface{}

// CabinClass is a service class as stored in the leg data (segments cabin code).
type CabinClass string

// Cabin classes.
const (
	CabinCoach        CabinClass = "coach"
	CabinPremiumCoach CabinClass = "premium coach"
	CabinBusiness     CabinClass = "business"
	CabinFirst        CabinClass = "first"
)

// ParseCabinClass maps a user-supplied class name onto a CabinClass.
// Matching is case-insensitive and accepts "-" or "_" in "premium coach".
func ParseCabinClass(s string) (CabinClass, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", " ", "_", " ").Replace(normalized)

	switch CabinClass(normalized) {
	case CabinCoach, CabinPremiumCoach, CabinBusiness, CabinFirst:
		return CabinClass(normalized), true
	default:
		return "", false
	}
}

// Preference is the typed, validated set of optional search preferences.
type Preference struct {
	FlyingClass                   Optional[CabinClass] `json:"flyingClass"`
	LayoverMinutes                Optional[float64]    `json:"layoverMinutes"`
	DepartureSecondsSinceMidnight Optional[float64]    `json:"departureSecondsSinceMidnight"`
	ArrivalSecondsSinceMidnight   Optional[float64]    `json:"arrivalSecondsSinceMidnight"`
	DurationMinutesCeiling        Optional[float64]    `json:"durationMinutesCeiling"`
}

// IsEmpty reports whether no preference field is set.
func (p Preference) IsEmpty() bool {
	return !p.FlyingClass.IsPresent() &&
		!p.LayoverMinutes.IsPresent() &&
		!p.DepartureSecondsSinceMidnight.IsPresent() &&
		!p.ArrivalSecondsSinceMidnight.IsPresent() &&
		!p.DurationMinutesCeiling.IsPresent()
}

// ParsePreference converts a normalized raw mapping into a Preference.
// Missing, nil and Absent values are absent. Present values outside their
// domain return a *ValidationError naming the field. Unknown keys are ignored.
func ParsePreference(raw RawPreferences) (Preference, error) {
	var p Preference

	if v, ok := presentValue(raw, PrefFlyingClass); ok {
		s, isString := v.(string)
		if !isString {
			return Preference{}, NewValidationError(PrefFlyingClass, "must be a string")
		}
		class, valid := ParseCabinClass(s)
		if !valid {
			return Preference{}, NewValidationError(PrefFlyingClass,
				fmt.Sprintf("must be one of: coach, premium coach, business, first; got %q", s))
		}
		p.FlyingClass = Some(class)
	}

	layover, err := parseNumber(raw, PrefLayoverMinutes, func(n float64) string {
		if n < 0 {
			return "must be a non-negative number"
		}
		return ""
	})
	if err != nil {
		return Preference{}, err
	}
	p.LayoverMinutes = layover

	departure, err := parseNumber(raw, PrefDepartureSeconds, timeOfDayCheck)
	if err != nil {
		return Preference{}, err
	}
	p.DepartureSecondsSinceMidnight = departure

	arrival, err := parseNumber(raw, PrefArrivalSeconds, timeOfDayCheck)
	if err != nil {
		return Preference{}, err
	}
	p.ArrivalSecondsSinceMidnight = arrival

	ceiling, err := parseNumber(raw, PrefDurationMinutesCeiling, func(n float64) string {
		if n <= 0 {
			return "must be a positive number"
		}
		return ""
	})
	if err != nil {
		return Preference{}, err
	}
	p.DurationMinutesCeiling = ceiling

	return p, nil
}

// ToRaw converts a Preference back into a raw mapping holding only present fields.
func (p Preference) ToRaw() RawPreferences {
	raw := RawPreferences{}
	if v, ok := p.FlyingClass.Get(); ok {
		raw[PrefFlyingClass] = string(v)
	}
	if v, ok := p.LayoverMinutes.Get(); ok {
		raw[PrefLayoverMinutes] = v
	}
	if v, ok := p.DepartureSecondsSinceMidnight.Get(); ok {
		raw[PrefDepartureSeconds] = v
	}
	if v, ok := p.ArrivalSecondsSinceMidnight.Get(); ok {
		raw[PrefArrivalSeconds] = v
	}
	if v, ok := p.DurationMinutesCeiling.Get(); ok {
		raw[PrefDurationMinutesCeiling] = v
	}
	return raw
}

func timeOfDayCheck(n float64) string {
	if n < 0 || n >= SecondsPerDay {
		return "must be within [0, 86400) seconds since midnight"
	}
	return ""
}

// presentValue returns the value for key unless it is missing, nil or Absent.
func presentValue(raw RawPreferences, key string) (interface{}, bool) {
	v, ok := raw[key]
	if !ok || v == nil || IsAbsent(v) {
		return nil, false
	}
	return v, true
}

// parseNumber reads key as a number and applies check, which returns a
// non-empty message when the value is out of domain.
func parseNumber(raw RawPreferences, key string, check func(float64) string) (Optional[float64], error) {
	v, ok := presentValue(raw, key)
	if !ok {
		return None[float64](), nil
	}

	n, ok := toFloat(v)
	if !ok {
		return None[float64](), NewValidationError(key, "must be a number")
	}
	if msg := check(n); msg != "" {
		return None[float64](), NewValidationError(key, msg)
	}
	return Some(n), nil
}

// toFloat accepts JSON numbers, Go numeric types and numeric strings.
func toFloat(v interface{}) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
