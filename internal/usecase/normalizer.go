package usecase

import "github.com/flight-search/flight-route-query-service/internal/domain"

// NormalizePreferences returns a copy of raw in which every empty-string value
// is replaced by domain.Absent. Keys are never renamed or dropped, and raw is
// not modified. A nil input yields an empty mapping.
func NormalizePreferences(raw map[string]interface{}) domain.RawPreferences {
	out := make(domain.RawPreferences, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok && s == "" {
			out[k] = domain.Absent
			continue
		}
		out[k] = v
	}
	return out
}
