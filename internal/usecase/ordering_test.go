package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

func legIDs(legs []domain.FlightLeg) []string {
	ids := make([]string, len(legs))
	for i, l := range legs {
		ids[i] = l.LegID
	}
	return ids
}

func TestSortLegs(t *testing.T) {
	tests := []struct {
		name string
		legs []domain.FlightLeg
		want []string
	}{
		{
			name: "empty",
			legs: nil,
			want: []string{},
		},
		{
			name: "by date then departure",
			legs: []domain.FlightLeg{
				createTestLeg("late", "2022-04-16", "21:00:00"),
				createTestLeg("next-day", "2022-04-17", "06:00:00"),
				createTestLeg("early", "2022-04-16", "06:15:00"),
			},
			want: []string{"early", "late", "next-day"},
		},
		{
			name: "ties keep input order",
			legs: []domain.FlightLeg{
				createTestLeg("x", "2022-04-16", "09:00:00"),
				createTestLeg("y", "2022-04-16", "09:00:00"),
				createTestLeg("z", "2022-04-16", "09:00:00"),
			},
			want: []string{"x", "y", "z"},
		},
		{
			name: "unparseable departure sorts last within date",
			legs: []domain.FlightLeg{
				func() domain.FlightLeg {
					l := createTestLeg("broken", "2022-04-16", "00:00:00")
					l.SegmentsDepartureTimeRaw = "garbage"
					return l
				}(),
				createTestLeg("ok", "2022-04-16", "23:59:00"),
			},
			want: []string{"ok", "broken"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, legIDs(SortLegs(tt.legs)))
		})
	}
}

func TestSortLegs_DoesNotMutateInput(t *testing.T) {
	legs := []domain.FlightLeg{
		createTestLeg("b", "2022-04-17", "10:00:00"),
		createTestLeg("a", "2022-04-16", "10:00:00"),
	}

	sorted := SortLegs(legs)

	assert.Equal(t, []string{"a", "b"}, legIDs(sorted))
	assert.Equal(t, []string{"b", "a"}, legIDs(legs))
}
