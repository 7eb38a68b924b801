package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCriteria_Validate(t *testing.T) {
	// Helper to create a valid base criteria
	validCriteria := func() *SearchCriteria {
		return &SearchCriteria{
			Source:      "JFK",
			Destination: "LAX",
			Airline:     "Delta",
			Nonstop:     true,
		}
	}

	tests := []struct {
		name         string
		modify       func(*SearchCriteria)
		wantErr      bool
		errContains  string
		isInvalidReq bool
	}{
		{
			name:    "valid criteria passes",
			modify:  func(c *SearchCriteria) {},
			wantErr: false,
		},
		{
			name:    "nonstop false is still valid",
			modify:  func(c *SearchCriteria) { c.Nonstop = false },
			wantErr: false,
		},
		{
			name:         "empty source fails",
			modify:       func(c *SearchCriteria) { c.Source = "" },
			wantErr:      true,
			errContains:  "source is required",
			isInvalidReq: true,
		},
		{
			name:         "invalid source format fails",
			modify:       func(c *SearchCriteria) { c.Source = "JFK1" },
			wantErr:      true,
			errContains:  "IATA code",
			isInvalidReq: true,
		},
		{
			name:         "lowercase source fails without normalize",
			modify:       func(c *SearchCriteria) { c.Source = "jfk" },
			wantErr:      true,
			isInvalidReq: true,
		},
		{
			name:         "empty destination fails",
			modify:       func(c *SearchCriteria) { c.Destination = "" },
			wantErr:      true,
			errContains:  "destination is required",
			isInvalidReq: true,
		},
		{
			name:         "invalid destination fails",
			modify:       func(c *SearchCriteria) { c.Destination = "L4X" },
			wantErr:      true,
			errContains:  "destination must be a valid",
			isInvalidReq: true,
		},
		{
			name:         "empty airline fails",
			modify:       func(c *SearchCriteria) { c.Airline = "" },
			wantErr:      true,
			errContains:  "airline is required",
			isInvalidReq: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCriteria()
			tt.modify(c)

			err := c.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
			assert.Equal(t, tt.isInvalidReq, errors.Is(err, ErrInvalidRequest))
		})
	}
}

func TestSearchCriteria_Normalize(t *testing.T) {
	c := &SearchCriteria{
		Source:      " jfk",
		Destination: "lax ",
		Airline:     "  Delta Air Lines ",
	}

	c.Normalize()

	assert.Equal(t, "JFK", c.Source)
	assert.Equal(t, "LAX", c.Destination)
	assert.Equal(t, "Delta Air Lines", c.Airline)
	require.NoError(t, c.Validate())
}

func TestFlightLeg_FirstDepartureRaw(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "single segment", raw: "2022-04-17T12:57:00.000-04:00", want: "2022-04-17T12:57:00.000-04:00"},
		{
			name: "two segments",
			raw:  "2022-04-17T06:00:00.000-04:00||2022-04-17T09:30:00.000-05:00",
			want: "2022-04-17T06:00:00.000-04:00",
		},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leg := FlightLeg{SegmentsDepartureTimeRaw: tt.raw}
			assert.Equal(t, tt.want, leg.FirstDepartureRaw())
		})
	}
}
