package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFlightsRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        SearchFlightsRequest
		wantErrors map[string]string
	}{
		{
			name: "valid and normalized",
			req:  SearchFlightsRequest{Source: " jfk ", Destination: "lax", Airline: " Delta Air Lines "},
		},
		{
			name: "all missing",
			req:  SearchFlightsRequest{},
			wantErrors: map[string]string{
				"source":      "source is required",
				"destination": "destination is required",
				"airline":     "airline is required",
			},
		},
		{
			name: "bad codes",
			req:  SearchFlightsRequest{Source: "JFKX", Destination: "L4X", Airline: "Delta"},
			wantErrors: map[string]string{
				"source":      "source must be a valid 3-letter IATA code",
				"destination": "destination must be a valid 3-letter IATA code",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErrors == nil {
				require.NoError(t, err)
				assert.Equal(t, "JFK", tt.req.Source)
				assert.Equal(t, "LAX", tt.req.Destination)
				assert.Equal(t, "Delta Air Lines", tt.req.Airline)
				return
			}

			var errs *ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Equal(t, tt.wantErrors, errs.ToMap())
		})
	}
}

func TestRouteQueries_Validate(t *testing.T) {
	between := RoutesBetweenQuery{SourceIATA: "bos", DestinationIATA: "yul"}
	require.NoError(t, between.Validate())
	assert.Equal(t, "BOS", between.SourceIATA)

	missing := RoutesBetweenQuery{SourceIATA: "BOS"}
	var errs *ValidationErrors
	require.True(t, errors.As(missing.Validate(), &errs))
	assert.Equal(t, map[string]string{"destination_iata": "destination_iata is required"}, errs.ToMap())

	airline := AirlineRoutesQuery{AirlineName: "  "}
	require.Error(t, airline.Validate())

	countries := CountryRoutesQuery{SourceCountry: "Canada", DestinationCountry: " United States "}
	require.NoError(t, countries.Validate())
	assert.Equal(t, "United States", countries.DestinationCountry)
}

func TestAddItineraryRequest_Validate(t *testing.T) {
	ok := AddItineraryRequest{UserID: 1, LegID: " abc "}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "abc", ok.LegID)

	bad := AddItineraryRequest{UserID: -4}
	var errs *ValidationErrors
	require.True(t, errors.As(bad.Validate(), &errs))
	assert.Equal(t, map[string]string{
		"userId": "userId must be greater than 0",
		"legId":  "legId is required",
	}, errs.ToMap())
}

func TestUserPath_Validate(t *testing.T) {
	assert.NoError(t, (&UserPath{UserID: 5}).Validate())

	var errs *ValidationErrors
	require.True(t, errors.As((&UserPath{}).Validate(), &errs))
	assert.Equal(t, "id is required", errs.ToMap()["id"])
}

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("source", "source is required")
	errs.Add("airline", "airline is required")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "source is required", errs.Error())
	assert.Len(t, errs.ToMap(), 2)
}
