package http

import (
	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-route-query-service/internal/usecase"
)

// ToSearchRequest converts a validated SearchFlightsRequest to usecase.SearchRequest.
// Preferences are passed through untouched; the use case normalizes them.
func ToSearchRequest(req *SearchFlightsRequest) usecase.SearchRequest {
	return usecase.SearchRequest{
		Source:      req.Source,
		Destination: req.Destination,
		Airline:     req.Airline,
		Nonstop:     req.Nonstop,
		Preferences: req.Preferences,
	}
}

// ToDomainUser converts a validated CreateUserRequest to a domain.User.
func ToDomainUser(req *CreateUserRequest) (domain.User, error) {
	u := domain.User{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address: domain.Address{
			FirstLine: req.AddressFirstLine,
			LastLine:  req.AddressLastLine,
			Postcode:  req.AddressPostcode,
		},
		Billing: domain.Address{
			FirstLine: req.BillingFirstLine,
			LastLine:  req.BillingLastLine,
			Postcode:  req.BillingPostcode,
		},
		Gender: req.Gender,
	}
	if req.BirthDate != "" {
		birth, err := timeutil.ParseDate(req.BirthDate)
		if err != nil {
			return domain.User{}, domain.NewValidationError("birthDate", "birthDate must be a date in YYYY-MM-DD format")
		}
		u.BirthDate = &birth
	}
	return u, nil
}
