// Package http provides the HTTP handler layer for the flight route query API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// SearchFlightsRequest represents the request body for a flight leg search.
type SearchFlightsRequest struct {
	// Source is the IATA code of the departure airport (e.g., "JFK")
	Source string `json:"source" validate:"required,len=3,alpha" example:"JFK"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination" validate:"required,len=3,alpha" example:"LAX"`

	// Airline is the carrier display name, resolved to a carrier code by the service
	Airline string `json:"airline" validate:"required,max=128" example:"Delta Air Lines"`

	// Nonstop restricts results to nonstop legs when true, and to connecting legs when false
	Nonstop bool `json:"nonstop" example:"true"`

	// Preferences holds optional filters keyed by preference name.
	// Empty strings mean "no preference"; unknown keys are ignored.
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}

// RoutesBetweenQuery holds the query parameters of GET /api/v1/routes.
type RoutesBetweenQuery struct {
	SourceIATA      string `query:"source_iata" validate:"required,len=3,alpha"`
	DestinationIATA string `query:"destination_iata" validate:"required,len=3,alpha"`
}

// AirlineRoutesQuery holds the query parameters of GET /api/v1/routes/airline.
type AirlineRoutesQuery struct {
	AirlineName string `query:"airline_name" validate:"required,max=128"`
}

// CountryRoutesQuery holds the query parameters of GET /api/v1/routes/countries.
type CountryRoutesQuery struct {
	SourceCountry      string `query:"source_country" validate:"required,max=64"`
	DestinationCountry string `query:"destination_country" validate:"required,max=64"`
}

// UserPath binds the :id path parameter of the user endpoints.
type UserPath struct {
	UserID int64 `param:"id" validate:"required,gt=0"`
}

// AddItineraryRequest represents the request body of POST /api/v1/itineraries.
type AddItineraryRequest struct {
	UserID int64  `json:"userId" validate:"required,gt=0" example:"42"`
	LegID  string `json:"legId" validate:"required,max=64" example:"9ca0e81111c683bec1012473feefd28f"`
}

// CreateUserRequest represents the request body of POST /api/v1/users.
type CreateUserRequest struct {
	FullName         string `json:"fullName" validate:"required,max=128" example:"Ada Lovelace"`
	PhoneNumber      string `json:"phoneNumber" validate:"omitempty,max=32" example:"1234567890"`
	Email            string `json:"email" validate:"required,email,max=254" example:"ada@example.com"`
	AddressFirstLine string `json:"addressFirstLine" validate:"omitempty,max=128" example:"101 Test St"`
	AddressLastLine  string `json:"addressLastLine" validate:"omitempty,max=128" example:"Suite 10"`
	AddressPostcode  string `json:"addressPostcode" validate:"omitempty,max=16" example:"98765"`
	BillingFirstLine string `json:"billingFirstLine" validate:"omitempty,max=128"`
	BillingLastLine  string `json:"billingLastLine" validate:"omitempty,max=128"`
	BillingPostcode  string `json:"billingPostcode" validate:"omitempty,max=16"`

	// BirthDate is a calendar date, YYYY-MM-DD
	BirthDate string `json:"birthDate" validate:"omitempty,datetime=2006-01-02" example:"1990-01-01"`

	Gender string `json:"gender" validate:"omitempty,max=16" example:"F"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator. Field errors are reported
// under the json, query or param name of the field.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "query", "param"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
	return validate
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// validateStruct runs the tag rules on s. It returns nil or *ValidationErrors.
func validateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := &ValidationErrors{}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), fieldMessage(fe))
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "len":
		if fe.Param() == "3" && fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be a valid 3-letter IATA code", fe.Field())
		}
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "alpha":
		return fmt.Sprintf("%s must be a valid 3-letter IATA code", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}

// Validate trims and upper-cases the airport codes, then checks the request.
func (r *SearchFlightsRequest) Validate() error {
	r.Source = strings.ToUpper(strings.TrimSpace(r.Source))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.Airline = strings.TrimSpace(r.Airline)
	return validateStruct(r)
}

// Validate trims and upper-cases the airport codes, then checks the query.
func (q *RoutesBetweenQuery) Validate() error {
	q.SourceIATA = strings.ToUpper(strings.TrimSpace(q.SourceIATA))
	q.DestinationIATA = strings.ToUpper(strings.TrimSpace(q.DestinationIATA))
	return validateStruct(q)
}

// Validate checks the query.
func (q *AirlineRoutesQuery) Validate() error {
	q.AirlineName = strings.TrimSpace(q.AirlineName)
	return validateStruct(q)
}

// Validate checks the query.
func (q *CountryRoutesQuery) Validate() error {
	q.SourceCountry = strings.TrimSpace(q.SourceCountry)
	q.DestinationCountry = strings.TrimSpace(q.DestinationCountry)
	return validateStruct(q)
}

// Validate checks the path parameters.
func (p *UserPath) Validate() error {
	return validateStruct(p)
}

// Validate checks the request.
func (r *AddItineraryRequest) Validate() error {
	r.LegID = strings.TrimSpace(r.LegID)
	return validateStruct(r)
}

// Validate trims the text fields, then checks the request.
func (r *CreateUserRequest) Validate() error {
	for _, s := range []*string{
		&r.FullName, &r.PhoneNumber, &r.Email,
		&r.AddressFirstLine, &r.AddressLastLine, &r.AddressPostcode,
		&r.BillingFirstLine, &r.BillingLastLine, &r.BillingPostcode,
		&r.BirthDate, &r.Gender,
	} {
		*s = strings.TrimSpace(*s)
	}
	return validateStruct(r)
}
