// Package integration provides helpers and integration tests for the flight route query service.
// Integration tests verify that components work together correctly, including
// HTTP handlers, use cases, the postgres repositories and mock stores.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flight-search/flight-route-query-service/internal/adapter/http"
	"github.com/flight-search/flight-route-query-service/internal/adapter/http/middleware"
	"github.com/flight-search/flight-route-query-service/internal/adapter/repository/postgres"
	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/usecase"
	"github.com/flight-search/flight-route-query-service/test/mock"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
}

// NewTestServer creates a new test server serving the given use cases.
func NewTestServer(s httpAdapter.Services) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewFlightHandler(s)
	httpAdapter.RegisterRoutes(e, handler, middleware.Chain(zerolog.Nop(), middleware.DefaultRecoveryConfig())...)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// NewSearchServer creates a test server whose search runs the real use case
// over the given stores.
func NewSearchServer(legs domain.LegStore, carriers domain.CarrierResolver, config *usecase.Config) *TestServer {
	return NewTestServer(httpAdapter.Services{
		Search: usecase.NewFlightSearchUseCase(legs, carriers, config),
	})
}

// NewDatabaseServer creates a test server with every use case backed by the
// postgres repositories over db.
func NewDatabaseServer(db *mock.DB) *TestServer {
	return NewTestServer(httpAdapter.Services{
		Search:      usecase.NewFlightSearchUseCase(postgres.NewLegStore(db), postgres.NewCarrierRepository(db), nil),
		Routes:      usecase.NewRouteLookupUseCase(postgres.NewRouteRepository(db)),
		Preferences: usecase.NewPreferencesUseCase(postgres.NewPreferenceRepository(db), nil),
		Itineraries: usecase.NewItineraryUseCase(postgres.NewItineraryRepository(db), nil),
		Users:       usecase.NewUserUseCase(postgres.NewUserRepository(db), nil),
		Store:       db,
	})
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	// Body is sent as is when it is a []byte, JSON encoded otherwise
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch body := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case []byte:
		bodyReader = bytes.NewReader(body)
	default:
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a leg search.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ReadyRequest makes a readiness check request.
func (ts *TestServer) ReadyRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/ready",
	})
}

// ParseLegs parses the response body as a list of legs.
func (r *Response) ParseLegs() ([]httpAdapter.LegDTO, error) {
	var legs []httpAdapter.LegDTO
	if err := json.Unmarshal(r.Body, &legs); err != nil {
		return nil, err
	}
	return legs, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Source      string                 `json:"source"`
	Destination string                 `json:"destination"`
	Airline     string                 `json:"airline"`
	Nonstop     bool                   `json:"nonstop"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Source:      "JFK",
		Destination: "LAX",
		Airline:     "Delta Air Lines",
		Nonstop:     true,
	}
}

// DefaultSearchRequestParams returns the use case form of DefaultSearchRequest.
func DefaultSearchRequestParams() usecase.SearchRequest {
	return usecase.SearchRequest{
		Source:      "JFK",
		Destination: "LAX",
		Airline:     "Delta Air Lines",
		Nonstop:     true,
	}
}
