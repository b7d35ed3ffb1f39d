package testutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rkaranam/Savings-Planner-Backend/internal/exchangerate"
)

// StubRateProvider is a stub implementation of service.RateProvider for
// testing. It returns a predefined rate or error instead of making API calls.
type StubRateProvider struct {
	// Rate is the USD->INR rate to return
	Rate float64
	// Err is the error to return instead of a rate
	Err error
	// Calls tracks how many times the provider was invoked
	Calls int
}

// NewStubRateProvider creates a stub provider returning a fixed rate of 90.
func NewStubRateProvider() *StubRateProvider {
	return &StubRateProvider{Rate: 90}
}

// WithRate configures the stub to return the given rate.
func (p *StubRateProvider) WithRate(rate float64) *StubRateProvider {
	p.Rate = rate
	p.Err = nil
	return p
}

// WithFailure configures the stub to fail every call, emulating an
// unreachable provider.
func (p *StubRateProvider) WithFailure() *StubRateProvider {
	p.Err = errors.New("rate provider unavailable")
	return p
}

// USDToINR returns the configured rate or error.
func (p *StubRateProvider) USDToINR() (float64, error) {
	p.Calls++
	if p.Err != nil {
		return 0, p.Err
	}
	return p.Rate, nil
}

// NewRateAPIServer starts an httptest server that emulates the
// exchangerate-api.com v6 "latest rates" endpoint, returning the given
// conversion rates for every base. The server is closed when the test ends.
//
// Use with exchangerate.NewClient(server.URL, "test-key") to exercise the
// real HTTP client against controlled responses.
func NewRateAPIServer(t *testing.T, rates map[string]float64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := exchangerate.Response{
			Result:          "success",
			BaseCode:        "USD",
			ConversionRates: rates,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			t.Errorf("Failed to encode mock rate response: %v", err)
		}
	}))

	t.Cleanup(server.Close)

	return server
}

// NewFailingRateAPIServer starts an httptest server that always responds with
// the provider's error shape, for testing failure normalization.
func NewFailingRateAPIServer(t *testing.T, status int, errorType string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		//nolint:errcheck // Test fixture
		json.NewEncoder(w).Encode(exchangerate.Response{
			Result:    "error",
			ErrorType: errorType,
		})
	}))

	t.Cleanup(server.Close)

	return server
}
