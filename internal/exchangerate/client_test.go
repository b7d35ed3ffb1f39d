package exchangerate_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rkaranam/Savings-Planner-Backend/internal/exchangerate"
	"github.com/rkaranam/Savings-Planner-Backend/internal/testutil"
)

func TestClient_USDToINR(t *testing.T) {
	t.Run("extracts the INR rate", func(t *testing.T) {
		server := testutil.NewRateAPIServer(t, map[string]float64{
			"INR": 88.25,
			"EUR": 0.92,
		})
		client := exchangerate.NewClient(server.URL, "test-key")

		rate, err := client.USDToINR()
		if err != nil {
			t.Fatalf("USDToINR failed: %v", err)
		}
		if rate != 88.25 {
			t.Errorf("Expected rate 88.25, got %v", rate)
		}
	})

	t.Run("missing INR entry is an error", func(t *testing.T) {
		server := testutil.NewRateAPIServer(t, map[string]float64{"EUR": 0.92})
		client := exchangerate.NewClient(server.URL, "test-key")

		if _, err := client.USDToINR(); err == nil {
			t.Error("Expected error for missing INR rate, got nil")
		}
	})

	t.Run("non-positive rate is rejected", func(t *testing.T) {
		for _, rate := range []float64{0, -1} {
			server := testutil.NewRateAPIServer(t, map[string]float64{"INR": rate})
			client := exchangerate.NewClient(server.URL, "test-key")

			if _, err := client.USDToINR(); err == nil {
				t.Errorf("Expected error for rate %v, got nil", rate)
			}
		}
	})

	t.Run("API error result is surfaced", func(t *testing.T) {
		server := testutil.NewFailingRateAPIServer(t, http.StatusOK, "invalid-key")
		client := exchangerate.NewClient(server.URL, "bad-key")

		_, err := client.USDToINR()
		if err == nil {
			t.Fatal("Expected error for API error result, got nil")
		}
		if !strings.Contains(err.Error(), "invalid-key") {
			t.Errorf("Expected error to carry the provider's error type, got %v", err)
		}
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := testutil.NewFailingRateAPIServer(t, http.StatusServiceUnavailable, "")
		client := exchangerate.NewClient(server.URL, "test-key")

		if _, err := client.USDToINR(); err == nil {
			t.Error("Expected error for 503 response, got nil")
		}
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		t.Cleanup(server.Close)
		client := exchangerate.NewClient(server.URL, "test-key")

		if _, err := client.USDToINR(); err == nil {
			t.Error("Expected error for malformed body, got nil")
		}
	})
}

func TestClient_INRToUSD(t *testing.T) {
	t.Run("extracts the USD rate from an INR base", func(t *testing.T) {
		server := testutil.NewRateAPIServer(t, map[string]float64{"USD": 0.0113})
		client := exchangerate.NewClient(server.URL, "test-key")

		rate, err := client.INRToUSD()
		if err != nil {
			t.Fatalf("INRToUSD failed: %v", err)
		}
		if rate != 0.0113 {
			t.Errorf("Expected rate 0.0113, got %v", rate)
		}
	})

	t.Run("missing USD entry is an error", func(t *testing.T) {
		server := testutil.NewRateAPIServer(t, map[string]float64{"EUR": 0.92})
		client := exchangerate.NewClient(server.URL, "test-key")

		if _, err := client.INRToUSD(); err == nil {
			t.Error("Expected error for missing USD rate, got nil")
		}
	})
}

func TestClient_LatestRates(t *testing.T) {
	t.Run("request path embeds key and base", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"result":"success","base_code":"USD","conversion_rates":{"INR":88.0}}`))
		}))
		t.Cleanup(server.Close)
		client := exchangerate.NewClient(server.URL, "test-key")

		if _, err := client.LatestRates("USD"); err != nil {
			t.Fatalf("LatestRates failed: %v", err)
		}
		if gotPath != "/test-key/latest/USD" {
			t.Errorf("Expected path /test-key/latest/USD, got %s", gotPath)
		}
	})
}
