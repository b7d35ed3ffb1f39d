package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/api/handlers"
	"github.com/rkaranam/Savings-Planner-Backend/internal/testutil"
)

func TestRateHandler_Refresh(t *testing.T) {
	t.Run("successful refresh stores and returns the sample", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		rateService := testutil.NewTestRateService(t, db, testutil.NewStubRateProvider().WithRate(88.5))
		handler := handlers.NewRateHandler(rateService)

		req := httptest.NewRequest(http.MethodPost, "/api/rates/refresh", nil)
		w := httptest.NewRecorder()

		handler.Refresh(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.RefreshResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if !response.Refreshed {
			t.Error("Expected refreshed true")
		}
		if response.Sample == nil || response.Sample.Rate != 88.5 {
			t.Errorf("Expected sample with rate 88.5, got %+v", response.Sample)
		}
	})

	t.Run("provider failure falls back to last known sample", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		rateService := testutil.NewTestRateService(t, db, testutil.NewStubRateProvider().WithFailure())
		handler := handlers.NewRateHandler(rateService)
		testutil.CreateRateSample(t, db, 90.0, time.Now().UTC())

		req := httptest.NewRequest(http.MethodPost, "/api/rates/refresh", nil)
		w := httptest.NewRecorder()

		handler.Refresh(w, req)

		// The refresh itself did not fail the request
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response handlers.RefreshResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Refreshed {
			t.Error("Expected refreshed false when provider is unreachable")
		}
		if response.Sample == nil || response.Sample.Rate != 90.0 {
			t.Errorf("Expected fallback to stored sample 90.0, got %+v", response.Sample)
		}
	})

	t.Run("provider failure with no history returns no sample", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		rateService := testutil.NewTestRateService(t, db, testutil.NewStubRateProvider().WithFailure())
		handler := handlers.NewRateHandler(rateService)

		req := httptest.NewRequest(http.MethodPost, "/api/rates/refresh", nil)
		w := httptest.NewRecorder()

		handler.Refresh(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response handlers.RefreshResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Refreshed || response.Sample != nil {
			t.Errorf("Expected no refresh and no sample, got %+v", response)
		}
	})
}

func TestRateHandler_Latest(t *testing.T) {
	t.Run("returns the newest stored sample", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		rateService := testutil.NewTestRateService(t, db, testutil.NewStubRateProvider().WithFailure())
		handler := handlers.NewRateHandler(rateService)

		now := time.Now().UTC()
		testutil.CreateRateSample(t, db, 89.0, now.Add(-24*time.Hour))
		testutil.CreateRateSample(t, db, 90.5, now)

		req := httptest.NewRequest(http.MethodGet, "/api/rates/latest", nil)
		w := httptest.NewRecorder()

		handler.Latest(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response handlers.RateSampleResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Rate != 90.5 {
			t.Errorf("Expected rate 90.5, got %v", response.Rate)
		}
		if response.Currency != "USD" {
			t.Errorf("Expected currency USD, got %s", response.Currency)
		}
	})

	t.Run("empty history returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		rateService := testutil.NewTestRateService(t, db, testutil.NewStubRateProvider().WithFailure())
		handler := handlers.NewRateHandler(rateService)

		req := httptest.NewRequest(http.MethodGet, "/api/rates/latest", nil)
		w := httptest.NewRecorder()

		handler.Latest(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
