package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
	"github.com/rkaranam/Savings-Planner-Backend/internal/service"
)

// RateHandler handles exchange-rate HTTP requests
type RateHandler struct {
	rateService *service.RateService
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(rateService *service.RateService) *RateHandler {
	return &RateHandler{
		rateService: rateService,
	}
}

// RateSampleResponse represents one stored rate observation
type RateSampleResponse struct {
	ID       int64   `json:"id"`
	Rate     float64 `json:"rate"`
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
}

// RefreshResponse reports the outcome of a refresh attempt. When the provider
// was unreachable, Refreshed is false and Sample carries the last known
// sample, if any.
type RefreshResponse struct {
	Refreshed bool                `json:"refreshed"`
	Sample    *RateSampleResponse `json:"sample,omitempty"`
}

func toRateSampleResponse(s model.ExchangeRateSample) *RateSampleResponse {
	return &RateSampleResponse{
		ID:       s.ID,
		Rate:     s.Rate,
		Currency: string(s.Currency),
		Date:     s.Date.Format(time.RFC3339),
	}
}

// Refresh handles POST /api/rates/refresh: the manual refresh path.
// Provider failures are not request failures; the response says whether a new
// sample was stored and which sample is in effect.
func (h *RateHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	sample, err := h.rateService.RefreshRate(r.Context())
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to store exchange rate",
			"detail": err.Error(),
		})
		return
	}

	if sample != nil {
		respondJSON(w, http.StatusOK, RefreshResponse{
			Refreshed: true,
			Sample:    toRateSampleResponse(*sample),
		})
		return
	}

	// Provider unavailable; fall back to the last known sample.
	response := RefreshResponse{Refreshed: false}
	if last, err := h.rateService.LatestSample(); err == nil {
		response.Sample = toRateSampleResponse(last)
	}
	respondJSON(w, http.StatusOK, response)
}

// Latest handles GET /api/rates/latest
func (h *RateHandler) Latest(w http.ResponseWriter, r *http.Request) {
	sample, err := h.rateService.LatestSample()
	if errors.Is(err, apperrors.ErrExchangeRateNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": apperrors.ErrExchangeRateNotFound.Error(),
		})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to retrieve exchange rate",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, toRateSampleResponse(sample))
}
