package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
	"github.com/rkaranam/Savings-Planner-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps service-layer errors onto HTTP responses:
// validation errors become 400 with field details, missing goals become 404,
// an over-limit contribution becomes 400 on the amount field, and anything
// else is a 500 with the fallback message.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, apperrors.ErrGoalNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": apperrors.ErrGoalNotFound.Error(),
		})
	case errors.Is(err, apperrors.ErrContributionExceedsRemaining):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "Validation failed",
			"fields": map[string]string{
				"amount": "contribution must be less than or equal to remaining amount",
			},
		})
	default:
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  fallback,
			"detail": err.Error(),
		})
	}
}
