package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rkaranam/Savings-Planner-Backend/internal/api/response"
	"github.com/rkaranam/Savings-Planner-Backend/internal/validation"
)

// ValidateGoalID validates the {goalId} URL parameter before the request
// reaches a handler. Rejects anything that is not a positive integer so
// handlers can parse it without re-checking.
func ValidateGoalID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "goalId")

		if _, err := validation.ParseID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "Invalid goal ID", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
