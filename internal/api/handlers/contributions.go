package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rkaranam/Savings-Planner-Backend/internal/api/request"
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
	"github.com/rkaranam/Savings-Planner-Backend/internal/service"
	"github.com/rkaranam/Savings-Planner-Backend/internal/validation"
)

// ContributionHandler handles contribution-related HTTP requests
type ContributionHandler struct {
	goalService *service.GoalService
}

// NewContributionHandler creates a new ContributionHandler
func NewContributionHandler(goalService *service.GoalService) *ContributionHandler {
	return &ContributionHandler{
		goalService: goalService,
	}
}

// ContributionResponse represents a single contribution in API responses
type ContributionResponse struct {
	ID     int64   `json:"id"`
	GoalID int64   `json:"goalId"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

func toContributionResponse(c model.Contribution) ContributionResponse {
	return ContributionResponse{
		ID:     c.ID,
		GoalID: c.GoalID,
		Amount: c.Amount,
		Date:   c.Date.Format(time.RFC3339),
	}
}

// AddContribution handles POST /api/goal/{goalId}/contribution
func (h *ContributionHandler) AddContribution(w http.ResponseWriter, r *http.Request) {
	goalID, err := validation.ParseID(chi.URLParam(r, "goalId"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var req request.CreateContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	contribution, err := h.goalService.AddContribution(r.Context(), goalID, req)
	if err != nil {
		respondServiceError(w, err, "Failed to record contribution")
		return
	}

	respondJSON(w, http.StatusCreated, toContributionResponse(contribution))
}

// Contributions handles GET /api/goal/{goalId}/contribution
func (h *ContributionHandler) Contributions(w http.ResponseWriter, r *http.Request) {
	goalID, err := validation.ParseID(chi.URLParam(r, "goalId"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	contributions, err := h.goalService.GetContributions(goalID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve contributions")
		return
	}

	response := make([]ContributionResponse, len(contributions))
	for i, c := range contributions {
		response[i] = toContributionResponse(c)
	}

	respondJSON(w, http.StatusOK, response)
}
