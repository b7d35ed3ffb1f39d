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

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// GoalResponse represents a single goal in API responses
type GoalResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	TargetAmount    float64 `json:"targetAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
	Contributions   int64   `json:"contributions"`
	Currency        string  `json:"currency"`
	CreatedAt       string  `json:"createdAt"`
}

// GoalSummaryResponse represents a goal with its derived display state
type GoalSummaryResponse struct {
	GoalResponse
	Progress        int     `json:"progress"`
	SavedAmount     float64 `json:"savedAmount"`
	ConvertedTarget float64 `json:"convertedTarget"`
	Complete        bool    `json:"complete"`
}

func toGoalResponse(g model.Goal) GoalResponse {
	return GoalResponse{
		ID:              g.ID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		RemainingAmount: g.RemainingAmount,
		Contributions:   g.Contributions,
		Currency:        string(g.Currency),
		CreatedAt:       g.CreatedAt.Format(time.RFC3339),
	}
}

// CreateGoal handles POST /api/goal
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	goal, err := h.goalService.CreateGoal(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "Failed to create goal")
		return
	}

	respondJSON(w, http.StatusCreated, toGoalResponse(goal))
}

// Goals handles GET /api/goal: all goals in display order with derived state
func (h *GoalHandler) Goals(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.goalService.GetGoalSummaries()
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve goals")
		return
	}

	response := make([]GoalSummaryResponse, len(summaries))
	for i, s := range summaries {
		response[i] = GoalSummaryResponse{
			GoalResponse:    toGoalResponse(s.Goal),
			Progress:        s.Progress,
			SavedAmount:     s.SavedAmount,
			ConvertedTarget: s.ConvertedTarget,
			Complete:        s.Complete,
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// Goal handles GET /api/goal/{goalId}
func (h *GoalHandler) Goal(w http.ResponseWriter, r *http.Request) {
	goalID, err := validation.ParseID(chi.URLParam(r, "goalId"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	goal, err := h.goalService.GetGoal(goalID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve goal")
		return
	}

	respondJSON(w, http.StatusOK, toGoalResponse(goal))
}
