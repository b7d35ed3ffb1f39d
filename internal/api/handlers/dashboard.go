package handlers

import (
	"net/http"

	"github.com/rkaranam/Savings-Planner-Backend/internal/service"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// DashboardSummaryResponse represents cross-goal totals normalized to INR
type DashboardSummaryResponse struct {
	TotalTarget     float64 `json:"totalTarget"`
	TotalRemaining  float64 `json:"totalRemaining"`
	TotalSaved      float64 `json:"totalSaved"`
	OverallProgress float64 `json:"overallProgress"`
	GoalCount       int     `json:"goalCount"`
	CompletedCount  int     `json:"completedCount"`
	ExchangeRate    float64 `json:"exchangeRate"`
}

// Summary handles GET /api/dashboard/summary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetSummary()
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to get dashboard summary",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, DashboardSummaryResponse{
		TotalTarget:     summary.TotalTarget,
		TotalRemaining:  summary.TotalRemaining,
		TotalSaved:      summary.TotalSaved,
		OverallProgress: summary.OverallProgress,
		GoalCount:       summary.GoalCount,
		CompletedCount:  summary.CompletedCount,
		ExchangeRate:    summary.ExchangeRate,
	})
}
