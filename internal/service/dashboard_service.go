package service

import (
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
	"github.com/rkaranam/Savings-Planner-Backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DashboardService derives the cross-goal aggregate view. It never mutates
// stored state; the summary is recomputed from the goal table and the newest
// rate sample on every call.
type DashboardService struct {
	goalRepo    *repository.GoalRepository
	rateService *RateService
}

// NewDashboardService creates a new DashboardService with the provided dependencies.
func NewDashboardService(goalRepo *repository.GoalRepository, rateService *RateService) *DashboardService {
	return &DashboardService{
		goalRepo:    goalRepo,
		rateService: rateService,
	}
}

// GetSummary loads all goals and the effective USD->INR rate, then aggregates
// targets and remaining balances into INR totals. Goals and rate are
// independent reads, so they load concurrently.
func (s *DashboardService) GetSummary() (model.DashboardSummary, error) {
	var goals []model.Goal
	var rate float64

	var g errgroup.Group
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.GetGoals()
		return err
	})
	g.Go(func() error {
		var err error
		rate, err = s.rateService.EffectiveRate()
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DashboardSummary{}, err
	}

	return Summarize(goals, rate), nil
}
