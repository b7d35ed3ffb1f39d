package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/api/request"
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
	"github.com/rkaranam/Savings-Planner-Backend/internal/repository"
	"github.com/rkaranam/Savings-Planner-Backend/internal/validation"
)

// GoalService handles the goal ledger's business logic: creating goals,
// recording contributions, and deriving per-goal display state.
type GoalService struct {
	goalRepo         *repository.GoalRepository
	contributionRepo *repository.ContributionRepository
	rateService      *RateService
}

// NewGoalService creates a new GoalService with the provided dependencies.
func NewGoalService(
	goalRepo *repository.GoalRepository,
	contributionRepo *repository.ContributionRepository,
	rateService *RateService,
) *GoalService {
	return &GoalService{
		goalRepo:         goalRepo,
		contributionRepo: contributionRepo,
		rateService:      rateService,
	}
}

// CreateGoal validates and persists a new goal. The goal starts with its full
// target amount remaining and zero contributions. Not idempotent: each call
// creates a distinct goal, even with identical inputs.
func (s *GoalService) CreateGoal(ctx context.Context, req request.CreateGoalRequest) (model.Goal, error) {
	if err := validation.ValidateCreateGoal(req); err != nil {
		return model.Goal{}, err
	}

	goal := model.Goal{
		Name:            strings.TrimSpace(req.Name),
		TargetAmount:    req.TargetAmount,
		RemainingAmount: req.TargetAmount,
		Contributions:   0,
		Currency:        model.Currency(req.Currency),
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.goalRepo.InsertGoal(ctx, &goal); err != nil {
		return model.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// GetGoal retrieves a single goal by ID.
// Returns apperrors.ErrGoalNotFound when it does not exist.
func (s *GoalService) GetGoal(goalID int64) (model.Goal, error) {
	return s.goalRepo.GetGoalOnID(goalID)
}

// GetGoals retrieves all goals in display order (incomplete before complete,
// newest first within each group).
func (s *GoalService) GetGoals() ([]model.Goal, error) {
	return s.goalRepo.GetGoals()
}

// GetGoalSummaries retrieves all goals in display order enriched with derived
// state: progress percentage, saved amount, and the target converted into the
// opposite currency using the effective USD->INR rate.
func (s *GoalService) GetGoalSummaries() ([]model.GoalSummary, error) {
	goals, err := s.goalRepo.GetGoals()
	if err != nil {
		return nil, err
	}

	rate, err := s.rateService.EffectiveRate()
	if err != nil {
		return nil, err
	}

	summaries := make([]model.GoalSummary, len(goals))
	for i, goal := range goals {
		summaries[i] = model.GoalSummary{
			Goal:            goal,
			Progress:        Progress(goal.TargetAmount, goal.RemainingAmount),
			SavedAmount:     goal.TargetAmount - goal.RemainingAmount,
			ConvertedTarget: ConvertAmount(goal.TargetAmount, goal.Currency, rate),
			Complete:        goal.Complete(),
		}
	}

	return summaries, nil
}

// AddContribution validates and records a contribution against a goal.
// The contribution append and the goal update happen in one transaction;
// a rejected or failed contribution leaves both tables unchanged.
//
// A missing date defaults to the submission time. A goal that has reached
// zero remaining rejects every further contribution.
func (s *GoalService) AddContribution(ctx context.Context, goalID int64, req request.CreateContributionRequest) (model.Contribution, error) {
	goal, err := s.goalRepo.GetGoalOnID(goalID)
	if err != nil {
		return model.Contribution{}, err
	}

	if err := validation.ValidateCreateContribution(req, goal.RemainingAmount); err != nil {
		return model.Contribution{}, err
	}

	now := time.Now().UTC()
	date := now
	if strings.TrimSpace(req.Date) != "" {
		// Already known to parse; validation rejected malformed dates.
		date, _ = validation.ParseDate(req.Date)
	}

	contribution := model.Contribution{
		GoalID:    goalID,
		Amount:    req.Amount,
		Date:      date,
		CreatedAt: now,
	}

	if err := s.contributionRepo.InsertContributionAndApply(ctx, &contribution); err != nil {
		return model.Contribution{}, err
	}

	return contribution, nil
}

// GetContributions retrieves the contribution log for a goal, newest first.
// Returns apperrors.ErrGoalNotFound when the goal does not exist.
func (s *GoalService) GetContributions(goalID int64) ([]model.Contribution, error) {
	if _, err := s.goalRepo.GetGoalOnID(goalID); err != nil {
		return nil, err
	}
	return s.contributionRepo.GetContributionsOnGoalID(goalID)
}
