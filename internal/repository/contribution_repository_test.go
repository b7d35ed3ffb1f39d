package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
	"github.com/rkaranam/Savings-Planner-Backend/internal/repository"
	"github.com/rkaranam/Savings-Planner-Backend/internal/testutil"
)

// TestInsertContributionAndApply tests the atomic contribution transaction.
//
// WHY: This is the only multi-write operation in the system. A contribution
// row without the matching goal update (or vice versa) corrupts the ledger;
// the guarded UPDATE must also stop a stale read from overdrawing the goal.
func TestInsertContributionAndApply(t *testing.T) {
	t.Run("applies both writes together", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewContributionRepository(db)
		goalRepo := repository.NewGoalRepository(db)
		goal := testutil.CreateGoal(t, db, "Emergency Fund", 1000)

		contribution := &model.Contribution{
			GoalID:    goal.ID,
			Amount:    400,
			Date:      time.Now().UTC(),
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.InsertContributionAndApply(context.Background(), contribution); err != nil {
			t.Fatalf("InsertContributionAndApply failed: %v", err)
		}

		if contribution.ID == 0 {
			t.Error("Expected assigned contribution ID")
		}

		updated, err := goalRepo.GetGoalOnID(goal.ID)
		if err != nil {
			t.Fatalf("GetGoalOnID failed: %v", err)
		}
		if updated.RemainingAmount != 600 {
			t.Errorf("Expected remaining 600, got %v", updated.RemainingAmount)
		}
		if updated.Contributions != 1 {
			t.Errorf("Expected counter 1, got %d", updated.Contributions)
		}

		count, err := repo.CountContributionsOnGoalID(goal.ID)
		if err != nil {
			t.Fatalf("CountContributionsOnGoalID failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 logged contribution, got %d", count)
		}
	})

	t.Run("stale read cannot overdraw the goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewContributionRepository(db)
		goalRepo := repository.NewGoalRepository(db)
		// Caller validated against remaining=100, but another contribution
		// drained the goal to 50 in between.
		goal := testutil.NewGoal().WithTargetAmount(1000).WithRemainingAmount(50).Build(t, db)

		contribution := &model.Contribution{
			GoalID:    goal.ID,
			Amount:    100,
			Date:      time.Now().UTC(),
			CreatedAt: time.Now().UTC(),
		}
		err := repo.InsertContributionAndApply(context.Background(), contribution)
		if !errors.Is(err, apperrors.ErrContributionExceedsRemaining) {
			t.Fatalf("Expected ErrContributionExceedsRemaining, got %v", err)
		}

		// Nothing changed in either table
		updated, _ := goalRepo.GetGoalOnID(goal.ID)
		if updated.RemainingAmount != 50 || updated.Contributions != 0 {
			t.Errorf("Goal changed after rejected contribution: %+v", updated)
		}
		count, _ := repo.CountContributionsOnGoalID(goal.ID)
		if count != 0 {
			t.Errorf("Expected empty log, got %d rows", count)
		}
	})

	t.Run("missing goal is reported as not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewContributionRepository(db)

		contribution := &model.Contribution{
			GoalID:    424242,
			Amount:    10,
			Date:      time.Now().UTC(),
			CreatedAt: time.Now().UTC(),
		}
		err := repo.InsertContributionAndApply(context.Background(), contribution)
		if !errors.Is(err, apperrors.ErrGoalNotFound) {
			t.Errorf("Expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("contributions list newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewContributionRepository(db)
		goal := testutil.CreateGoal(t, db, "History Goal", 1000)

		now := time.Now().UTC()
		for i, amount := range []float64{100, 200, 300} {
			c := &model.Contribution{
				GoalID:    goal.ID,
				Amount:    amount,
				Date:      now.Add(time.Duration(i) * time.Hour),
				CreatedAt: now,
			}
			if err := repo.InsertContributionAndApply(context.Background(), c); err != nil {
				t.Fatalf("Insert %d failed: %v", i, err)
			}
		}

		contributions, err := repo.GetContributionsOnGoalID(goal.ID)
		if err != nil {
			t.Fatalf("GetContributionsOnGoalID failed: %v", err)
		}
		if len(contributions) != 3 {
			t.Fatalf("Expected 3 contributions, got %d", len(contributions))
		}
		if contributions[0].Amount != 300 || contributions[2].Amount != 100 {
			t.Errorf("Expected newest first, got %+v", contributions)
		}
	})
}
