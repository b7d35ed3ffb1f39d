package testutil

import (
	"database/sql"
	"testing"

	"github.com/rkaranam/Savings-Planner-Backend/internal/repository"
	"github.com/rkaranam/Savings-Planner-Backend/internal/service"
)

// NewTestRateService builds a RateService backed by the given database and
// rate provider. Pass a StubRateProvider to control provider behavior.
func NewTestRateService(t *testing.T, db *sql.DB, provider service.RateProvider) *service.RateService {
	t.Helper()

	rateRepo := repository.NewRateRepository(db)

	return service.NewRateService(rateRepo, provider)
}

// NewTestGoalService builds a GoalService with a rate provider that always
// fails, so conversions use whatever samples are stored (or the default rate).
func NewTestGoalService(t *testing.T, db *sql.DB) *service.GoalService {
	t.Helper()

	goalRepo := repository.NewGoalRepository(db)
	contributionRepo := repository.NewContributionRepository(db)
	rateService := NewTestRateService(t, db, NewStubRateProvider().WithFailure())

	return service.NewGoalService(goalRepo, contributionRepo, rateService)
}

// NewTestDashboardService builds a DashboardService over the given database.
func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()

	goalRepo := repository.NewGoalRepository(db)
	rateService := NewTestRateService(t, db, NewStubRateProvider().WithFailure())

	return service.NewDashboardService(goalRepo, rateService)
}
