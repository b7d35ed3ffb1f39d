package service

import (
	"math"

	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
)

// Pure derived-data rules for goals. Nothing in this file touches storage;
// every function maps stored state plus an exchange rate to display values.

// Progress returns the percentage of a goal that has been funded, floored to
// an integer. Defined as 0 when target is not positive.
func Progress(target, remaining float64) int {
	if target <= 0 {
		return 0
	}
	return int(math.Floor(((target - remaining) / target) * 100))
}

// FloorTwo rounds a value down to two decimal places.
func FloorTwo(v float64) float64 {
	return math.Floor(v*100) / 100
}

// ConvertAmount converts an amount into the opposite currency using the
// USD->INR rate: USD amounts multiply by the rate, INR amounts divide.
// The result is floored to two decimal places.
func ConvertAmount(amount float64, currency model.Currency, usdToInr float64) float64 {
	if currency == model.CurrencyUSD {
		return FloorTwo(amount * usdToInr)
	}
	return FloorTwo(amount / usdToInr)
}

// NormalizeToINR expresses an amount in INR: USD amounts multiply by the
// USD->INR rate, INR amounts pass through unchanged.
func NormalizeToINR(amount float64, currency model.Currency, usdToInr float64) float64 {
	if currency == model.CurrencyUSD {
		return amount * usdToInr
	}
	return amount
}

// Summarize aggregates all goals into a dashboard summary with totals in INR.
// OverallProgress is a percentage with two decimals, floored, and 0 when
// there is nothing to aggregate.
func Summarize(goals []model.Goal, usdToInr float64) model.DashboardSummary {
	summary := model.DashboardSummary{
		GoalCount:    len(goals),
		ExchangeRate: usdToInr,
	}

	for _, goal := range goals {
		summary.TotalTarget += NormalizeToINR(goal.TargetAmount, goal.Currency, usdToInr)
		summary.TotalRemaining += NormalizeToINR(goal.RemainingAmount, goal.Currency, usdToInr)
		if goal.Complete() {
			summary.CompletedCount++
		}
	}

	summary.TotalSaved = summary.TotalTarget - summary.TotalRemaining
	if summary.TotalTarget > 0 {
		summary.OverallProgress = math.Floor((summary.TotalSaved/summary.TotalTarget)*10000) / 100
	}

	return summary
}
