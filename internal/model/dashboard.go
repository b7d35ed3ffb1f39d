package model

// DashboardSummary aggregates all goals into a single common currency (INR).
// USD amounts are normalized with the effective USD->INR rate before summing.
// OverallProgress is a percentage with two decimal places, floored.
type DashboardSummary struct {
	TotalTarget     float64 `json:"totalTarget"`
	TotalRemaining  float64 `json:"totalRemaining"`
	TotalSaved      float64 `json:"totalSaved"`
	OverallProgress float64 `json:"overallProgress"`
	GoalCount       int     `json:"goalCount"`
	CompletedCount  int     `json:"completedCount"`
	ExchangeRate    float64 `json:"exchangeRate"`
}
