package model

import "time"

// Currency is the denomination of a goal's amounts. Only INR and USD are supported.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// Valid reports whether the currency is one of the supported values.
func (c Currency) Valid() bool {
	return c == CurrencyINR || c == CurrencyUSD
}

// Goal represents a savings goal from the database.
// RemainingAmount always satisfies 0 <= RemainingAmount <= TargetAmount;
// a goal with RemainingAmount == 0 is complete.
type Goal struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	TargetAmount    float64   `json:"targetAmount"`
	RemainingAmount float64   `json:"remainingAmount"`
	Contributions   int64     `json:"contributions"`
	Currency        Currency  `json:"currency"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Complete reports whether the goal has been fully funded.
func (g Goal) Complete() bool {
	return g.RemainingAmount == 0
}

// GoalSummary is the derived per-goal view served to the presentation layer.
// All fields are computed from the stored goal and the effective exchange rate;
// nothing here is persisted.
type GoalSummary struct {
	Goal
	Progress        int     `json:"progress"`        // 0-100, floored
	SavedAmount     float64 `json:"savedAmount"`     // target - remaining, in goal currency
	ConvertedTarget float64 `json:"convertedTarget"` // target in the opposite currency
	Complete        bool    `json:"complete"`
}
