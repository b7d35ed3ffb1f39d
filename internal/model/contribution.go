package model

import "time"

// Contribution represents a single deposit event against a goal.
// Contributions are append-only: they are never edited or deleted, and the
// contribution log is the authoritative record of how a goal's remaining
// amount got to its current value.
type Contribution struct {
	ID        int64     `json:"id"`
	GoalID    int64     `json:"goalId"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
