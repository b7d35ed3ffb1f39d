package request

// CreateGoalRequest represents the payload for creating a savings goal.
type CreateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	Currency     string  `json:"currency"`
}
