package request

// CreateContributionRequest represents the payload for recording a
// contribution against a goal. Date is optional in "2006-01-02" or RFC3339
// format; when omitted the submission time is used.
type CreateContributionRequest struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date,omitempty"`
}
