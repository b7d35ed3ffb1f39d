package validation

import (
	"math"
	"strings"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/api/request"
)

// ValidateCreateContribution validates a contribution request against the
// goal's current remaining amount.
//
// Constraints:
//   - amount: finite, positive, at most remainingAmount
//   - date: optional; if provided, must be "2006-01-02" or RFC3339
//
// The remaining-amount check here covers the caller's read; the repository
// re-checks it inside the transaction so a concurrent contribution on the
// same goal cannot overshoot.
func ValidateCreateContribution(req request.CreateContributionRequest, remainingAmount float64) error {
	errors := make(map[string]string)

	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		errors["amount"] = "contribution amount must be a finite number"
	} else if req.Amount <= 0 {
		errors["amount"] = "contribution amount must be a positive number"
	} else if req.Amount > remainingAmount {
		errors["amount"] = "contribution must be less than or equal to remaining amount"
	}

	if strings.TrimSpace(req.Date) != "" {
		if _, err := ParseDate(req.Date); err != nil {
			errors["date"] = "date must be in YYYY-MM-DD or RFC3339 format"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ParseDate parses a user-supplied date in "2006-01-02" or RFC3339 format.
func ParseDate(str string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		t, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.UTC(), nil
}
