package validation

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/rkaranam/Savings-Planner-Backend/internal/api/request"
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
)

// ValidateCreateGoal validates a goal creation request.
//
// Constraints:
//   - name: required, at least 3 characters after trimming whitespace
//   - targetAmount: finite, positive, at most MaxTargetAmount
//   - currency: INR or USD
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	// Length limits count characters, not bytes, so multibyte names
	// (e.g. Devanagari) are measured the way users see them.
	name := strings.TrimSpace(req.Name)
	if name == "" {
		errors["name"] = "goal name is required"
	} else if utf8.RuneCountInString(name) < 3 {
		errors["name"] = "goal name must be at least 3 characters"
	} else if utf8.RuneCountInString(name) > 100 {
		errors["name"] = "goal name must be 100 characters or less"
	}

	if math.IsNaN(req.TargetAmount) || math.IsInf(req.TargetAmount, 0) {
		errors["targetAmount"] = "target amount must be a finite number"
	} else if req.TargetAmount <= 0 {
		errors["targetAmount"] = "target amount must be a positive number"
	} else if req.TargetAmount > MaxTargetAmount {
		errors["targetAmount"] = "target amount is too large"
	}

	if !model.Currency(req.Currency).Valid() {
		errors["currency"] = "currency must be INR or USD"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
