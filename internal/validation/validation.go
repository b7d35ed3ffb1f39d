package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
)

// MaxTargetAmount is the upper bound for a goal's target amount.
const MaxTargetAmount = 100_000_000

// Error carries field-level validation messages. The operation that produced
// it was aborted before any write.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ParseID parses a URL path segment into a positive entity ID.
func ParseID(id string) (int64, error) {
	if strings.TrimSpace(id) == "" {
		return 0, apperrors.ErrEmptyID
	}
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidID, id)
	}
	return parsed, nil
}
