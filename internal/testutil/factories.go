package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
)

// GoalBuilder provides a fluent interface for creating test goals.
//
// Example usage:
//
//	// Simple creation with defaults
//	goal := testutil.NewGoal().Build(t, db)
//
//	// Customized goal
//	goal := testutil.NewGoal().
//	    WithName("Trip to Switzerland").
//	    WithTargetAmount(5000).
//	    WithCurrency(model.CurrencyUSD).
//	    Completed().
//	    Build(t, db)
type GoalBuilder struct {
	Name            string
	TargetAmount    float64
	RemainingAmount float64
	Contributions   int64
	Currency        model.Currency
	CreatedAt       time.Time
}

// NewGoal creates a GoalBuilder with sensible defaults.
func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		Name:            "Test Goal",
		TargetAmount:    1000,
		RemainingAmount: 1000,
		Contributions:   0,
		Currency:        model.CurrencyINR,
		CreatedAt:       time.Now().UTC(),
	}
}

// WithName sets a custom name.
func (b *GoalBuilder) WithName(name string) *GoalBuilder {
	b.Name = name
	return b
}

// WithTargetAmount sets the target and resets remaining to the full target.
func (b *GoalBuilder) WithTargetAmount(amount float64) *GoalBuilder {
	b.TargetAmount = amount
	b.RemainingAmount = amount
	return b
}

// WithRemainingAmount sets a custom remaining amount.
func (b *GoalBuilder) WithRemainingAmount(amount float64) *GoalBuilder {
	b.RemainingAmount = amount
	return b
}

// WithContributions sets the cached contribution counter.
func (b *GoalBuilder) WithContributions(count int64) *GoalBuilder {
	b.Contributions = count
	return b
}

// WithCurrency sets the goal currency.
func (b *GoalBuilder) WithCurrency(currency model.Currency) *GoalBuilder {
	b.Currency = currency
	return b
}

// Completed marks the goal fully funded (remaining amount zero).
func (b *GoalBuilder) Completed() *GoalBuilder {
	b.RemainingAmount = 0
	return b
}

// Build creates the goal in the database and returns it with its assigned ID.
func (b *GoalBuilder) Build(t *testing.T, db *sql.DB) model.Goal {
	t.Helper()

	query := `
		INSERT INTO goal (name, target_amount, remaining_amount, contributions, currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query,
		b.Name,
		b.TargetAmount,
		b.RemainingAmount,
		b.Contributions,
		string(b.Currency),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test goal: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test goal ID: %v", err)
	}

	return model.Goal{
		ID:              id,
		Name:            b.Name,
		TargetAmount:    b.TargetAmount,
		RemainingAmount: b.RemainingAmount,
		Contributions:   b.Contributions,
		Currency:        b.Currency,
		CreatedAt:       b.CreatedAt,
	}
}

// Convenience functions

// CreateGoal creates a goal with the given name and target amount in INR.
//
// Example usage:
//
//	goal := testutil.CreateGoal(t, db, "Emergency Fund", 1000)
func CreateGoal(t *testing.T, db *sql.DB, name string, targetAmount float64) model.Goal {
	t.Helper()
	return NewGoal().WithName(name).WithTargetAmount(targetAmount).Build(t, db)
}

// CreateRateSample appends an exchange-rate sample row and returns it.
func CreateRateSample(t *testing.T, db *sql.DB, rate float64, date time.Time) model.ExchangeRateSample {
	t.Helper()

	query := `
		INSERT INTO exchange_rate (rate, currency, date, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := db.Exec(query,
		rate,
		string(model.CurrencyUSD),
		date.UTC().Format(time.RFC3339),
		date.UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test rate sample: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test rate sample ID: %v", err)
	}

	return model.ExchangeRateSample{
		ID:        id,
		Rate:      rate,
		Currency:  model.CurrencyUSD,
		Date:      date.UTC(),
		CreatedAt: date.UTC(),
	}
}
