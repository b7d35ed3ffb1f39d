package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
)

// GoalRepository provides data access methods for the goal table.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// InsertGoal persists a new goal and assigns its auto-increment ID.
// The caller is expected to have set RemainingAmount equal to TargetAmount
// and Contributions to zero; this method stores what it is given.
func (s *GoalRepository) InsertGoal(ctx context.Context, goal *model.Goal) error {
	query := `
		INSERT INTO goal (name, target_amount, remaining_amount, contributions, currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		goal.Name,
		goal.TargetAmount,
		goal.RemainingAmount,
		goal.Contributions,
		string(goal.Currency),
		goal.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted goal ID: %w", err)
	}
	goal.ID = id

	return nil
}

// GetGoalOnID retrieves a single goal by its ID.
// Returns apperrors.ErrGoalNotFound when no goal with the ID exists.
func (s *GoalRepository) GetGoalOnID(goalID int64) (model.Goal, error) {
	query := `
		SELECT id, name, target_amount, remaining_amount, contributions, currency, created_at
		FROM goal
		WHERE id = ?
	`

	goal, err := scanGoal(s.db.QueryRow(query, goalID))
	if err == sql.ErrNoRows {
		return model.Goal{}, apperrors.ErrGoalNotFound
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to query goal: %w", err)
	}

	return goal, nil
}

// GetGoals retrieves all goals in display order: incomplete goals before
// completed ones, most recently created first within each group.
// Returns an empty slice when no goals exist.
func (s *GoalRepository) GetGoals() ([]model.Goal, error) {
	query := `
		SELECT id, name, target_amount, remaining_amount, contributions, currency, created_at
		FROM goal
		ORDER BY CASE WHEN remaining_amount = 0 THEN 1 ELSE 0 END ASC, id DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}

	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal table results: %w", err)
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal table: %w", err)
	}

	return goals, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(row scanner) (model.Goal, error) {
	var g model.Goal
	var currency, createdAtStr string

	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.TargetAmount,
		&g.RemainingAmount,
		&g.Contributions,
		&currency,
		&createdAtStr,
	)
	if err != nil {
		return model.Goal{}, err
	}

	g.Currency = model.Currency(currency)
	g.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Goal{}, err
	}

	return g, nil
}
