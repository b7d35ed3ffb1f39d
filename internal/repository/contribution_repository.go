package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
)

// ContributionRepository provides data access methods for the contribution
// table and the one multi-write transaction in the system: appending a
// contribution while applying it to its goal.
type ContributionRepository struct {
	db *sql.DB
}

// NewContributionRepository creates a new ContributionRepository with the provided database connection.
func NewContributionRepository(db *sql.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

// InsertContributionAndApply appends a contribution and updates its goal's
// remaining_amount and contributions counter as one atomic unit. Either both
// writes commit or neither does; a contribution is never recorded without the
// goal reflecting it.
//
// The goal update is guarded (WHERE remaining_amount >= amount), so a
// concurrent contribution that drained the goal between the caller's read and
// this write causes a rollback instead of driving remaining_amount negative.
//
// Returns:
//   - apperrors.ErrGoalNotFound if the goal does not exist
//   - apperrors.ErrContributionExceedsRemaining if the amount no longer fits
func (s *ContributionRepository) InsertContributionAndApply(ctx context.Context, contribution *model.Contribution) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	result, err := tx.ExecContext(ctx, `
		UPDATE goal
		SET remaining_amount = remaining_amount - ?,
		    contributions = contributions + 1
		WHERE id = ? AND remaining_amount >= ?
	`, contribution.Amount, contribution.GoalID, contribution.Amount)
	if err != nil {
		return fmt.Errorf("failed to apply contribution to goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		var exists bool
		err := tx.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM goal WHERE id = ?)", contribution.GoalID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check goal existence: %w", err)
		}
		if !exists {
			return apperrors.ErrGoalNotFound
		}
		return apperrors.ErrContributionExceedsRemaining
	}

	insert, err := tx.ExecContext(ctx, `
		INSERT INTO contribution (goal_id, amount, date, created_at)
		VALUES (?, ?, ?, ?)
	`,
		contribution.GoalID,
		contribution.Amount,
		contribution.Date.UTC().Format(time.RFC3339),
		contribution.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert contribution: %w", err)
	}

	id, err := insert.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted contribution ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit contribution: %w", err)
	}
	contribution.ID = id

	return nil
}

// GetContributionsOnGoalID retrieves all contributions for a goal, newest first.
// Returns an empty slice when the goal has no contributions.
func (s *ContributionRepository) GetContributionsOnGoalID(goalID int64) ([]model.Contribution, error) {
	query := `
		SELECT id, goal_id, amount, date, created_at
		FROM contribution
		WHERE goal_id = ?
		ORDER BY date DESC, id DESC
	`

	rows, err := s.db.Query(query, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contribution table: %w", err)
	}
	defer rows.Close()

	contributions := []model.Contribution{}

	for rows.Next() {
		var c model.Contribution
		var dateStr, createdAtStr string

		err := rows.Scan(
			&c.ID,
			&c.GoalID,
			&c.Amount,
			&dateStr,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contribution table results: %w", err)
		}

		c.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse contribution date: %w", err)
		}
		c.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse contribution created_at: %w", err)
		}

		contributions = append(contributions, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contribution table: %w", err)
	}

	return contributions, nil
}

// CountContributionsOnGoalID returns the number of logged contribution rows
// for a goal. The contribution log is authoritative; the goal's cached counter
// is expected to match this at all times.
func (s *ContributionRepository) CountContributionsOnGoalID(goalID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM contribution WHERE goal_id = ?", goalID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count contributions: %w", err)
	}
	return count, nil
}
