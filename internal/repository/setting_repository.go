package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
)

// SettingRepository provides data access methods for the provider_setting
// table, which holds encrypted provider credentials and related settings.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// UpsertSetting stores a setting value under a key, replacing any prior value.
func (s *SettingRepository) UpsertSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO provider_setting ("key", value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT ("key") DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}

	return nil
}

// GetSetting retrieves the value stored under a key.
// Returns apperrors.ErrSettingNotFound when the key has never been stored.
func (s *SettingRepository) GetSetting(key string) (string, error) {
	var value string

	err := s.db.QueryRow(`SELECT value FROM provider_setting WHERE "key" = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting %s: %w", key, err)
	}

	return value, nil
}
