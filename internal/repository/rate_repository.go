package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
)

// RateRepository provides data access methods for the exchange_rate table.
// The table is an append-only log of rate observations; rows are never
// updated or deleted, and readers only ever want the newest sample.
type RateRepository struct {
	db *sql.DB
}

// NewRateRepository creates a new RateRepository with the provided database connection.
func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

// InsertRateSample appends a new rate observation and assigns its ID.
func (s *RateRepository) InsertRateSample(ctx context.Context, sample *model.ExchangeRateSample) error {
	query := `
		INSERT INTO exchange_rate (rate, currency, date, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		sample.Rate,
		string(sample.Currency),
		sample.Date.UTC().Format(time.RFC3339),
		sample.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert exchange rate sample: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted sample ID: %w", err)
	}
	sample.ID = id

	return nil
}

// GetLatestRateSample retrieves the newest rate sample for a currency.
// Ties on date fall back to the higher ID, so the last appended sample wins.
// Returns apperrors.ErrExchangeRateNotFound when no sample has been stored.
func (s *RateRepository) GetLatestRateSample(currency model.Currency) (model.ExchangeRateSample, error) {
	query := `
		SELECT id, rate, currency, date, created_at
		FROM exchange_rate
		WHERE currency = ?
		ORDER BY date DESC, id DESC
		LIMIT 1
	`

	var sample model.ExchangeRateSample
	var currencyStr, dateStr, createdAtStr string

	err := s.db.QueryRow(query, string(currency)).Scan(
		&sample.ID,
		&sample.Rate,
		&currencyStr,
		&dateStr,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.ExchangeRateSample{}, apperrors.ErrExchangeRateNotFound
	}
	if err != nil {
		return model.ExchangeRateSample{}, fmt.Errorf("failed to query exchange rate: %w", err)
	}

	sample.Currency = model.Currency(currencyStr)
	sample.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.ExchangeRateSample{}, fmt.Errorf("failed to parse sample date: %w", err)
	}
	sample.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.ExchangeRateSample{}, fmt.Errorf("failed to parse sample created_at: %w", err)
	}

	return sample, nil
}

// CountRateSamples returns the number of stored samples for a currency.
func (s *RateRepository) CountRateSamples(currency model.Currency) (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM exchange_rate WHERE currency = ?", string(currency)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count exchange rate samples: %w", err)
	}
	return count, nil
}
