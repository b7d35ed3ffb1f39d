package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
	"github.com/rkaranam/Savings-Planner-Backend/internal/model"
	"github.com/rkaranam/Savings-Planner-Backend/internal/repository"
)

// RateProvider fetches the current USD -> INR conversion rate from an
// external source. Implementations must return an error for anything that is
// not a positive finite rate.
type RateProvider interface {
	USDToINR() (float64, error)
}

// RateService manages the exchange-rate sample log: refreshing from the
// provider, and resolving the effective rate for conversions.
type RateService struct {
	rateRepo *repository.RateRepository
	provider RateProvider
}

// NewRateService creates a new RateService with the provided repository and provider.
func NewRateService(rateRepo *repository.RateRepository, provider RateProvider) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		provider: provider,
	}
}

// RefreshRate fetches the current USD->INR rate and appends it to the sample
// log. A provider failure is recoverable, not fatal: it returns (nil, nil),
// leaves prior samples untouched, and the last known rate stays in effect.
// Only a persistence failure is returned as an error. There is no automatic
// retry; the scheduler or a manual refresh re-invokes this.
func (s *RateService) RefreshRate(ctx context.Context) (*model.ExchangeRateSample, error) {
	rate, err := s.provider.USDToINR()
	if err != nil {
		log.Printf("Exchange rate refresh failed, keeping last known rate: %v", err)
		return nil, nil
	}

	now := time.Now().UTC()
	sample := &model.ExchangeRateSample{
		Rate:      rate,
		Currency:  model.CurrencyUSD,
		Date:      now,
		CreatedAt: now,
	}

	if err := s.rateRepo.InsertRateSample(ctx, sample); err != nil {
		return nil, err
	}

	return sample, nil
}

// LatestSample returns the newest stored USD sample.
// Returns apperrors.ErrExchangeRateNotFound when none has ever been stored.
func (s *RateService) LatestSample() (model.ExchangeRateSample, error) {
	return s.rateRepo.GetLatestRateSample(model.CurrencyUSD)
}

// EffectiveRate resolves the USD->INR rate conversions should use: the newest
// stored sample, or the default of 1 when no sample has ever been fetched.
func (s *RateService) EffectiveRate() (float64, error) {
	sample, err := s.rateRepo.GetLatestRateSample(model.CurrencyUSD)
	if errors.Is(err, apperrors.ErrExchangeRateNotFound) {
		return model.DefaultExchangeRate, nil
	}
	if err != nil {
		return 0, err
	}
	return sample.Rate, nil
}
