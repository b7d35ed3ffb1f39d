package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrGoalNotFound indicates that a goal with the given ID does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrContributionNotFound indicates that a contribution with the given ID does not exist.
	ErrContributionNotFound = errors.New("contribution not found")

	// ErrExchangeRateNotFound indicates that no rate sample has been stored
	// for the requested currency.
	ErrExchangeRateNotFound = errors.New("exchange rate not found")

	// ErrSettingNotFound indicates that a provider setting key has not been stored.
	ErrSettingNotFound = errors.New("provider setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrContributionExceedsRemaining indicates that a contribution cannot be
	// recorded because its amount is larger than the goal's remaining balance.
	// A completed goal (remaining 0) rejects every positive amount with this error.
	ErrContributionExceedsRemaining = errors.New("contribution exceeds remaining amount")

	// ErrGoalDeletionUnsupported indicates that goal deletion is not part of
	// the ledger's behavior. Goals are never deleted; contributions never
	// outlive their goal.
	ErrGoalDeletionUnsupported = errors.New("goal deletion is not supported")

	// ErrInvalidCurrency indicates a currency outside the supported INR/USD pair.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidID indicates that a provided ID is not a positive integer.
	ErrInvalidID = errors.New("invalid ID format")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data, not missing entities or validation issues.
var (
	ErrFailedToRetrieveGoals         = errors.New("failed to retrieve goals")
	ErrFailedToRetrieveGoal          = errors.New("failed to retrieve goal")
	ErrFailedToRetrieveContributions = errors.New("failed to retrieve contributions")
	ErrFailedToRecordContribution    = errors.New("failed to record contribution")
	ErrFailedToRetrieveExchangeRate  = errors.New("failed to retrieve exchange rate")
	ErrFailedToStoreExchangeRate     = errors.New("failed to store exchange rate")
	ErrFailedToGetDashboardSummary   = errors.New("failed to get dashboard summary")
	ErrFailedToGetVersionInfo        = errors.New("failed to get version information")
)
